package context_service

import (
	"fmt"
	"net/http"

	"github.com/censync/go-dto"
	"github.com/censync/go-validator"
	"github.com/labstack/echo/v4"

	"github.com/azizazlan/multi-sig-wallet/wallet"
)

type ContextService struct {
	echo.Context
}

func New(c echo.Context) *ContextService {
	return &ContextService{
		c,
	}
}

type CSJsonResp struct {
	Result interface{} `json:"result"`
}

// Custom error
type CSErrorResp struct {
	Result       interface{} `json:"result"`
	ErrorMessage string      `json:"error_message,omitempty"`
	ErrorCode    string      `json:"error_code,omitempty"`
}

func (e *CSErrorResp) Error() string {
	if e == nil {
		return ""
	}
	return e.ErrorMessage
}

// BindToRequest populates the request fields based on the context path and query parameters and body
// and validates the result. On failure it writes a 400 response and returns
// a non-nil error so the handler stops.
func (cs *ContextService) BindToRequest(request interface{}) error {
	if err := cs.Bind(request); err != nil {
		bindErr := fmt.Errorf("failed to read request body: %v", err)
		_ = cs.JsonError(http.StatusBadRequest, bindErr)
		return bindErr
	}
	if err := validator.Validate(request); !err.IsEmpty() {
		_ = cs.JsonError(http.StatusBadRequest, err.Error())
		return err.Error()
	}
	return nil
}

// BindToDTO builds a request of the given form based on the context and converts it to a DTO.
func (cs *ContextService) BindToDTO(requestForm, dtoForm interface{}) error {
	if err := cs.BindToRequest(requestForm); err != nil {
		return err
	}
	if err := dto.RequestToDTO(dtoForm, requestForm); err != nil {
		_ = cs.JsonError(http.StatusBadRequest, err)
		return err
	}
	return nil
}

func (cs *ContextService) Json(code int, data interface{}) error {
	if data != nil {
		return cs.JSON(code, &CSJsonResp{
			Result: data,
		})
	} else {
		return cs.JSON(code, &CSJsonResp{
			Result: struct{}{},
		})
	}
}

func (cs *ContextService) JsonEmpty(code int) error {
	return cs.JSON(code, &CSJsonResp{
		Result: struct{}{},
	})
}

// JsonWalletError maps the wallet error taxonomy onto HTTP status codes and
// carries the symbolic error code in the response body.
func (cs *ContextService) JsonWalletError(err error) error {
	code := wallet.Code(err)
	if code == wallet.CodeUndefined {
		return cs.JsonError(http.StatusInternalServerError, err)
	}
	return cs.JSON(walletErrorStatus(code), &CSErrorResp{
		Result:       struct{}{},
		ErrorMessage: err.Error(),
		ErrorCode:    code.String(),
	})
}

func walletErrorStatus(code wallet.ErrorCode) int {
	switch code {
	case wallet.CodeUnauthorized:
		return http.StatusForbidden
	case wallet.CodeNotFound:
		return http.StatusNotFound
	case wallet.CodeAlreadyExecuted,
		wallet.CodeAlreadyConfirmed,
		wallet.CodeNotConfirmed,
		wallet.CodeQuorumNotReached,
		wallet.CodeInsufficientBalance:
		return http.StatusConflict
	case wallet.CodeInvalidConfiguration, wallet.CodeDepositOverflow:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (cs *ContextService) JsonError(code int, err error) error {
	if err == nil {
		return cs.JSON(code, &CSErrorResp{
			Result:       struct{}{},
			ErrorMessage: "undefined error",
		})
	} else {
		return cs.JSON(code, &CSErrorResp{
			Result:       struct{}{},
			ErrorMessage: err.Error(),
		})
	}
}
