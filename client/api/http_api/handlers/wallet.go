package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	. "github.com/azizazlan/multi-sig-wallet/client/api/dto"
	cs "github.com/azizazlan/multi-sig-wallet/client/api/http_api/context_service"
	req "github.com/azizazlan/multi-sig-wallet/client/api/http_api/requests"
	"github.com/azizazlan/multi-sig-wallet/client/api/http_api/responses"
)

func (a *HTTPApp) Deposit(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &DepositDTO{}
	if err := stx.BindToDTO(&req.DepositForm{}, formDTO); err != nil {
		return err
	}

	balance, err := a.node.Deposit(formDTO)
	if err != nil {
		return stx.JsonWalletError(err)
	}
	return stx.Json(http.StatusOK, &responses.DepositResponse{Balance: balance})
}

func (a *HTTPApp) GetBalance(c echo.Context) error {
	stx := c.(*cs.ContextService)

	return stx.Json(http.StatusOK, &responses.WalletStatusResponse{
		Balance:               a.node.GetBalance(),
		TransactionCount:      a.node.GetTransactionCount(),
		RequiredConfirmations: a.node.GetRequiredConfirmations(),
	})
}

func (a *HTTPApp) GetOwners(c echo.Context) error {
	stx := c.(*cs.ContextService)

	return stx.Json(http.StatusOK, a.node.GetOwners())
}

func (a *HTTPApp) GetRequiredConfirmations(c echo.Context) error {
	stx := c.(*cs.ContextService)

	return stx.Json(http.StatusOK, a.node.GetRequiredConfirmations())
}

func (a *HTTPApp) GetUsername(c echo.Context) error {
	stx := c.(*cs.ContextService)

	return stx.Json(http.StatusOK, a.node.GetUsername())
}
