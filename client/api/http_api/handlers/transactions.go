package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	. "github.com/azizazlan/multi-sig-wallet/client/api/dto"
	cs "github.com/azizazlan/multi-sig-wallet/client/api/http_api/context_service"
	req "github.com/azizazlan/multi-sig-wallet/client/api/http_api/requests"
	"github.com/azizazlan/multi-sig-wallet/client/api/http_api/responses"
)

func (a *HTTPApp) SubmitTransaction(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &SubmitTransactionDTO{}
	if err := stx.BindToDTO(&req.SubmitTransactionForm{}, formDTO); err != nil {
		return err
	}

	index, err := a.node.SubmitTransaction(formDTO)
	if err != nil {
		return stx.JsonWalletError(err)
	}
	return stx.Json(http.StatusOK, &responses.SubmitTransactionResponse{Index: index})
}

func (a *HTTPApp) ConfirmTransaction(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &TransactionIdDTO{}
	if err := stx.BindToDTO(&req.TransactionIdForm{}, formDTO); err != nil {
		return err
	}

	if err := a.node.ConfirmTransaction(formDTO); err != nil {
		return stx.JsonWalletError(err)
	}
	return stx.Json(http.StatusOK, "ok")
}

func (a *HTTPApp) RevokeConfirmation(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &TransactionIdDTO{}
	if err := stx.BindToDTO(&req.TransactionIdForm{}, formDTO); err != nil {
		return err
	}

	if err := a.node.RevokeConfirmation(formDTO); err != nil {
		return stx.JsonWalletError(err)
	}
	return stx.Json(http.StatusOK, "ok")
}

func (a *HTTPApp) ExecuteTransaction(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &TransactionIdDTO{}
	if err := stx.BindToDTO(&req.TransactionIdForm{}, formDTO); err != nil {
		return err
	}

	if err := a.node.ExecuteTransaction(formDTO); err != nil {
		return stx.JsonWalletError(err)
	}
	return stx.Json(http.StatusOK, "ok")
}

func (a *HTTPApp) GetTransaction(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &TransactionQueryDTO{}
	if err := stx.BindToDTO(&req.TransactionQueryForm{}, formDTO); err != nil {
		return err
	}

	tx, err := a.node.GetTransaction(formDTO)
	if err != nil {
		return stx.JsonWalletError(err)
	}
	return stx.Json(http.StatusOK, tx)
}

func (a *HTTPApp) GetTransactions(c echo.Context) error {
	stx := c.(*cs.ContextService)

	return stx.Json(http.StatusOK, a.node.GetTransactions())
}

func (a *HTTPApp) GetTransactionCount(c echo.Context) error {
	stx := c.(*cs.ContextService)

	return stx.Json(http.StatusOK, a.node.GetTransactionCount())
}
