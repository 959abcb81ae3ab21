package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	. "github.com/azizazlan/multi-sig-wallet/client/api/dto"
	cs "github.com/azizazlan/multi-sig-wallet/client/api/http_api/context_service"
	req "github.com/azizazlan/multi-sig-wallet/client/api/http_api/requests"
)

func (a *HTTPApp) GetRecords(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &RecordsQueryDTO{}
	if err := stx.BindToDTO(&req.RecordsQueryForm{}, formDTO); err != nil {
		return err
	}

	records, err := a.node.GetRecords(formDTO)
	if err != nil {
		return stx.JsonError(http.StatusInternalServerError, err)
	}
	return stx.Json(http.StatusOK, records)
}
