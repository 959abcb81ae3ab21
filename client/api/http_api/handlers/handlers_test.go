package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/azizazlan/multi-sig-wallet/client/api/dto"
	cs "github.com/azizazlan/multi-sig-wallet/client/api/http_api/context_service"
	"github.com/azizazlan/multi-sig-wallet/client/api/http_api/handlers"
	"github.com/azizazlan/multi-sig-wallet/mocks/serviceMocks"
	"github.com/azizazlan/multi-sig-wallet/wallet"
)

func newTestApp(ctrl *gomock.Controller) (*handlers.HTTPApp, *serviceMocks.MockNodeService) {
	node := serviceMocks.NewMockNodeService(ctrl)
	return handlers.NewHTTPApp(node), node
}

func newJSONContext(method, path, body string) (*cs.ContextService, *httptest.ResponseRecorder) {
	e := echo.New()
	var request *http.Request
	if body != "" {
		request = httptest.NewRequest(method, path, strings.NewReader(body))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		request = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return cs.New(e.NewContext(request, rec)), rec
}

func TestHTTPApp_Deposit(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	app, node := newTestApp(ctrl)

	node.EXPECT().
		Deposit(&dto.DepositDTO{Sender: "funder", Amount: 25}).
		Times(1).
		Return(uint64(25), nil)

	ctx, rec := newJSONContext(http.MethodPost, "/deposit", `{"sender":"funder","amount":25}`)
	req.NoError(app.Deposit(ctx))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"balance":25`)
}

func TestHTTPApp_Deposit_MissingSender(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	app, _ := newTestApp(ctrl)

	ctx, rec := newJSONContext(http.MethodPost, "/deposit", `{"amount":25}`)
	req.Error(app.Deposit(ctx))
	req.Equal(http.StatusBadRequest, rec.Code)
}

func TestHTTPApp_SubmitTransaction(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	app, node := newTestApp(ctrl)

	node.EXPECT().
		SubmitTransaction(&dto.SubmitTransactionDTO{Caller: "owner_1", Target: "accumulator", Value: 10}).
		Times(1).
		Return(uint64(0), nil)

	ctx, rec := newJSONContext(http.MethodPost, "/submitTransaction",
		`{"caller":"owner_1","target":"accumulator","value":10}`)
	req.NoError(app.SubmitTransaction(ctx))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"index":0`)
}

func TestHTTPApp_ExecuteTransaction_QuorumNotReached(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	app, node := newTestApp(ctrl)

	node.EXPECT().
		ExecuteTransaction(&dto.TransactionIdDTO{Caller: "owner_1", Index: 3}).
		Times(1).
		Return(wallet.NewErr(wallet.CodeQuorumNotReached, "cannot execute"))

	ctx, rec := newJSONContext(http.MethodPost, "/executeTransaction", `{"caller":"owner_1","index":3}`)
	req.NoError(app.ExecuteTransaction(ctx))
	req.Equal(http.StatusConflict, rec.Code)
	req.Contains(rec.Body.String(), `"error_code":"quorum_not_reached"`)
}

func TestHTTPApp_GetTransaction_NotFound(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	app, node := newTestApp(ctrl)

	node.EXPECT().
		GetTransaction(&dto.TransactionQueryDTO{Index: 9}).
		Times(1).
		Return(nil, wallet.NewErr(wallet.CodeNotFound, "transaction does not exist"))

	ctx, rec := newJSONContext(http.MethodGet, "/getTransaction?index=9", "")
	req.NoError(app.GetTransaction(ctx))
	req.Equal(http.StatusNotFound, rec.Code)
	req.Contains(rec.Body.String(), `"error_code":"not_found"`)
}

func TestHTTPApp_GetBalance(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	app, node := newTestApp(ctrl)

	node.EXPECT().GetBalance().Times(1).Return(uint64(70))
	node.EXPECT().GetTransactionCount().Times(1).Return(uint64(2))
	node.EXPECT().GetRequiredConfirmations().Times(1).Return(2)

	ctx, rec := newJSONContext(http.MethodGet, "/getBalance", "")
	req.NoError(app.GetBalance(ctx))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"balance":70`)
	req.Contains(rec.Body.String(), `"transaction_count":2`)
}
