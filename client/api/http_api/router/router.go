package router

import (
	"github.com/labstack/echo/v4"

	"github.com/azizazlan/multi-sig-wallet/client/api/http_api/handlers"
	"github.com/azizazlan/multi-sig-wallet/client/services/node"
)

func SetRouter(e *echo.Echo, node node.NodeService) {
	h := handlers.NewHTTPApp(node)

	e.GET("/getUsername", h.GetUsername)

	e.POST("/deposit", h.Deposit)
	e.POST("/submitTransaction", h.SubmitTransaction)
	e.POST("/confirmTransaction", h.ConfirmTransaction)
	e.POST("/revokeConfirmation", h.RevokeConfirmation)
	e.POST("/executeTransaction", h.ExecuteTransaction)

	e.GET("/getOwners", h.GetOwners)
	e.GET("/getBalance", h.GetBalance)
	e.GET("/getRequiredConfirmations", h.GetRequiredConfirmations)

	e.GET("/getTransaction", h.GetTransaction)
	e.GET("/getTransactions", h.GetTransactions)
	e.GET("/getTransactionCount", h.GetTransactionCount)

	e.GET("/getRecords", h.GetRecords)
}
