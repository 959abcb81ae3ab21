package http_api

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"

	"github.com/azizazlan/multi-sig-wallet/client/api/http_api/router"
	"github.com/azizazlan/multi-sig-wallet/client/config"
	"github.com/azizazlan/multi-sig-wallet/client/services/node"
)

type RESTApiProvider struct {
	config       *config.HttpApiConfig
	echoInstance *echo.Echo
}

func (p *RESTApiProvider) NewServer(cfg *config.Config, node node.NodeService) error {
	if cfg.HttpApiConfig == nil {
		return fmt.Errorf("http api configuration is missing")
	}
	p.config = cfg.HttpApiConfig

	p.echoInstance = echo.New()

	p.echoInstance.HideBanner = true
	p.echoInstance.Debug = p.config.Debug

	p.echoInstance.HTTPErrorHandler = customHTTPErrorHandler

	// Middlewares

	p.echoInstance.Use(echo_middleware.Logger())

	p.echoInstance.Use(contextServiceMiddleware)

	router.SetRouter(p.echoInstance, node)

	return nil
}

func (p *RESTApiProvider) Start() error {
	return p.echoInstance.Start(fmt.Sprintf("%s:%d", p.config.Host, p.config.Port))
}

func (p *RESTApiProvider) Stop(ctx context.Context) error {
	return p.echoInstance.Shutdown(ctx)
}
