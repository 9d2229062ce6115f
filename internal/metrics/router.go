package metrics

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

func ConfigureRouter(handler *echo.Echo) {
	handler.HideBanner = true
	handler.GET("/metrics", echoprometheus.NewHandler())
}

// Middleware records latency and status of every API request.
func Middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddleware("dqmeta_api")
}
