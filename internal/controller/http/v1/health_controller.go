package httpv1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	healthStatus = "active"
	engineName   = "Echo"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (c *HealthController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, healthResponse{
		Status: healthStatus,
		Engine: engineName,
	})
}
