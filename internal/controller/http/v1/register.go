package httpv1

import (
	"github.com/Egor213/DQMeta/internal/metrics"
	"github.com/Egor213/DQMeta/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

// ConfigureRouter mounts the public API. extra middleware runs after the
// logging and recovery layers.
func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters, extra ...echo.MiddlewareFunc) {
	handler.HideBanner = true
	handler.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:     true,
		LogURI:        true,
		LogStatus:     true,
		LogLatency:    true,
		LogError:      true,
		HandleError:   true,
		LogValuesFunc: logRequest,
	}))
	handler.Use(middleware.Recover())
	handler.Use(extra...)

	health := NewHealthController()
	results := NewDQResultController(services.DQResult, counters)

	handler.GET("/health", health.Health)
	handler.GET("/logs", results.ListResults)
}

func logRequest(_ echo.Context, v middleware.RequestLoggerValues) error {
	entry := log.WithFields(log.Fields{
		"method":  v.Method,
		"uri":     v.URI,
		"status":  v.Status,
		"latency": v.Latency.String(),
	})
	if v.Error != nil {
		entry.WithError(v.Error).Warn("request failed")
		return nil
	}
	entry.Debug("request")
	return nil
}
