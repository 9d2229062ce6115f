package httpv1

import (
	"net/http"

	logginghelper "github.com/Egor213/DQMeta/internal/controller/common/logging"
	"github.com/Egor213/DQMeta/internal/metrics"
	"github.com/Egor213/DQMeta/internal/service"
	"github.com/labstack/echo/v4"
)

type DQResultController struct {
	resultService service.DQResult
	counters      *metrics.Counters
}

func NewDQResultController(rs service.DQResult, cnt *metrics.Counters) *DQResultController {
	return &DQResultController{
		resultService: rs,
		counters:      cnt,
	}
}

func (c *DQResultController) ListResults(ctx echo.Context) error {
	route := ctx.Path()
	c.counters.HttpRequests.Inc(route, "received")

	results, err := c.resultService.ListResults(ctx.Request().Context())
	if err != nil {
		c.counters.HttpRequests.Inc(route, "failed")
		logginghelper.LogError(route, err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	for _, r := range results {
		c.counters.ResultsServed.Inc(r.Severity)
	}
	logginghelper.LogListed(route, len(results))
	c.counters.HttpRequests.Inc(route, "ok")

	return ctx.JSON(http.StatusOK, toDQResultsResponse(results))
}
