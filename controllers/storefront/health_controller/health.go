package health_controller

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"go.uber.org/zap"
)

// Check pings one dependency.
type Check func(ctx context.Context) error

type Controller struct {
	checks  map[string]Check
	timeout time.Duration
	logger  *zap.Logger
}

func New(checks map[string]Check, logger *zap.Logger) *Controller {
	return &Controller{checks: checks, timeout: 3 * time.Second, logger: logger}
}

// Health reports "ok" or the failing dependency for every check.
// GET /healthz
func (ctl *Controller) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	names := make([]string, 0, len(ctl.checks))
	for name := range ctl.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := make(map[string]string, len(names))
	healthy := true
	for _, name := range names {
		if err := ctl.checks[name](ctx); err != nil {
			healthy = false
			status[name] = err.Error()
			ctl.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			continue
		}
		status[name] = "ok"
	}

	if !healthy {
		resp := models.ErrorResponse(c, "Service degraded")
		resp.Data = status
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Service healthy", status))
}
