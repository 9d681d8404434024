package controller

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NotOriginal333/hotel-lab4/internal/web/response"

	"github.com/gin-gonic/gin"
)

// Pinger is a dependency whose reachability is part of the health report.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type HealthController struct {
	deps map[string]Pinger
}

func NewHealthController(deps map[string]Pinger) *HealthController {
	return &HealthController{deps: deps}
}

// Health reports liveness along with the state of each dependency.
func (hc *HealthController) Health(c *gin.Context) {
	ctx := c.Request.Context()
	status := make(map[string]string, len(hc.deps))
	healthy := true

	for name, dep := range hc.deps {
		if err := dep.Ping(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed", "dependency", name, "error", err)
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.NewResponse(false, http.StatusServiceUnavailable, gin.H{"status": "degraded", "dependencies": status}))
		return
	}
	response.SuccessResponse(c, gin.H{"status": "ok", "dependencies": status})
}
