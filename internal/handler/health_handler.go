package handler

import (
	"context"
	"sync"
	"time"

	"elearning/internal/dto"
	"elearning/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// HealthHandler reports the status of the database and the cache.
type HealthHandler struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler running checks keyed by service name.
func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 3 * time.Second}
}

// Health godoc
// @Summary Service health
// @Description Pings the database and Redis
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	var mu sync.Mutex
	resp := dto.HealthResponse{Status: "ok", Services: make(map[string]string, len(h.checks))}

	// Checks never return an error to the group so one failure does not cancel the others.
	var g errgroup.Group
	for name, check := range h.checks {
		g.Go(func() error {
			status := "up"
			if err := check(ctx); err != nil {
				logger.Get().Warn("Health check failed", zap.String("service", name), zap.Error(err))
				status = "down"
			}
			mu.Lock()
			resp.Services[name] = status
			if status == "down" {
				resp.Status = "degraded"
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if resp.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
