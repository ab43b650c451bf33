package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parking-registry/internal/usecase/dto"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthChecker - зависимость, которую можно проверить пингом
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler отдает состояние PostgreSQL и Redis
type HealthHandler struct {
	db     HealthChecker
	redis  HealthChecker
	logger *zap.Logger
}

// NewHealthHandler создает новый экземпляр HealthHandler. redis может быть nil.
func NewHealthHandler(db, redis HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		redis:  redis,
		logger: logger,
	}
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   "healthy",
		Database: h.check(ctx, "database", h.db),
		Redis:    h.check(ctx, "redis", h.redis),
	}

	status := fiber.StatusOK
	if resp.Database == "down" || resp.Redis == "down" {
		resp.Status = "unhealthy"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(resp)
}

func (h *HealthHandler) check(ctx context.Context, name string, checker HealthChecker) string {
	if checker == nil {
		return "disabled"
	}
	if err := checker.Health(ctx); err != nil {
		h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
		return "down"
	}
	return "up"
}
