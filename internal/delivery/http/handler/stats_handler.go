package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parking-registry/internal/pkg/errors"
	"github.com/parking-registry/internal/pkg/utils"
	"github.com/parking-registry/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler обрабатывает запросы для статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Get registry statistics
// @Description Количество парковок, количество дальних запросов и время последнего из них
// @Tags Statistics
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, errors.ErrDatabaseError)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Estadísticas obtenidas correctamente", fiber.Map{
		"stats": stats,
	})
}
