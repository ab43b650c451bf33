package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/parking-registry/internal/pkg/errors"
	"github.com/parking-registry/internal/pkg/utils"
	"github.com/parking-registry/internal/usecase"
	"github.com/parking-registry/internal/usecase/dto"
	"go.uber.org/zap"
)

// ParkingHandler - обработчик запросов реестра парковок
type ParkingHandler struct {
	parkingUC *usecase.ParkingUseCase
	nearestUC *usecase.NearestUseCase
	logger    *zap.Logger
}

// NewParkingHandler - создание нового ParkingHandler
func NewParkingHandler(parkingUC *usecase.ParkingUseCase, nearestUC *usecase.NearestUseCase, logger *zap.Logger) *ParkingHandler {
	return &ParkingHandler{
		parkingUC: parkingUC,
		nearestUC: nearestUC,
		logger:    logger,
	}
}

// List godoc
// @Summary List parkings
// @Description Возвращает все зарегистрированные парковки
// @Tags Parkings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ParkingListResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/parkings [get]
func (h *ParkingHandler) List(c *fiber.Ctx) error {
	parkings, err := h.parkingUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Listado de parkings obtenido correctamente", fiber.Map{
		"parkings": parkings,
	})
}

// Create godoc
// @Summary Create parking
// @Tags Parkings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param parking body dto.CreateParkingRequest true "Parking"
// @Success 201 {object} dto.ParkingResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/parkings [post]
func (h *ParkingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateParkingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	parking, err := h.parkingUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusCreated, "Parking creado exitosamente", fiber.Map{
		"parking": parking,
	})
}

// Get godoc
// @Summary Get parking
// @Tags Parkings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parking ID (UUID)"
// @Success 200 {object} dto.ParkingResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/parkings/{id} [get]
func (h *ParkingHandler) Get(c *fiber.Ctx) error {
	id, err := parseParkingID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	parking, err := h.parkingUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Parking obtenido correctamente", fiber.Map{
		"parking": parking,
	})
}

// Update godoc
// @Summary Update parking
// @Description Частичное обновление: переданные поля заменяются, остальные остаются прежними
// @Tags Parkings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parking ID (UUID)"
// @Param parking body dto.UpdateParkingRequest true "Fields to update"
// @Success 200 {object} dto.ParkingResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/parkings/{id} [put]
func (h *ParkingHandler) Update(c *fiber.Ctx) error {
	id, err := parseParkingID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateParkingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	parking, err := h.parkingUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Parking actualizado exitosamente", fiber.Map{
		"parking": parking,
	})
}

// Delete godoc
// @Summary Delete parking
// @Tags Parkings
// @Security BearerAuth
// @Param id path string true "Parking ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/parkings/{id} [delete]
func (h *ParkingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseParkingID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.parkingUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Nearest godoc
// @Summary Nearest parking
// @Description Ближайшая к точке парковка и расстояние до нее в км. Если расстояние больше 0.5 км,
// @Description в ответ добавляется warning, а запрос записывается в журнал дальних запросов.
// @Tags Parkings
// @Produce json
// @Security BearerAuth
// @Param latitud query number true "Latitude" minimum(-90) maximum(90)
// @Param longitud query number true "Longitude" minimum(-180) maximum(180)
// @Success 200 {object} dto.NearestParkingResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/parkings/nearest [get]
func (h *ParkingHandler) Nearest(c *fiber.Ctx) error {
	var req dto.NearestRequest
	details := make(map[string]interface{})

	for _, q := range []struct {
		name string
		dst  **float64
	}{
		{name: "latitud", dst: &req.Latitud},
		{name: "longitud", dst: &req.Longitud},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			details[q.name] = "numeric"
			continue
		}
		*q.dst = &v
	}
	if len(details) > 0 {
		return utils.SendError(c, errors.ErrValidation.WithDetails(details))
	}

	resp, err := h.nearestUC.Nearest(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	payload := fiber.Map{
		"parking":  resp.Parking,
		"distance": resp.Distance,
	}
	if resp.Warning != "" {
		payload["warning"] = resp.Warning
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Parking más cercano encontrado", payload)
}

// parseParkingID - ID, который не является UUID, не может принадлежать ни одной парковке
func parseParkingID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.ErrParkingNotFound
	}
	return id, nil
}
