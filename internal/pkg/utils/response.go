package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parking-registry/internal/pkg/errors"
)

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Message string           `json:"message"`
	Error   *errors.AppError `json:"error"`
}

// MessageResponse - ответ, содержащий только сообщение
type MessageResponse struct {
	Message string `json:"message"`
}

// SendSuccess отправляет ответ с человекочитаемым message и полезной нагрузкой
func SendSuccess(c *fiber.Ctx, status int, message string, payload fiber.Map) error {
	body := fiber.Map{"message": message}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.AsAppError(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Message: appErr.Message,
			Error:   appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: errors.ErrInternalServer.Message,
		Error:   errors.ErrInternalServer,
	})
}
