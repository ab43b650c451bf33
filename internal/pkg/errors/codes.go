package errors

import "net/http"

var (
	ErrParkingNotFound = New(
		"PARKING_NOT_FOUND",
		"Parking no encontrado",
		http.StatusNotFound,
	)

	ErrNoParkings = New(
		"NO_PARKINGS",
		"No hay parkings registrados",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Coordenadas fuera de rango",
		http.StatusUnprocessableEntity,
	)

	ErrValidation = New(
		"VALIDATION_FAILED",
		"Los datos proporcionados no son válidos",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Cuerpo de la solicitud inválido",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"No autenticado",
		http.StatusUnauthorized,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
