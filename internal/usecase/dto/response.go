package dto

import "github.com/parking-registry/internal/domain"

// NearestResponse - ближайшая парковка и расстояние до неё (км).
// Warning заполняется, когда расстояние превышает порог оповещения.
type NearestResponse struct {
	Parking  *domain.Parking `json:"parking"`
	Distance float64         `json:"distance"`
	Warning  string          `json:"warning,omitempty"`
}

// ParkingResponse - ответ с одной парковкой
type ParkingResponse struct {
	Message string          `json:"message"`
	Parking *domain.Parking `json:"parking"`
}

// ParkingListResponse - ответ со списком парковок
type ParkingListResponse struct {
	Message  string            `json:"message"`
	Parkings []*domain.Parking `json:"parkings"`
}

// NearestParkingResponse - тело ответа GET /parkings/nearest
type NearestParkingResponse struct {
	Message  string          `json:"message"`
	Parking  *domain.Parking `json:"parking"`
	Distance float64         `json:"distance"`
	Warning  string          `json:"warning,omitempty"`
}

// StatsResponse - тело ответа GET /stats
type StatsResponse struct {
	Message string             `json:"message"`
	Stats   *domain.Statistics `json:"stats"`
}

// HealthResponse - состояние зависимостей сервиса
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}
