package domain

import "time"

// Statistics - агрегированная статистика реестра
type Statistics struct {
	TotalParkings int        `json:"total_parkings" db:"total_parkings"`
	TotalAlerts   int        `json:"total_alerts" db:"total_alerts"`
	LastAlertAt   *time.Time `json:"last_alert_at,omitempty" db:"last_alert_at"`
	LastUpdated   time.Time  `json:"last_updated"`
}
