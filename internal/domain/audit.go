package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord - запись о запросе ближайшей парковки, результат которого
// оказался дальше порога оповещения. Хранит только координаты запроса.
type AuditRecord struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Latitud   float64   `json:"latitud" db:"latitud"`
	Longitud  float64   `json:"longitud" db:"longitud"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
