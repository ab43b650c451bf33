package domain

import (
	"time"

	"github.com/google/uuid"
)

// Parking - зарегистрированная парковка с координатами
type Parking struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Nombre    string    `json:"nombre" db:"nombre"`
	Direccion string    `json:"direccion" db:"direccion"`
	Latitud   float64   `json:"latitud" db:"latitud"`
	Longitud  float64   `json:"longitud" db:"longitud"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ParkingPatch - частичное обновление: nil означает "оставить как есть"
type ParkingPatch struct {
	Nombre    *string
	Direccion *string
	Latitud   *float64
	Longitud  *float64
}

// Apply применяет заданные поля патча к копии парковки
func (p Parking) Apply(patch ParkingPatch, now time.Time) Parking {
	if patch.Nombre != nil {
		p.Nombre = *patch.Nombre
	}
	if patch.Direccion != nil {
		p.Direccion = *patch.Direccion
	}
	if patch.Latitud != nil {
		p.Latitud = *patch.Latitud
	}
	if patch.Longitud != nil {
		p.Longitud = *patch.Longitud
	}
	p.UpdatedAt = now
	return p
}

// NearestParking - ближайшая парковка и расстояние до неё в километрах.
// Distance вычисляется на каждый запрос и не хранится.
type NearestParking struct {
	Parking  *Parking
	Distance float64
}
