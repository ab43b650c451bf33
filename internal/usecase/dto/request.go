package dto

import "github.com/parking-registry/internal/domain"

// NearestRequest - запрос ближайшей парковки к точке
type NearestRequest struct {
	Latitud  *float64 `query:"latitud" validate:"required,gte=-90,lte=90"`
	Longitud *float64 `query:"longitud" validate:"required,gte=-180,lte=180"`
}

// CreateParkingRequest - запрос на регистрацию парковки
type CreateParkingRequest struct {
	Nombre    string   `json:"nombre" validate:"required,min=1,max=255"`
	Direccion string   `json:"direccion" validate:"required,min=1,max=255"`
	Latitud   *float64 `json:"latitud" validate:"required,gte=-90,lte=90"`
	Longitud  *float64 `json:"longitud" validate:"required,gte=-180,lte=180"`
}

// UpdateParkingRequest - частичное обновление, отсутствующие поля не меняются
type UpdateParkingRequest struct {
	Nombre    *string  `json:"nombre,omitempty" validate:"omitempty,min=1,max=255"`
	Direccion *string  `json:"direccion,omitempty" validate:"omitempty,min=1,max=255"`
	Latitud   *float64 `json:"latitud,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitud  *float64 `json:"longitud,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// Patch переводит запрос в доменный патч
func (r UpdateParkingRequest) Patch() domain.ParkingPatch {
	return domain.ParkingPatch{
		Nombre:    r.Nombre,
		Direccion: r.Direccion,
		Latitud:   r.Latitud,
		Longitud:  r.Longitud,
	}
}
