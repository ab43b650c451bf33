package utils

import "math"

// EarthRadiusKm - средний радиус Земли
const EarthRadiusKm = 6371.0

// GreatCircleDistance вычисляет расстояние по дуге большого круга между двумя
// точками в километрах (сферическая теорема косинусов).
func GreatCircleDistance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	dLon := toRadians(lon2) - toRadians(lon1)

	cosAngle := math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dLon) +
		math.Sin(lat1Rad)*math.Sin(lat2Rad)

	// acos вне [-1, 1] даёт NaN
	cosAngle = math.Max(-1, math.Min(1, cosAngle))

	return EarthRadiusKm * math.Acos(cosAngle)
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
