package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var samplePoints = []struct {
	name     string
	lat, lon float64
}{
	{"buenos aires centro", -34.6037, -58.3816},
	{"buenos aires norte", -34.5900, -58.4100},
	{"north pole", 90, 0},
	{"south pole", -90, 180},
	{"antimeridian east", 0, 180},
	{"antimeridian west", 0, -180},
	{"origin", 0, 0},
	{"barcelona", 41.3851, 2.1734},
	{"tokyo", 35.6762, 139.6503},
}

func TestGreatCircleDistance_IdenticalPointsIsZero(t *testing.T) {
	for _, p := range samplePoints {
		t.Run(p.name, func(t *testing.T) {
			d := GreatCircleDistance(p.lat, p.lon, p.lat, p.lon)
			assert.False(t, math.IsNaN(d))
			assert.Equal(t, 0.0, d)
		})
	}
}

func TestGreatCircleDistance_Symmetric(t *testing.T) {
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			ab := GreatCircleDistance(a.lat, a.lon, b.lat, b.lon)
			ba := GreatCircleDistance(b.lat, b.lon, a.lat, a.lon)
			assert.Equal(t, ab, ba, "%s <-> %s", a.name, b.name)
		}
	}
}

func TestGreatCircleDistance_Bounds(t *testing.T) {
	halfCircumference := math.Pi * EarthRadiusKm

	for _, a := range samplePoints {
		for _, b := range samplePoints {
			d := GreatCircleDistance(a.lat, a.lon, b.lat, b.lon)
			assert.False(t, math.IsNaN(d), "%s <-> %s", a.name, b.name)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, halfCircumference+1e-9)
		}
	}
}

func TestGreatCircleDistance_KnownValues(t *testing.T) {
	t.Run("antipodes", func(t *testing.T) {
		d := GreatCircleDistance(90, 0, -90, 0)
		assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-6)
	})

	t.Run("one degree along the equator", func(t *testing.T) {
		d := GreatCircleDistance(0, 0, 0, 1)
		assert.InDelta(t, EarthRadiusKm*math.Pi/180, d, 1e-6)
	})

	t.Run("seeded parkings", func(t *testing.T) {
		d := GreatCircleDistance(-34.6037, -58.3816, -34.5900, -58.4100)
		assert.InDelta(t, 3.01, d, 0.02)
	})

	t.Run("same meridian across the antimeridian", func(t *testing.T) {
		d := GreatCircleDistance(10, 180, 10, -180)
		assert.InDelta(t, 0.0, d, 1e-3)
	})
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		lat, lon float64
		valid    bool
	}{
		{0, 0, true},
		{90, 180, true},
		{-90, -180, true},
		{95, 0, false},
		{-90.0001, 0, false},
		{0, 180.5, false},
		{0, -181, false},
		{math.NaN(), 0, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidateCoordinates(tt.lat, tt.lon), "lat=%v lon=%v", tt.lat, tt.lon)
	}
}
