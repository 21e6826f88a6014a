package domain

import "math"

// Location is a geocoded place. Coordinates are rounded to two decimals,
// which is precise enough for weather and keeps cache entries stable.
type Location struct {
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// RoundCoordinate rounds a latitude or longitude to two decimal places.
func RoundCoordinate(v float64) float64 {
	return math.Round(v*100) / 100
}
