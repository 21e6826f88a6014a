package ports

import (
	"context"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
)

// Geocoder defines the interface for resolving a location query to coordinates.
//
//go:generate mockgen -source=geocoder.go -destination=mocks/mock_geocoder.go -package=mocks
type Geocoder interface {
	// Geocode resolves a free-form location query to a Location.
	// Returns domain.ErrLocationNotFound when the query yields no results.
	Geocode(ctx context.Context, query string) (domain.Location, error)
}
