package ports

import "github.com/sanbobsan/weather-cli/internal/core/domain"

// ConfigStore defines the interface for persisting user configuration.
//
//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
type ConfigStore interface {
	// DefaultLocation returns the configured default location, or "" if unset.
	DefaultLocation() (string, error)

	// SetDefaultLocation persists the default location.
	SetDefaultLocation(location string) error

	// Clear removes the configuration file and its directory.
	Clear() error
}

// LocationCache defines the interface for caching geocoded locations.
type LocationCache interface {
	// Get returns the cached location for a query, or nil on a miss.
	Get(query string) (*domain.Location, error)

	// Put stores a geocoded location under the given query.
	Put(query string, loc domain.Location) error

	// Clear removes all cached locations.
	Clear() error
}
