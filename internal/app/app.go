// Package app implements the application layer for the weather CLI.
package app

import (
	"context"
	"errors"

	"go.trai.ch/zerr"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
	"github.com/sanbobsan/weather-cli/internal/core/ports"
)

// App represents the main application logic.
type App struct {
	config   ports.ConfigStore
	cache    ports.LocationCache
	geocoder ports.Geocoder
	forecast ports.ForecastProvider
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	config ports.ConfigStore,
	cache ports.LocationCache,
	geocoder ports.Geocoder,
	forecast ports.ForecastProvider,
	log ports.Logger,
) *App {
	return &App{
		config:   config,
		cache:    cache,
		geocoder: geocoder,
		forecast: forecast,
		logger:   log,
	}
}

// ForecastOptions configuration for the Forecast method.
type ForecastOptions struct {
	Type  domain.ForecastType
	Days  int
	Hours int
}

// Forecast geocodes the location query and fetches the requested forecast
// sections. Returns domain.ErrLocationNotFound (wrapped) when the query
// cannot be resolved.
func (a *App) Forecast(ctx context.Context, location string, opts ForecastOptions) (*domain.Weather, error) {
	loc, err := a.geocoder.Geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	weather, err := a.forecast.Forecast(ctx, loc, ports.ForecastRequest{
		Type:  opts.Type,
		Days:  opts.Days,
		Hours: opts.Hours,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch forecast")
	}

	return weather, nil
}

// DefaultLocation returns the configured default location, or "" if unset.
func (a *App) DefaultLocation() (string, error) {
	return a.config.DefaultLocation()
}

// SetDefaultLocation persists the default location.
func (a *App) SetDefaultLocation(location string) error {
	return a.config.SetDefaultLocation(location)
}

// ClearOptions configuration for the Clear method.
type ClearOptions struct {
	Config bool
	Cache  bool
}

// Clear removes the config and/or the location cache. Failures are joined so
// one failing removal does not mask the other.
func (a *App) Clear(opts ClearOptions) error {
	var errs error

	if opts.Cache {
		if err := a.cache.Clear(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	if opts.Config {
		if err := a.config.Clear(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
