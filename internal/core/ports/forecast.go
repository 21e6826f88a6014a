package ports

import (
	"context"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
)

// ForecastRequest describes which forecast sections to fetch for a location.
type ForecastRequest struct {
	Type  domain.ForecastType
	Days  int
	Hours int
}

// ForecastProvider defines the interface for fetching weather forecasts.
//
//go:generate mockgen -source=forecast.go -destination=mocks/mock_forecast.go -package=mocks
type ForecastProvider interface {
	// Forecast fetches the requested sections for the given location.
	Forecast(ctx context.Context, loc domain.Location, req ForecastRequest) (*domain.Weather, error)
}
