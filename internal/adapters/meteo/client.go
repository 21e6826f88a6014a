// Package meteo implements the ForecastProvider port using the Open-Meteo API.
package meteo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/sanbobsan/weather-cli/internal/adapters/api"
	"github.com/sanbobsan/weather-cli/internal/core/domain"
	"github.com/sanbobsan/weather-cli/internal/core/ports"
)

const forecastURL = "https://api.open-meteo.com/v1/forecast"

// Client implements ports.ForecastProvider backed by Open-Meteo.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a forecast client against the public Open-Meteo endpoint.
func NewClient() *Client {
	return newClientWithBase(forecastURL)
}

// newClientWithBase creates a Client against a custom endpoint (used for testing).
func newClientWithBase(baseURL string) *Client {
	return &Client{
		httpClient: api.NewClient(),
		baseURL:    baseURL,
	}
}

// Forecast fetches the requested sections for the given location. Sections
// are independent API calls, so they run concurrently and are merged into a
// single domain.Weather.
func (c *Client) Forecast(ctx context.Context, loc domain.Location, req ports.ForecastRequest) (*domain.Weather, error) {
	weather := &domain.Weather{LocationName: loc.DisplayName}

	g, gctx := errgroup.WithContext(ctx)

	if req.Type.IncludesCurrent() {
		g.Go(func() error {
			current, err := c.fetchCurrent(gctx, loc)
			if err != nil {
				return err
			}
			weather.Current = current
			return nil
		})
	}

	if req.Type.IncludesDaily() {
		g.Go(func() error {
			daily, err := c.fetchDaily(gctx, loc, domain.ClampDays(req.Days))
			if err != nil {
				return err
			}
			weather.Daily = daily
			return nil
		})
	}

	if req.Type.IncludesHourly() {
		g.Go(func() error {
			hourly, err := c.fetchHourly(gctx, loc, domain.ClampHours(req.Hours))
			if err != nil {
				return err
			}
			weather.Hourly = hourly
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return weather, nil
}

func (c *Client) fetchCurrent(ctx context.Context, loc domain.Location) (*domain.CurrentForecast, error) {
	params := baseParams(loc)
	params.Set("current", strings.Join(currentFields, ","))

	var resp struct {
		Current currentSection `json:"current"`
	}
	if err := api.GetJSON(ctx, c.httpClient, c.baseURL, params, &resp); err != nil {
		return nil, zerr.Wrap(err, domain.ErrForecastRequestFailed.Error())
	}

	return resp.Current.toDomain(), nil
}

func (c *Client) fetchDaily(ctx context.Context, loc domain.Location, days int) ([]domain.DailyForecast, error) {
	params := baseParams(loc)
	params.Set("daily", strings.Join(dailyFields, ","))
	params.Set("forecast_days", strconv.Itoa(days))

	var resp struct {
		Daily dailySection `json:"daily"`
	}
	if err := api.GetJSON(ctx, c.httpClient, c.baseURL, params, &resp); err != nil {
		return nil, zerr.Wrap(err, domain.ErrForecastRequestFailed.Error())
	}

	return resp.Daily.toDomain(), nil
}

func (c *Client) fetchHourly(ctx context.Context, loc domain.Location, hours int) ([]domain.HourlyForecast, error) {
	params := baseParams(loc)
	params.Set("hourly", strings.Join(hourlyFields, ","))
	params.Set("forecast_hours", strconv.Itoa(hours))

	var resp struct {
		Hourly hourlySection `json:"hourly"`
	}
	if err := api.GetJSON(ctx, c.httpClient, c.baseURL, params, &resp); err != nil {
		return nil, zerr.Wrap(err, domain.ErrForecastRequestFailed.Error())
	}

	return resp.Hourly.toDomain(), nil
}

func baseParams(loc domain.Location) url.Values {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	params.Set("timezone", "auto")
	return params
}
