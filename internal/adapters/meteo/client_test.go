package meteo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
	"github.com/sanbobsan/weather-cli/internal/core/ports"
)

var testLocation = domain.Location{DisplayName: "Берн, Швейцария", Latitude: 46.95, Longitude: 7.45}

// forecastHandler answers current/daily/hourly requests depending on which
// section parameter is present, recording the query of each call.
func forecastHandler(t *testing.T, queries *[]map[string]string) http.HandlerFunc {
	t.Helper()
	var mu sync.Mutex

	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		captured := map[string]string{}
		for key := range q {
			captured[key] = q.Get(key)
		}
		mu.Lock()
		*queries = append(*queries, captured)
		mu.Unlock()

		assert.Equal(t, "auto", q.Get("timezone"))

		resp := map[string]any{}
		switch {
		case q.Get("current") != "":
			resp["current"] = map[string]any{
				"time":                 "2026-08-29T14:00",
				"weather_code":         3,
				"temperature_2m":       21.4,
				"apparent_temperature": 20.1,
				"wind_speed_10m":       9.7,
				"wind_direction_10m":   250,
				"relative_humidity_2m": 58,
				"is_day":               1,
			}
		case q.Get("daily") != "":
			resp["daily"] = map[string]any{
				"time":                          []string{"2026-08-29", "2026-08-30"},
				"weather_code":                  []int{3, 61},
				"temperature_2m_max":            []float64{24.0, 19.5},
				"temperature_2m_min":            []float64{13.2, 12.8},
				"precipitation_probability_max": []int{10, 80},
				"sunrise":                       []string{"2026-08-29T06:41", "2026-08-30T06:42"},
				"sunset":                        []string{"2026-08-29T20:13", "2026-08-30T20:11"},
			}
		case q.Get("hourly") != "":
			resp["hourly"] = map[string]any{
				"time":           []string{"2026-08-29T14:00", "2026-08-29T15:00"},
				"weather_code":   []int{3, 3},
				"temperature_2m": []float64{21.4, 21.9},
			}
		default:
			t.Errorf("request without a section parameter: %s", r.URL.RawQuery)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func TestClient_Forecast_Current(t *testing.T) {
	var queries []map[string]string
	server := httptest.NewServer(forecastHandler(t, &queries))
	defer server.Close()

	c := newClientWithBase(server.URL)
	weather, err := c.Forecast(context.Background(), testLocation, ports.ForecastRequest{
		Type: domain.ForecastCurrent,
	})
	require.NoError(t, err)
	require.Len(t, queries, 1)

	require.NotNil(t, weather.Current)
	assert.Equal(t, "Берн, Швейцария", weather.LocationName)
	assert.Equal(t, 3, weather.Current.WeatherCode)
	assert.InDelta(t, 21.4, weather.Current.Temperature, 0.0001)
	assert.True(t, weather.Current.IsDay)
	require.NotNil(t, weather.Current.ApparentTemperature)
	assert.InDelta(t, 20.1, *weather.Current.ApparentTemperature, 0.0001)
	assert.Empty(t, weather.Daily)
	assert.Empty(t, weather.Hourly)
}

func TestClient_Forecast_Mixed(t *testing.T) {
	var queries []map[string]string
	server := httptest.NewServer(forecastHandler(t, &queries))
	defer server.Close()

	c := newClientWithBase(server.URL)
	weather, err := c.Forecast(context.Background(), testLocation, ports.ForecastRequest{
		Type:  domain.ForecastMixed,
		Days:  2,
		Hours: 2,
	})
	require.NoError(t, err)
	require.Len(t, queries, 3)

	require.NotNil(t, weather.Current)
	require.Len(t, weather.Daily, 2)
	require.Len(t, weather.Hourly, 2)

	assert.Equal(t, 61, weather.Daily[1].WeatherCode)
	assert.InDelta(t, 19.5, weather.Daily[1].TemperatureMax, 0.0001)
	assert.Equal(t, 80, weather.Daily[1].PrecipitationProbabilityMax)
	assert.Nil(t, weather.Daily[1].WindSpeedMax)

	assert.InDelta(t, 21.9, weather.Hourly[1].Temperature, 0.0001)
	assert.Nil(t, weather.Hourly[1].CloudCover)
}

func TestClient_Forecast_ClampsOutOfRangeCounts(t *testing.T) {
	var queries []map[string]string
	server := httptest.NewServer(forecastHandler(t, &queries))
	defer server.Close()

	c := newClientWithBase(server.URL)
	_, err := c.Forecast(context.Background(), testLocation, ports.ForecastRequest{
		Type: domain.ForecastDaily,
		Days: 99,
	})
	require.NoError(t, err)

	require.Len(t, queries, 1)
	assert.Equal(t, "16", queries[0]["forecast_days"])
}

func TestClient_Forecast_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	c := newClientWithBase(server.URL)
	_, err := c.Forecast(context.Background(), testLocation, ports.ForecastRequest{
		Type: domain.ForecastCurrent,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrForecastRequestFailed.Error())
}

func TestAPITime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{`"2026-08-29T14:00"`, false},
		{`"2026-08-29T14:00:30"`, false},
		{`"2026-08-29"`, false},
		{`"14:00"`, true},
	}

	for _, tt := range tests {
		var ts apiTime
		err := ts.UnmarshalJSON([]byte(tt.input))
		if tt.wantErr {
			assert.Error(t, err, tt.input)
		} else {
			assert.NoError(t, err, tt.input)
			assert.False(t, ts.IsZero(), tt.input)
		}
	}
}
