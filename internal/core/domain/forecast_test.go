package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
)

func TestForecastType_Sections(t *testing.T) {
	tests := []struct {
		forecastType domain.ForecastType
		current      bool
		daily        bool
		hourly       bool
	}{
		{domain.ForecastCurrent, true, false, false},
		{domain.ForecastDaily, false, true, false},
		{domain.ForecastHourly, false, false, true},
		{domain.ForecastMixed, true, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.forecastType), func(t *testing.T) {
			assert.Equal(t, tt.current, tt.forecastType.IncludesCurrent())
			assert.Equal(t, tt.daily, tt.forecastType.IncludesDaily())
			assert.Equal(t, tt.hourly, tt.forecastType.IncludesHourly())
		})
	}
}

func TestClampDays(t *testing.T) {
	assert.Equal(t, domain.MinDays, domain.ClampDays(-3))
	assert.Equal(t, domain.MinDays, domain.ClampDays(0))
	assert.Equal(t, 7, domain.ClampDays(7))
	assert.Equal(t, domain.MaxDays, domain.ClampDays(100))
}

func TestClampHours(t *testing.T) {
	assert.Equal(t, domain.MinHours, domain.ClampHours(0))
	assert.Equal(t, 12, domain.ClampHours(12))
	assert.Equal(t, domain.MaxHours, domain.ClampHours(500))
}
