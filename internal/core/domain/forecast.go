// Package domain contains the core types for the weather CLI.
package domain

import "time"

// ForecastType selects which forecast sections are requested and rendered.
type ForecastType string

const (
	// ForecastCurrent requests only the current conditions.
	ForecastCurrent ForecastType = "current"
	// ForecastDaily requests the per-day forecast.
	ForecastDaily ForecastType = "daily"
	// ForecastHourly requests the per-hour forecast.
	ForecastHourly ForecastType = "hourly"
	// ForecastMixed requests all three sections.
	ForecastMixed ForecastType = "mixed"
)

// IncludesCurrent reports whether the current section is part of this forecast type.
func (t ForecastType) IncludesCurrent() bool {
	return t == ForecastCurrent || t == ForecastMixed
}

// IncludesDaily reports whether the daily section is part of this forecast type.
func (t ForecastType) IncludesDaily() bool {
	return t == ForecastDaily || t == ForecastMixed
}

// IncludesHourly reports whether the hourly section is part of this forecast type.
func (t ForecastType) IncludesHourly() bool {
	return t == ForecastHourly || t == ForecastMixed
}

const (
	// MinDays is the smallest day count the forecast API accepts.
	MinDays = 1
	// MaxDays is the largest day count the forecast API accepts.
	MaxDays = 16
	// MinHours is the smallest hour count the forecast API accepts.
	MinHours = 1
	// MaxHours is the largest hour count the forecast API accepts.
	MaxHours = 168

	// DefaultDays is used when the daily forecast is requested without an explicit count.
	DefaultDays = 4
	// DefaultHours is used when the hourly forecast is requested without an explicit count.
	DefaultHours = 12
)

// ClampDays limits a day count to the range the forecast API accepts.
func ClampDays(n int) int {
	return clamp(n, MinDays, MaxDays)
}

// ClampHours limits an hour count to the range the forecast API accepts.
func ClampHours(n int) int {
	return clamp(n, MinHours, MaxHours)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// CurrentForecast holds the current conditions at a location.
// Pointer fields are optional in the API response.
type CurrentForecast struct {
	Time                time.Time
	WeatherCode         int
	Temperature         float64
	ApparentTemperature *float64
	WindSpeed           float64
	WindDirection       *int
	RelativeHumidity    int
	IsDay               bool
}

// DailyForecast holds the aggregated forecast for a single day.
type DailyForecast struct {
	Time                        time.Time
	WeatherCode                 int
	TemperatureMax              float64
	TemperatureMin              float64
	ApparentTemperatureMax      *float64
	ApparentTemperatureMin      *float64
	WindSpeedMax                *float64
	PrecipitationProbabilityMax int
	PrecipitationSum            *float64
	Sunrise                     time.Time
	Sunset                      time.Time
}

// HourlyForecast holds the forecast for a single hour.
type HourlyForecast struct {
	Time                     time.Time
	WeatherCode              int
	Temperature              float64
	ApparentTemperature      *float64
	WindSpeed                *float64
	RelativeHumidity         *int
	PrecipitationProbability *int
	CloudCover               *int
}

// Weather is the assembled forecast for a location. Sections not requested
// are left nil/empty.
type Weather struct {
	LocationName string
	Current      *CurrentForecast
	Daily        []DailyForecast
	Hourly       []HourlyForecast
}
