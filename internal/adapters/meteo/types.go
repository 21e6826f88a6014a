package meteo

import (
	"fmt"
	"strings"
	"time"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
)

// Request field lists per forecast section. These mirror the variable names
// of the Open-Meteo forecast API.
var (
	currentFields = []string{
		"weather_code",
		"temperature_2m",
		"apparent_temperature",
		"wind_speed_10m",
		"wind_direction_10m",
		"relative_humidity_2m",
		"is_day",
	}

	dailyFields = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"apparent_temperature_max",
		"apparent_temperature_min",
		"wind_speed_10m_max",
		"precipitation_probability_max",
		"precipitation_sum",
		"sunrise",
		"sunset",
	}

	hourlyFields = []string{
		"weather_code",
		"temperature_2m",
		"apparent_temperature",
		"wind_speed_10m",
		"relative_humidity_2m",
		"precipitation_probability",
		"cloud_cover",
	}
)

// apiTime parses the timestamp formats Open-Meteo uses: minute precision for
// current/hourly values and sunrise/sunset, date-only for daily rows.
type apiTime struct {
	time.Time
}

var timeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// currentSection is the "current" object of the forecast response.
type currentSection struct {
	Time                apiTime  `json:"time"`
	WeatherCode         int      `json:"weather_code"`
	Temperature         float64  `json:"temperature_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	WindSpeed           float64  `json:"wind_speed_10m"`
	WindDirection       *int     `json:"wind_direction_10m"`
	RelativeHumidity    int      `json:"relative_humidity_2m"`
	IsDay               int      `json:"is_day"`
}

func (s *currentSection) toDomain() *domain.CurrentForecast {
	return &domain.CurrentForecast{
		Time:                s.Time.Time,
		WeatherCode:         s.WeatherCode,
		Temperature:         s.Temperature,
		ApparentTemperature: s.ApparentTemperature,
		WindSpeed:           s.WindSpeed,
		WindDirection:       s.WindDirection,
		RelativeHumidity:    s.RelativeHumidity,
		IsDay:               s.IsDay == 1,
	}
}

// dailySection is the columnar "daily" object of the forecast response:
// parallel arrays indexed by day.
type dailySection struct {
	Time                        []apiTime  `json:"time"`
	WeatherCode                 []int      `json:"weather_code"`
	TemperatureMax              []float64  `json:"temperature_2m_max"`
	TemperatureMin              []float64  `json:"temperature_2m_min"`
	ApparentTemperatureMax      []*float64 `json:"apparent_temperature_max"`
	ApparentTemperatureMin      []*float64 `json:"apparent_temperature_min"`
	WindSpeedMax                []*float64 `json:"wind_speed_10m_max"`
	PrecipitationProbabilityMax []int      `json:"precipitation_probability_max"`
	PrecipitationSum            []*float64 `json:"precipitation_sum"`
	Sunrise                     []apiTime  `json:"sunrise"`
	Sunset                      []apiTime  `json:"sunset"`
}

// toDomain transposes the columnar response into one row per day.
// Short columns yield zero values rather than panics.
func (s *dailySection) toDomain() []domain.DailyForecast {
	rows := make([]domain.DailyForecast, 0, len(s.Time))
	for i := range s.Time {
		rows = append(rows, domain.DailyForecast{
			Time:                        s.Time[i].Time,
			WeatherCode:                 col(s.WeatherCode, i),
			TemperatureMax:              col(s.TemperatureMax, i),
			TemperatureMin:              col(s.TemperatureMin, i),
			ApparentTemperatureMax:      colPtr(s.ApparentTemperatureMax, i),
			ApparentTemperatureMin:      colPtr(s.ApparentTemperatureMin, i),
			WindSpeedMax:                colPtr(s.WindSpeedMax, i),
			PrecipitationProbabilityMax: col(s.PrecipitationProbabilityMax, i),
			PrecipitationSum:            colPtr(s.PrecipitationSum, i),
			Sunrise:                     col(s.Sunrise, i).Time,
			Sunset:                      col(s.Sunset, i).Time,
		})
	}
	return rows
}

// hourlySection is the columnar "hourly" object of the forecast response.
type hourlySection struct {
	Time                     []apiTime  `json:"time"`
	WeatherCode              []int      `json:"weather_code"`
	Temperature              []float64  `json:"temperature_2m"`
	ApparentTemperature      []*float64 `json:"apparent_temperature"`
	WindSpeed                []*float64 `json:"wind_speed_10m"`
	RelativeHumidity         []*int     `json:"relative_humidity_2m"`
	PrecipitationProbability []*int     `json:"precipitation_probability"`
	CloudCover               []*int     `json:"cloud_cover"`
}

// toDomain transposes the columnar response into one row per hour.
func (s *hourlySection) toDomain() []domain.HourlyForecast {
	rows := make([]domain.HourlyForecast, 0, len(s.Time))
	for i := range s.Time {
		rows = append(rows, domain.HourlyForecast{
			Time:                     s.Time[i].Time,
			WeatherCode:              col(s.WeatherCode, i),
			Temperature:              col(s.Temperature, i),
			ApparentTemperature:      colPtr(s.ApparentTemperature, i),
			WindSpeed:                colPtr(s.WindSpeed, i),
			RelativeHumidity:         colPtr(s.RelativeHumidity, i),
			PrecipitationProbability: colPtr(s.PrecipitationProbability, i),
			CloudCover:               colPtr(s.CloudCover, i),
		})
	}
	return rows
}

// col returns the i-th element of a column, or the zero value when the
// column is shorter than the time axis.
func col[T any](s []T, i int) T {
	if i < len(s) {
		return s[i]
	}
	var zero T
	return zero
}

// colPtr returns the i-th element of an optional column, or nil.
func colPtr[T any](s []*T, i int) *T {
	if i < len(s) {
		return s[i]
	}
	return nil
}
