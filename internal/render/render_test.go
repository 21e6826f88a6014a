package render_test

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
	"github.com/sanbobsan/weather-cli/internal/render"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func ptr[T any](v T) *T {
	return &v
}

func testTime(hour int) time.Time {
	return time.Date(2026, 8, 29, hour, 0, 0, 0, time.UTC)
}

func TestCurrent(t *testing.T) {
	out := render.Current(&domain.CurrentForecast{
		Time:                testTime(14),
		WeatherCode:         3,
		Temperature:         21.4,
		ApparentTemperature: ptr(20.1),
		WindSpeed:           9.7,
		WindDirection:       ptr(250),
		RelativeHumidity:    58,
		IsDay:               true,
	})

	assert.Contains(t, out, "Текущая погода")
	assert.Contains(t, out, "Пасмурно")
	assert.Contains(t, out, "14:00 (День)")
	assert.Contains(t, out, "21°C")
	assert.Contains(t, out, "20°C")
	assert.Contains(t, out, "9.7 м/с (250°)")
	assert.Contains(t, out, "58%")
}

func TestCurrent_OptionalFieldsAbsent(t *testing.T) {
	out := render.Current(&domain.CurrentForecast{
		Time:             testTime(2),
		WeatherCode:      0,
		Temperature:      12,
		WindSpeed:        3,
		RelativeHumidity: 80,
	})

	assert.Contains(t, out, "02:00 (Ночь)")
	assert.NotContains(t, out, "Ощущается")
	assert.Contains(t, out, "3 м/с")
	assert.NotContains(t, out, "(°)")
}

func TestDaily(t *testing.T) {
	out := render.Daily(domain.DailyForecast{
		Time:                        time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		WeatherCode:                 61,
		TemperatureMax:              19.5,
		TemperatureMin:              12.8,
		PrecipitationProbabilityMax: 80,
		PrecipitationSum:            ptr(4.2),
		Sunrise:                     time.Date(2026, 8, 30, 6, 42, 0, 0, time.UTC),
		Sunset:                      time.Date(2026, 8, 30, 20, 11, 0, 0, time.UTC),
	})

	assert.Contains(t, out, "30.08.2026")
	assert.Contains(t, out, "воскресенье")
	assert.Contains(t, out, "Слабый дождь")
	assert.Contains(t, out, "13°C")
	assert.Contains(t, out, "20°C")
	assert.Contains(t, out, "80% (4.2 мм)")
	assert.Contains(t, out, "06:42 — 20:11")
}

func TestHourly(t *testing.T) {
	rows := []domain.HourlyForecast{
		{
			Time:                     testTime(14),
			WeatherCode:              3,
			Temperature:              21.4,
			WindSpeed:                ptr(9.7),
			RelativeHumidity:         ptr(58),
			PrecipitationProbability: ptr(10),
		},
		{
			Time:        testTime(15),
			WeatherCode: 61,
			Temperature: 20.9,
		},
		{
			Time:        testTime(16),
			WeatherCode: 61,
			Temperature: 20.1,
		},
	}

	out := render.Hourly(rows, 2)

	assert.Contains(t, out, "Почасовой прогноз")
	assert.Contains(t, out, "Время")
	assert.Contains(t, out, "Влажность")
	assert.Contains(t, out, "14:00")
	assert.Contains(t, out, "15:00")
	// The third row falls outside the limit.
	assert.NotContains(t, out, "16:00")
	// Absent optional values render as a dash.
	assert.Contains(t, out, "—")
}

func TestWeather_SectionSelection(t *testing.T) {
	w := &domain.Weather{
		LocationName: "Берн, Швейцария",
		Current:      &domain.CurrentForecast{Time: testTime(14), WeatherCode: 0, Temperature: 20, WindSpeed: 5, RelativeHumidity: 50},
		Daily: []domain.DailyForecast{
			{Time: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), WeatherCode: 0, TemperatureMax: 24, TemperatureMin: 13},
			{Time: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), WeatherCode: 61, TemperatureMax: 19, TemperatureMin: 12},
		},
		Hourly: []domain.HourlyForecast{
			{Time: testTime(14), WeatherCode: 0, Temperature: 20},
		},
	}

	t.Run("renders everything when asked", func(t *testing.T) {
		out := render.Weather(w, 2, 1)
		assert.Contains(t, out, "Берн, Швейцария")
		assert.Contains(t, out, "Текущая погода")
		assert.Contains(t, out, "29.08.2026")
		assert.Contains(t, out, "30.08.2026")
		assert.Contains(t, out, "Почасовой прогноз")
	})

	t.Run("limits daily panels", func(t *testing.T) {
		out := render.Weather(w, 1, 0)
		assert.Contains(t, out, "29.08.2026")
		assert.NotContains(t, out, "30.08.2026")
		assert.NotContains(t, out, "Почасовой прогноз")
	})

	t.Run("skips absent sections", func(t *testing.T) {
		out := render.Weather(&domain.Weather{LocationName: "Берн"}, 4, 12)
		assert.Contains(t, out, "Берн")
		assert.NotContains(t, out, "Текущая погода")
		assert.NotContains(t, out, "Почасовой прогноз")
	})
}

func TestNotFound(t *testing.T) {
	out := render.NotFound("нигде")
	assert.Contains(t, out, "Локация 'нигде' не найдена")
}

func TestMessage(t *testing.T) {
	out := render.Message("Конфиг и кеш удалены")
	assert.Contains(t, out, "Конфиг и кеш удалены")
	// Panels carry a border.
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╰")
}
