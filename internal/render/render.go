// Package render formats weather data as terminal panels using lipgloss.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
	"github.com/sanbobsan/weather-cli/internal/ui/style"
)

// panelWidth keeps all panels visually aligned.
const panelWidth = 64

const missing = "—"

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Grey).
			Padding(0, 2).
			Width(panelWidth)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.White)

	labelStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Width(18).
			Align(lipgloss.Right)

	valueStyle = lipgloss.NewStyle().
			Foreground(style.White)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Cyan)

	sunStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	rainStyle = lipgloss.NewStyle().
			Foreground(style.Blue)
)

// weekdays holds Russian weekday names indexed by time.Weekday.
var weekdays = [...]string{
	"воскресенье",
	"понедельник",
	"вторник",
	"среда",
	"четверг",
	"пятница",
	"суббота",
}

// Weather assembles the full forecast report: a location header followed by
// the sections present in w. Daily panels are limited to showDaily entries
// and the hourly table to showHourly rows.
func Weather(w *domain.Weather, showDaily, showHourly int) string {
	panels := []string{LocationHeader(w.LocationName)}

	if w.Current != nil {
		panels = append(panels, Current(w.Current))
	}

	if len(w.Daily) > 0 && showDaily > 0 {
		days := w.Daily
		if showDaily < len(days) {
			days = days[:showDaily]
		}
		for _, day := range days {
			panels = append(panels, Daily(day))
		}
	}

	if len(w.Hourly) > 0 && showHourly > 0 {
		panels = append(panels, Hourly(w.Hourly, showHourly))
	}

	return strings.Join(panels, "\n")
}

// LocationHeader renders the panel with the resolved location name.
func LocationHeader(name string) string {
	return panelStyle.Render("🌐  " + titleStyle.Render(name))
}

// Current renders the current conditions panel.
func Current(f *domain.CurrentForecast) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📍 Текущая погода"))
	b.WriteString("\n\n")
	b.WriteString(conditionLine(f.WeatherCode))
	b.WriteString("\n\n")

	dayNight := "Ночь"
	if f.IsDay {
		dayNight = "День"
	}
	writeRow(&b, "Время", valueStyle.Bold(true).Render(f.Time.Format("15:04")+" ("+dayNight+")"))

	writeRow(&b, "Температура", temperature(f.Temperature))
	if f.ApparentTemperature != nil {
		writeRow(&b, "Ощущается", temperature(*f.ApparentTemperature))
	}

	wind := formatFloat(f.WindSpeed) + " м/с"
	if f.WindDirection != nil {
		wind += fmt.Sprintf(" (%d°)", *f.WindDirection)
	}
	writeRow(&b, "Ветер", valueStyle.Render(wind))

	writeRow(&b, "Влажность", valueStyle.Render(strconv.Itoa(f.RelativeHumidity)+"%"))

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// Daily renders the forecast panel for a single day.
func Daily(f domain.DailyForecast) string {
	var b strings.Builder

	date := f.Time.Format("02.01.2006")

	b.WriteString(titleStyle.Render("📅 " + date))
	b.WriteString("\n\n")
	b.WriteString(conditionLine(f.WeatherCode))
	b.WriteString("\n\n")

	writeRow(&b, "Дата", valueStyle.Bold(true).Render(weekdays[f.Time.Weekday()]+", "+date))

	writeRow(&b, "Минимальная", temperature(f.TemperatureMin))
	writeRow(&b, "Максимальная", temperature(f.TemperatureMax))
	if f.ApparentTemperatureMin != nil {
		writeRow(&b, "Ощущается (мин)", temperature(*f.ApparentTemperatureMin))
	}
	if f.ApparentTemperatureMax != nil {
		writeRow(&b, "Ощущается (макс)", temperature(*f.ApparentTemperatureMax))
	}

	precip := strconv.Itoa(f.PrecipitationProbabilityMax) + "%"
	wet := f.PrecipitationSum != nil && *f.PrecipitationSum > 0
	if wet {
		precip += fmt.Sprintf(" (%.1f мм)", *f.PrecipitationSum)
	}
	if wet {
		writeRow(&b, "Осадки", rainStyle.Render(precip))
	} else {
		writeRow(&b, "Осадки", valueStyle.Render(precip))
	}

	if f.WindSpeedMax != nil {
		writeRow(&b, "Ветер (макс)", valueStyle.Render(formatFloat(*f.WindSpeedMax)+" м/с"))
	}

	if !f.Sunrise.IsZero() && !f.Sunset.IsZero() {
		writeRow(&b, "Солнце", sunStyle.Render(f.Sunrise.Format("15:04")+" — "+f.Sunset.Format("15:04")))
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// hourly table column widths.
var hourlyColumns = []struct {
	title string
	width int
}{
	{"Время", 8},
	{"Погода", 22},
	{"Темп", 7},
	{"Ветер", 10},
	{"Влажность", 10},
	{"Осадки", 7},
}

// Hourly renders the hour-by-hour table panel, at most limit rows.
func Hourly(rows []domain.HourlyForecast, limit int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("⏰ Почасовой прогноз"))
	b.WriteString("\n\n")

	for _, col := range hourlyColumns {
		b.WriteString(headerStyle.Width(col.width).Render(col.title))
	}
	b.WriteString("\n")

	if limit < len(rows) {
		rows = rows[:limit]
	}
	for _, hour := range rows {
		cells := []string{
			valueStyle.Bold(true).Render(hour.Time.Format("15:04")),
			condition(hour.WeatherCode).Render(domain.DescribeWeather(hour.WeatherCode).Description),
			temperature(hour.Temperature),
			optionalCell(hour.WindSpeed, func(v float64) string { return formatFloat(v) + " м/с" }),
			optionalCell(hour.RelativeHumidity, func(v int) string { return strconv.Itoa(v) + "%" }),
			optionalCell(hour.PrecipitationProbability, func(v int) string { return strconv.Itoa(v) + "%" }),
		}
		for i, cell := range cells {
			b.WriteString(lipgloss.NewStyle().Width(hourlyColumns[i].width).Render(cell))
		}
		b.WriteString("\n")
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// NotFound renders the panel shown when geocoding finds nothing.
func NotFound(query string) string {
	return Message(fmt.Sprintf("Локация '%s' не найдена", query))
}

// Message renders a short single-message panel used by set/get/clear.
func Message(text string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Grey).
		Padding(0, 2).
		Render(text)
}

// conditionLine renders the "emoji description" line for a weather code.
func conditionLine(code int) string {
	info := domain.DescribeWeather(code)
	return info.Emoji + " " + condition(code).Render(info.Description)
}

func condition(code int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(style.Condition(domain.ClassifyWeather(code)))
}

func temperature(celsius float64) string {
	return lipgloss.NewStyle().
		Foreground(style.Temperature(celsius)).
		Render(fmt.Sprintf("%.0f°C", celsius))
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString("  ")
	b.WriteString(value)
	b.WriteString("\n")
}

// formatFloat renders a float without trailing zeros, the way the API
// reports wind speeds.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// optionalCell formats an optional value, rendering a dash when absent.
func optionalCell[T any](v *T, format func(T) string) string {
	if v == nil {
		return missing
	}
	return valueStyle.Render(format(*v))
}
