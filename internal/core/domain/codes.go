package domain

// Condition is a coarse grouping of WMO weather codes used for styling.
type Condition int

const (
	// ConditionOther covers codes without a dedicated style.
	ConditionOther Condition = iota
	// ConditionClear covers clear and mostly clear skies.
	ConditionClear
	// ConditionCloudy covers partly cloudy and overcast skies.
	ConditionCloudy
	// ConditionFog covers fog and rime.
	ConditionFog
	// ConditionRain covers drizzle and rain.
	ConditionRain
	// ConditionSnow covers snowfall and snow grains.
	ConditionSnow
	// ConditionThunder covers thunderstorms.
	ConditionThunder
)

// WeatherInfo is the human description of a WMO weather code.
type WeatherInfo struct {
	Emoji       string
	Description string
}

// weatherCodes maps WMO interpretation codes to their description.
var weatherCodes = map[int]WeatherInfo{
	0:  {"☀️", "Ясно"},
	1:  {"🌤️", "Преимущественно ясно"},
	2:  {"⛅", "Переменная облачность"},
	3:  {"☁️", "Пасмурно"},
	45: {"🌫️", "Туман"},
	48: {"🌫️", "Иней"},
	51: {"🌦️", "Слабая морось"},
	53: {"🌦️", "Морось"},
	55: {"🌦️", "Плотная морось"},
	61: {"🌧️", "Слабый дождь"},
	63: {"🌧️", "Дождь"},
	65: {"🌧️", "Сильный дождь"},
	71: {"🌨️", "Слабый снег"},
	73: {"🌨️", "Снег"},
	75: {"🌨️", "Сильный снег"},
	77: {"❄️", "Снежные зерна"},
	80: {"🌦️", "Ливень"},
	81: {"🌧️", "Сильный ливень"},
	82: {"⛈️", "Очень сильный ливень"},
	95: {"⛈️", "Гроза"},
	96: {"⛈️", "Гроза с градом"},
	99: {"⛈️", "Сильная гроза с градом"},
}

// DescribeWeather returns the description for a WMO weather code.
// Unknown codes get a placeholder instead of an error.
func DescribeWeather(code int) WeatherInfo {
	if info, ok := weatherCodes[code]; ok {
		return info
	}
	return WeatherInfo{Emoji: "❓", Description: "Неизвестно"}
}

// ClassifyWeather maps a WMO weather code to a styling condition.
func ClassifyWeather(code int) Condition {
	switch {
	case code == 0 || code == 1:
		return ConditionClear
	case code == 2 || code == 3:
		return ConditionCloudy
	case code == 45 || code == 48:
		return ConditionFog
	case code >= 50 && code <= 67:
		return ConditionRain
	case code >= 70 && code <= 77:
		return ConditionSnow
	case code >= 95:
		return ConditionThunder
	default:
		return ConditionOther
	}
}
