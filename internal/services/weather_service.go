package services

import "strings"

type WeatherServiceInterface interface {
	GetForecast(destinationName, startDate string) string
}

// WeatherService is a deterministic stand-in for a real forecast provider.
// It matches a small set of known destinations by substring and falls back
// to a generic forecast; it never fails, so the draft workflow cannot be
// blocked on weather.
type WeatherService struct{}

func NewWeatherService() WeatherServiceInterface {
	return &WeatherService{}
}

func (w *WeatherService) GetForecast(destinationName, startDate string) string {
	_ = startDate // a real provider would use the date window

	normalized := strings.ToLower(destinationName)
	switch {
	case strings.Contains(normalized, "tokyo") || strings.Contains(normalized, "kyoto"):
		return "Mild and pleasant, with a mix of sun and clouds. Average temperature around 18°C (64°F)."
	case strings.Contains(normalized, "paris"):
		return "Cool and crisp with a chance of light showers. Average temperature around 12°C (54°F)."
	case strings.Contains(normalized, "san francisco"):
		return "Cool with morning fog, clearing to a sunny afternoon. Average temperature around 15°C (59°F)."
	default:
		return "Sunny and warm, with average temperatures around 25°C (77°F)."
	}
}
