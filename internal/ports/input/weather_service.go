package input

import (
	"context"

	"weather-insight/internal/domain"
)

// WeatherService interface - Input port (use case)
type WeatherService interface {
	CurrentWeather(ctx context.Context, query domain.WeatherQuery) (domain.WeatherSnapshot, error)
}
