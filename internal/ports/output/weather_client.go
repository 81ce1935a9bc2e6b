package output

import (
	"context"

	"weather-insight/internal/domain"
)

// WeatherClient interface - Output port
type WeatherClient interface {
	// CurrentWeather returns the provider payload for the query unmodified.
	// Provider error responses are returned as *domain.UpstreamError, transport
	// failures are wrapped with domain.ErrUpstreamUnavailable.
	CurrentWeather(ctx context.Context, query domain.WeatherQuery) (domain.WeatherSnapshot, error)
}
