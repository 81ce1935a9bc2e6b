package application

import (
	"context"

	"weather-insight/internal/domain"
	"weather-insight/internal/ports/output"
)

// WeatherService struct - Application service for current-conditions lookups
type WeatherService struct {
	client output.WeatherClient
}

// NewWeatherService func - Creates new weather service
func NewWeatherService(client output.WeatherClient) *WeatherService {
	return &WeatherService{
		client: client,
	}
}

// CurrentWeather func - Use case: validate the query, then forward it to the provider
func (s *WeatherService) CurrentWeather(ctx context.Context, query domain.WeatherQuery) (domain.WeatherSnapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.client.CurrentWeather(ctx, query)
}
