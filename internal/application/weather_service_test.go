package application

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"weather-insight/internal/domain"
)

// TestWeatherServiceInvalidQuery tests that invalid queries never reach the provider
func TestWeatherServiceInvalidQuery(t *testing.T) {
	client := &MockWeatherClient{}
	service := NewWeatherService(client)

	_, err := service.CurrentWeather(context.Background(), domain.WeatherQuery{Lat: "40.7"})

	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", err)
	}
	if client.Calls != 0 {
		t.Errorf("expected no provider calls, got %d", client.Calls)
	}
}

// TestWeatherServicePassThrough tests that the provider payload is returned unchanged
func TestWeatherServicePassThrough(t *testing.T) {
	client := &MockWeatherClient{}
	service := NewWeatherService(client)

	snapshot, err := service.CurrentWeather(context.Background(), domain.WeatherQuery{City: "Toronto"})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(snapshot) != `{"name":"Toronto"}` {
		t.Errorf("unexpected payload: %s", snapshot)
	}
	if client.LastQuery.City != "Toronto" {
		t.Errorf("expected city Toronto, got %s", client.LastQuery.City)
	}
}

// TestWeatherServiceUpstreamError tests that provider status errors are returned as-is
func TestWeatherServiceUpstreamError(t *testing.T) {
	client := &MockWeatherClient{
		CurrentWeatherFunc: func(ctx context.Context, query domain.WeatherQuery) (domain.WeatherSnapshot, error) {
			return nil, &domain.UpstreamError{Provider: "openweather", Status: http.StatusNotFound, Message: "city not found"}
		},
	}
	service := NewWeatherService(client)

	_, err := service.CurrentWeather(context.Background(), domain.WeatherQuery{City: "Nowhere"})

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != http.StatusNotFound || upstream.Message != "city not found" {
		t.Errorf("unexpected upstream error: %+v", upstream)
	}
}
