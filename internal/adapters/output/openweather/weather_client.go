package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-insight/configs"
	"weather-insight/internal/domain"
	"weather-insight/internal/ports/output"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

var _ output.WeatherClient = (*WeatherClientAdapter)(nil)

const providerName = "openweather"

// WeatherClientAdapter struct - Output adapter for the OpenWeatherMap current-weather API
type WeatherClientAdapter struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	circuit    *gobreaker.CircuitBreaker
}

// providerResponse is what the breaker hands back for every answered request
type providerResponse struct {
	status int
	body   []byte
}

// NewWeatherClientAdapter func - Creates new OpenWeatherMap adapter
func NewWeatherClientAdapter(config configs.OpenWeather) *WeatherClientAdapter {
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 10 * time.Second
	}

	if config.APIKey == "" {
		logrus.Warn("OpenWeather API key is not configured, weather lookups will be rejected upstream")
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        providerName,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.Warnf("Circuit breaker %s changed from %s to %s", name, from, to)
		},
	})

	return &WeatherClientAdapter{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:    100,
				IdleConnTimeout: 90 * time.Second,
			},
		},
		apiKey:  config.APIKey,
		baseURL: baseURL,
		circuit: cb,
	}
}

// CurrentWeather func - Fetches current conditions in imperial units and returns the payload unmodified
func (a *WeatherClientAdapter) CurrentWeather(ctx context.Context, query domain.WeatherQuery) (domain.WeatherSnapshot, error) {
	requestURL := a.buildURL(query)

	result, err := a.circuit.Execute(func() (interface{}, error) {
		return a.send(ctx, requestURL)
	})
	if err != nil {
		var upstream *domain.UpstreamError
		switch {
		case errors.As(err, &upstream):
			return nil, upstream
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return nil, fmt.Errorf("%w: circuit breaker open: %v", domain.ErrUpstreamUnavailable, err)
		default:
			logrus.Errorf("OpenWeather request failed: %v", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
		}
	}

	resp, ok := result.(*providerResponse)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result type from circuit breaker", domain.ErrUpstreamUnavailable)
	}
	if resp.status < 200 || resp.status >= 300 {
		return nil, upstreamError(resp)
	}

	return domain.WeatherSnapshot(resp.body), nil
}

func (a *WeatherClientAdapter) buildURL(query domain.WeatherQuery) string {
	values := url.Values{}
	values.Set("appid", a.apiKey)
	values.Set("units", "imperial")
	if query.HasCity() {
		values.Set("q", query.City)
	} else {
		values.Set("lat", query.Lat)
		values.Set("lon", query.Lon)
	}
	return fmt.Sprintf("%s/data/2.5/weather?%s", a.baseURL, values.Encode())
}

// send performs one request. Only transport failures and 5xx answers are
// reported as errors so that client errors never trip the breaker.
func (a *WeatherClientAdapter) send(ctx context.Context, requestURL string) (*providerResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	httpResp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, stripURL(err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	resp := &providerResponse{status: httpResp.StatusCode, body: body}
	if resp.status >= 500 {
		return nil, upstreamError(resp)
	}
	return resp, nil
}

func upstreamError(resp *providerResponse) *domain.UpstreamError {
	var payload struct {
		Message string `json:"message"`
	}
	message := http.StatusText(resp.status)
	if err := json.Unmarshal(resp.body, &payload); err == nil && payload.Message != "" {
		message = payload.Message
	}
	return &domain.UpstreamError{
		Provider: providerName,
		Status:   resp.status,
		Message:  message,
	}
}

// stripURL drops the request URL from transport errors so the API key never leaks into messages
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
