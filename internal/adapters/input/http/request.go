package http

import "weather-insight/internal/domain"

type (
	// AuthRequest struct - query of the consent URL request
	AuthRequest struct {
		Redirect string `query:"redirect"`
	}

	// CallbackRequest struct - query the provider sends back after consent
	CallbackRequest struct {
		Code  string `query:"code"`
		Error string `query:"error"`
	}

	// WeatherRequest struct - weather lookup query
	WeatherRequest struct {
		City string `query:"city"`
		Lat  string `query:"lat"`
		Lon  string `query:"lon"`
	}

	// PromptRequest struct - free-text insight request body
	PromptRequest struct {
		Prompt string `json:"prompt" validate:"required"`
	}

	// AnalyzeRequest struct - event analysis request body
	AnalyzeRequest struct {
		Events []domain.CalendarEvent `json:"events" validate:"required"`
	}
)

func (r WeatherRequest) toDomain() domain.WeatherQuery {
	return domain.WeatherQuery{City: r.City, Lat: r.Lat, Lon: r.Lon}
}
