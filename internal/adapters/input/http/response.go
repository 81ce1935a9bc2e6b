package http

import "net/http"

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// ServiceUnavailable response
	ServiceUnavailable = Status{Code: http.StatusServiceUnavailable, Message: []string{"Credential store unreachable"}}
)

// Error messages returned to the browser client
const (
	msgNotLoggedIn      = "Not logged in"
	msgAuthFailed       = "OAuth2 authentication failed"
	msgEventsFailed     = "Failed to fetch calendar events"
	msgLocationRequired = "City or coordinates required"
	msgInvalidEvents    = "Invalid events data"
	msgPromptRequired   = "Prompt is required"
	msgInternalError    = "Internal Server Error"
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// ErrorResponse struct - error body shared by every API route
	ErrorResponse struct {
		Error string `json:"error"`
	}

	// AuthURLResponse struct
	AuthURLResponse struct {
		URL string `json:"url"`
	}

	// InsightResponse struct
	InsightResponse struct {
		Insight string `json:"insight"`
	}

	// SuccessResponse struct
	SuccessResponse struct {
		Success bool `json:"success"`
	}
)
