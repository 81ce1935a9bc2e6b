package input

import (
	"context"

	"weather-insight/internal/domain"
)

// CalendarService interface - Input port (use case)
type CalendarService interface {
	// ListTodayEvents returns the session's events from now until the end of the
	// local day, ordered by start time. Fails with domain.ErrUnauthenticated
	// when the session has no credentials.
	ListTodayEvents(ctx context.Context, sessionID string) ([]domain.CalendarEvent, error)
}
