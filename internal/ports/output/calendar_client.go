package output

import (
	"context"

	"weather-insight/internal/domain"
)

// CalendarClient interface - Output port
type CalendarClient interface {
	// ListEvents returns single (expanded) event instances of the primary
	// calendar starting inside window, ordered by start time ascending.
	ListEvents(ctx context.Context, creds *domain.CredentialSet, window domain.TimeWindow) ([]domain.CalendarEvent, error)
}
