package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weather-insight/internal/domain"
	"weather-insight/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// CalendarService struct - Application service fetching today's events for a session
type CalendarService struct {
	store  output.CredentialStore
	client output.CalendarClient
	now    func() time.Time
}

// NewCalendarService func - Creates new calendar service
func NewCalendarService(store output.CredentialStore, client output.CalendarClient) *CalendarService {
	return &CalendarService{
		store:  store,
		client: client,
		now:    time.Now,
	}
}

// ListTodayEvents func - Use case: list events from now until the end of the local day
func (s *CalendarService) ListTodayEvents(ctx context.Context, sessionID string) ([]domain.CalendarEvent, error) {
	if sessionID == "" {
		return nil, domain.ErrUnauthenticated
	}

	creds, err := s.store.GetCredentials(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load credentials: %v", domain.ErrUpstreamUnavailable, err)
	}
	if !creds.Valid() {
		return nil, domain.ErrUnauthenticated
	}

	window := domain.TodayWindow(s.now())
	events, err := s.client.ListEvents(ctx, creds, window)
	if err != nil {
		if !errors.Is(err, domain.ErrUpstreamUnavailable) {
			err = fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
		}
		return nil, err
	}
	if events == nil {
		events = []domain.CalendarEvent{}
	}

	logrus.Debugf("Fetched %d calendar events between %s and %s",
		len(events), window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))

	return events, nil
}
