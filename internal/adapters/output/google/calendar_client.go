package google

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weather-insight/configs"
	"weather-insight/internal/domain"
	"weather-insight/internal/ports/output"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var _ output.CalendarClient = (*CalendarClientAdapter)(nil)

const primaryCalendar = "primary"

// CalendarClientAdapter struct - Output adapter for the Google Calendar API
type CalendarClientAdapter struct {
	endpoint string
}

// NewCalendarClientAdapter func - Creates the adapter; CalendarURL overrides the API base when set
func NewCalendarClientAdapter(cfg configs.Google) *CalendarClientAdapter {
	return &CalendarClientAdapter{
		endpoint: cfg.CalendarURL,
	}
}

// ListEvents func - Lists single event instances of the primary calendar inside window.
// The stored token is used as-is and never refreshed.
func (a *CalendarClientAdapter) ListEvents(ctx context.Context, creds *domain.CredentialSet, window domain.TimeWindow) ([]domain.CalendarEvent, error) {
	service, err := a.newService(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", domain.ErrUpstreamUnavailable, err)
	}

	call := service.Events.List(primaryCalendar).
		TimeMin(window.Start.Format(time.RFC3339)).
		TimeMax(window.End.Format(time.RFC3339Nano)).
		SingleEvents(true).
		OrderBy("startTime")

	events := []domain.CalendarEvent{}
	err = call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			event, err := toDomainEvent(item)
			if err != nil {
				return err
			}
			events = append(events, event)
		}
		return nil
	})
	if err != nil {
		logrus.Errorf("Calendar events request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	return events, nil
}

func (a *CalendarClientAdapter) newService(ctx context.Context, creds *domain.CredentialSet) (*calendar.Service, error) {
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(tokenFromCredentials(creds)))

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if a.endpoint != "" {
		opts = append(opts, option.WithEndpoint(a.endpoint))
	}
	return calendar.NewService(ctx, opts...)
}

// toDomainEvent keeps the provider's JSON object intact
func toDomainEvent(item *calendar.Event) (domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	raw, err := json.Marshal(item)
	if err != nil {
		return event, fmt.Errorf("failed to encode event: %w", err)
	}
	if err := json.Unmarshal(raw, &event); err != nil {
		return event, fmt.Errorf("failed to decode event: %w", err)
	}
	return event, nil
}
