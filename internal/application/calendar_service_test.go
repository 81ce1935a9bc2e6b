package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-insight/internal/domain"
)

// TestCalendarServiceUnauthenticated tests that no upstream call happens without credentials
func TestCalendarServiceUnauthenticated(t *testing.T) {
	client := &MockCalendarClient{}
	service := NewCalendarService(NewMockCredentialStore(), client)

	_, err := service.ListTodayEvents(context.Background(), "session-1")

	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
	if client.Calls != 0 {
		t.Errorf("expected no calendar calls, got %d", client.Calls)
	}
}

// TestCalendarServiceEmptySession tests that a request without a session is unauthenticated
func TestCalendarServiceEmptySession(t *testing.T) {
	store := NewMockCredentialStore()
	service := NewCalendarService(store, &MockCalendarClient{})

	_, err := service.ListTodayEvents(context.Background(), "")

	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
	if store.GetCalls != 0 {
		t.Error("expected store not to be consulted")
	}
}

// TestCalendarServiceWindowAndCredentials tests the time window and credentials passed to the provider
func TestCalendarServiceWindowAndCredentials(t *testing.T) {
	store := NewMockCredentialStore()
	creds := &domain.CredentialSet{AccessToken: "token"}
	store.PutCredentials(context.Background(), "session-1", creds)

	client := &MockCalendarClient{}
	service := NewCalendarService(store, client)
	loc := time.FixedZone("TEST", -5*60*60)
	now := time.Date(2024, 1, 1, 8, 15, 0, 0, loc)
	service.now = func() time.Time { return now }

	events, err := service.ListTodayEvents(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Errorf("expected empty non-nil list, got %v", events)
	}

	if client.LastCreds != creds {
		t.Error("expected stored credentials to be used")
	}
	if !client.LastWindow.Start.Equal(now) {
		t.Errorf("expected window start %v, got %v", now, client.LastWindow.Start)
	}
	expectedEnd := time.Date(2024, 1, 1, 23, 59, 59, 999000000, loc)
	if !client.LastWindow.End.Equal(expectedEnd) {
		t.Errorf("expected window end %v, got %v", expectedEnd, client.LastWindow.End)
	}
}

// TestCalendarServiceNilEventsBecomeEmpty tests that a provider returning nil yields an empty list
func TestCalendarServiceNilEventsBecomeEmpty(t *testing.T) {
	store := NewMockCredentialStore()
	store.PutCredentials(context.Background(), "session-1", &domain.CredentialSet{AccessToken: "token"})
	client := &MockCalendarClient{
		ListEventsFunc: func(ctx context.Context, creds *domain.CredentialSet, window domain.TimeWindow) ([]domain.CalendarEvent, error) {
			return nil, nil
		},
	}
	service := NewCalendarService(store, client)

	events, err := service.ListTodayEvents(context.Background(), "session-1")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if events == nil {
		t.Error("expected non-nil slice")
	}
}

// TestCalendarServiceUpstreamFailure tests that provider failures are reported as upstream errors
func TestCalendarServiceUpstreamFailure(t *testing.T) {
	store := NewMockCredentialStore()
	store.PutCredentials(context.Background(), "session-1", &domain.CredentialSet{AccessToken: "expired"})
	client := &MockCalendarClient{
		ListEventsFunc: func(ctx context.Context, creds *domain.CredentialSet, window domain.TimeWindow) ([]domain.CalendarEvent, error) {
			return nil, errors.New("401 invalid credentials")
		},
	}
	service := NewCalendarService(store, client)

	_, err := service.ListTodayEvents(context.Background(), "session-1")

	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

// TestCalendarServiceStoreFailure tests that storage errors are not mistaken for a missing login
func TestCalendarServiceStoreFailure(t *testing.T) {
	store := NewMockCredentialStore()
	store.GetCredentialsFunc = func(ctx context.Context, sessionID string) (*domain.CredentialSet, error) {
		return nil, errors.New("connection refused")
	}
	service := NewCalendarService(store, &MockCalendarClient{})

	_, err := service.ListTodayEvents(context.Background(), "session-1")

	if errors.Is(err, domain.ErrUnauthenticated) {
		t.Error("expected storage failure, got ErrUnauthenticated")
	}
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
