package application

import (
	"context"
	"sync"
	"time"

	"weather-insight/internal/domain"
)

// Mock implementations for testing

// MockCredentialStore implements output.CredentialStore for testing
type MockCredentialStore struct {
	GetCredentialsFunc func(ctx context.Context, sessionID string) (*domain.CredentialSet, error)
	PutCredentialsFunc func(ctx context.Context, sessionID string, creds *domain.CredentialSet) error
	PurgeExpiredFunc   func(ctx context.Context, cutoff time.Time) (int, error)

	mu      sync.Mutex
	entries map[string]*domain.CredentialSet

	// Captured values for assertions
	GetCalls    int
	PutCalls    int
	DeleteCalls int
	LastCutoff  time.Time
}

func NewMockCredentialStore() *MockCredentialStore {
	return &MockCredentialStore{entries: make(map[string]*domain.CredentialSet)}
}

func (m *MockCredentialStore) GetCredentials(ctx context.Context, sessionID string) (*domain.CredentialSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if m.GetCredentialsFunc != nil {
		return m.GetCredentialsFunc(ctx, sessionID)
	}
	return m.entries[sessionID], nil
}

func (m *MockCredentialStore) PutCredentials(ctx context.Context, sessionID string, creds *domain.CredentialSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls++
	if m.PutCredentialsFunc != nil {
		return m.PutCredentialsFunc(ctx, sessionID, creds)
	}
	m.entries[sessionID] = creds
	return nil
}

func (m *MockCredentialStore) DeleteCredentials(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	delete(m.entries, sessionID)
	return nil
}

func (m *MockCredentialStore) PurgeExpired(ctx context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastCutoff = cutoff
	if m.PurgeExpiredFunc != nil {
		return m.PurgeExpiredFunc(ctx, cutoff)
	}
	return 0, nil
}

func (m *MockCredentialStore) Ping(ctx context.Context) error {
	return nil
}

// MockOAuthProvider implements output.OAuthProvider for testing
type MockOAuthProvider struct {
	ExchangeFunc func(ctx context.Context, code string) (*domain.CredentialSet, error)

	// Captured values for assertions
	LastState string
	LastCode  string
}

func (m *MockOAuthProvider) AuthCodeURL(state string) string {
	m.LastState = state
	return "https://accounts.example.com/o/oauth2/auth?state=" + state
}

func (m *MockOAuthProvider) Exchange(ctx context.Context, code string) (*domain.CredentialSet, error) {
	m.LastCode = code
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, code)
	}
	return &domain.CredentialSet{AccessToken: "access-" + code, RefreshToken: "refresh-" + code}, nil
}

// MockCalendarClient implements output.CalendarClient for testing
type MockCalendarClient struct {
	ListEventsFunc func(ctx context.Context, creds *domain.CredentialSet, window domain.TimeWindow) ([]domain.CalendarEvent, error)

	// Captured values for assertions
	Calls      int
	LastCreds  *domain.CredentialSet
	LastWindow domain.TimeWindow
}

func (m *MockCalendarClient) ListEvents(ctx context.Context, creds *domain.CredentialSet, window domain.TimeWindow) ([]domain.CalendarEvent, error) {
	m.Calls++
	m.LastCreds = creds
	m.LastWindow = window
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc(ctx, creds, window)
	}
	return []domain.CalendarEvent{}, nil
}

// MockWeatherClient implements output.WeatherClient for testing
type MockWeatherClient struct {
	CurrentWeatherFunc func(ctx context.Context, query domain.WeatherQuery) (domain.WeatherSnapshot, error)

	// Captured values for assertions
	Calls     int
	LastQuery domain.WeatherQuery
}

func (m *MockWeatherClient) CurrentWeather(ctx context.Context, query domain.WeatherQuery) (domain.WeatherSnapshot, error) {
	m.Calls++
	m.LastQuery = query
	if m.CurrentWeatherFunc != nil {
		return m.CurrentWeatherFunc(ctx, query)
	}
	return domain.WeatherSnapshot(`{"name":"Toronto"}`), nil
}

// MockInsightGenerator implements output.InsightGenerator for testing
type MockInsightGenerator struct {
	GenerateTextFunc func(ctx context.Context, prompt string) (string, error)

	// Captured values for assertions
	Calls      int
	LastPrompt string
}

func (m *MockInsightGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, prompt)
	}
	return "AI response", nil
}
