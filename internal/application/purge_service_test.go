package application

import (
	"context"
	"testing"
	"time"
)

// TestCredentialPurgeServiceCutoff tests that the cutoff is now minus the session timeout
func TestCredentialPurgeServiceCutoff(t *testing.T) {
	store := NewMockCredentialStore()
	store.PurgeExpiredFunc = func(ctx context.Context, cutoff time.Time) (int, error) {
		return 3, nil
	}
	service := NewCredentialPurgeService(store, 30*time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	removed, err := service.PurgeExpired(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 3 {
		t.Errorf("expected 3 removed, got %d", removed)
	}
	expected := time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC)
	if !store.LastCutoff.Equal(expected) {
		t.Errorf("expected cutoff %v, got %v", expected, store.LastCutoff)
	}
}

// TestCredentialPurgeServiceDisabled tests that a zero timeout never purges
func TestCredentialPurgeServiceDisabled(t *testing.T) {
	store := NewMockCredentialStore()
	service := NewCredentialPurgeService(store, 0)

	removed, err := service.PurgeExpired(context.Background())

	if err != nil || removed != 0 {
		t.Errorf("expected no-op, got %d, %v", removed, err)
	}
	if !store.LastCutoff.IsZero() {
		t.Error("expected store not to be called")
	}
}
