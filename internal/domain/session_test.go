package domain

import (
	"sync"
	"testing"
	"time"
)

const defaultTimeout = 30 * time.Minute

// TestNewCredentialEntry tests entry creation and initialization
func TestNewCredentialEntry(t *testing.T) {
	creds := &CredentialSet{AccessToken: "access"}
	entry := NewCredentialEntry("sess-1", creds, defaultTimeout)

	if entry.SessionID != "sess-1" {
		t.Errorf("expected SessionID sess-1, got %s", entry.SessionID)
	}
	if entry.Credentials != creds {
		t.Error("expected credentials to be stored as given")
	}
	if entry.LastAccess().IsZero() {
		t.Error("expected last access to be set, got zero value")
	}
}

// TestCredentialEntryIsExpired tests entry expiration check logic
func TestCredentialEntryIsExpired(t *testing.T) {
	entry := NewCredentialEntry("sess-1", &CredentialSet{AccessToken: "a"}, defaultTimeout)

	if entry.IsExpired() {
		t.Error("expected new entry to not be expired")
	}

	entry.Touch(time.Now().Add(-31 * time.Minute))
	if !entry.IsExpired() {
		t.Error("expected entry accessed 31 minutes ago to be expired")
	}

	entry.Touch(time.Now().Add(-29 * time.Minute))
	if entry.IsExpired() {
		t.Error("expected entry accessed 29 minutes ago to not be expired")
	}
}

// TestCredentialEntryWithoutTimeoutNeverExpires tests the zero timeout case
func TestCredentialEntryWithoutTimeoutNeverExpires(t *testing.T) {
	entry := NewCredentialEntry("sess-1", &CredentialSet{AccessToken: "a"}, 0)
	entry.Touch(time.Now().Add(-365 * 24 * time.Hour))

	if entry.IsExpired() {
		t.Error("expected entry without timeout to never expire")
	}
}

// TestCredentialEntrySnapshotIsCopy tests that snapshots cannot modify the stored set
func TestCredentialEntrySnapshotIsCopy(t *testing.T) {
	entry := NewCredentialEntry("sess-1", &CredentialSet{AccessToken: "a", Scopes: []string{CalendarReadonlyScope}}, defaultTimeout)

	snap := entry.Snapshot()
	snap.AccessToken = "mutated"
	snap.Scopes[0] = "mutated"

	if entry.Credentials.AccessToken != "a" {
		t.Error("expected stored access token to be unchanged")
	}
	if entry.Credentials.Scopes[0] != CalendarReadonlyScope {
		t.Error("expected stored scopes to be unchanged")
	}
}

// TestCredentialEntryTouchConcurrent tests that access updates and reads can run in parallel
func TestCredentialEntryTouchConcurrent(t *testing.T) {
	entry := NewCredentialEntry("sess-1", &CredentialSet{AccessToken: "a"}, defaultTimeout)
	cutoff := time.Now().Add(-time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			entry.Touch(time.Now())
		}()
		go func() {
			defer wg.Done()
			if entry.AccessedBefore(cutoff) {
				t.Error("expected recent access")
			}
		}()
	}
	wg.Wait()
}

// TestCredentialSetValid tests the access token presence check
func TestCredentialSetValid(t *testing.T) {
	var nilSet *CredentialSet
	if nilSet.Valid() {
		t.Error("expected nil set to be invalid")
	}
	if (&CredentialSet{}).Valid() {
		t.Error("expected empty set to be invalid")
	}
	if !(&CredentialSet{AccessToken: "a"}).Valid() {
		t.Error("expected set with access token to be valid")
	}
}
