package badger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"weather-insight/internal/domain"

	badgerdb "github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) *CredentialStore {
	t.Helper()
	store, err := NewCredentialStore(t.TempDir(), ttl)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestPutAndGetCredentials(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	creds := &domain.CredentialSet{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Scopes:       []string{domain.CalendarReadonlyScope},
	}
	require.NoError(t, store.PutCredentials(ctx, "session-a", creds))

	got, err := store.GetCredentials(ctx, "session-a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "access", got.AccessToken)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.Equal(t, []string{domain.CalendarReadonlyScope}, got.Scopes)

	missing, err := store.GetCredentials(ctx, "session-b")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPutCredentialsReplaces(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.PutCredentials(ctx, "session-a", &domain.CredentialSet{AccessToken: "old", RefreshToken: "r"}))
	require.NoError(t, store.PutCredentials(ctx, "session-a", &domain.CredentialSet{AccessToken: "new"}))

	got, err := store.GetCredentials(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, "new", got.AccessToken)
	assert.Empty(t, got.RefreshToken)
}

func TestDeleteCredentials(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.PutCredentials(ctx, "session-a", &domain.CredentialSet{AccessToken: "access"}))
	require.NoError(t, store.DeleteCredentials(ctx, "session-a"))
	require.NoError(t, store.DeleteCredentials(ctx, "session-a"))

	got, err := store.GetCredentials(ctx, "session-a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPurgeExpired(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	old, err := json.Marshal(storedEntry{
		Credentials: &domain.CredentialSet{AccessToken: "old"},
		UpdatedAt:   time.Now().Add(-2 * time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, store.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(sessionKey("stale"), old)
	}))
	require.NoError(t, store.PutCredentials(ctx, "fresh", &domain.CredentialSet{AccessToken: "new"}))

	removed, err := store.PurgeExpired(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	ids, err := store.keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, ids)
}

func TestPing(t *testing.T) {
	store, err := NewCredentialStore(t.TempDir(), time.Hour)
	require.NoError(t, err)

	assert.NoError(t, store.Ping(context.Background()))
	require.NoError(t, store.Close())
	assert.Error(t, store.Ping(context.Background()))
}

func TestDefaultPathUnderDataHome(t *testing.T) {
	assert.Contains(t, DefaultPath(), "weather-insight")
}

// keys lists the session IDs currently stored
func (s *CredentialStore) keys() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, string(bytes.TrimPrefix(it.Item().Key(), prefix)))
		}
		return nil
	})
	return ids, err
}
