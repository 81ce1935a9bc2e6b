package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"weather-insight/internal/domain"
	"weather-insight/internal/ports/output"

	"github.com/adrg/xdg"
	badgerdb "github.com/dgraph-io/badger/v3"
	"github.com/sirupsen/logrus"
)

var _ output.CredentialStore = (*CredentialStore)(nil)

const keyPrefix = "credentials:"

// storedEntry is the value written under each session key
type storedEntry struct {
	Credentials *domain.CredentialSet `json:"credentials"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// CredentialStore struct - Output adapter persisting credentials in an embedded BadgerDB
type CredentialStore struct {
	db  *badgerdb.DB
	ttl time.Duration
}

// DefaultPath returns the database directory used when none is configured
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "weather-insight", "credentials")
}

// NewCredentialStore opens (or creates) the database at path.
// ttl bounds the lifetime of every written entry; zero disables it.
func NewCredentialStore(path string, ttl time.Duration) (*CredentialStore, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}

	opts := badgerdb.DefaultOptions(path).WithLogger(nil)
	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential database: %w", err)
	}

	logrus.Infof("Badger credential store opened at %s", path)

	return &CredentialStore{db: db, ttl: ttl}, nil
}

// Close releases the database
func (s *CredentialStore) Close() error {
	return s.db.Close()
}

func sessionKey(sessionID string) []byte {
	return []byte(keyPrefix + sessionID)
}

// GetCredentials returns the credentials of a session, or nil when absent
func (s *CredentialStore) GetCredentials(ctx context.Context, sessionID string) (*domain.CredentialSet, error) {
	var entry storedEntry
	err := s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(sessionKey(sessionID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}
	return entry.Credentials, nil
}

// PutCredentials stores credentials for a session, replacing any previous set
func (s *CredentialStore) PutCredentials(ctx context.Context, sessionID string, creds *domain.CredentialSet) error {
	value, err := json.Marshal(storedEntry{Credentials: creds, UpdatedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	return s.db.Update(func(txn *badgerdb.Txn) error {
		e := badgerdb.NewEntry(sessionKey(sessionID), value)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		return txn.SetEntry(e)
	})
}

// DeleteCredentials removes a session's credentials. Idempotent.
func (s *CredentialStore) DeleteCredentials(ctx context.Context, sessionID string) error {
	return s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Delete(sessionKey(sessionID))
	})
}

// PurgeExpired removes entries written before cutoff
func (s *CredentialStore) PurgeExpired(ctx context.Context, cutoff time.Time) (int, error) {
	var stale [][]byte
	err := s.db.View(func(txn *badgerdb.Txn) error {
		prefix := []byte(keyPrefix)
		it := txn.NewIterator(badgerdb.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var entry storedEntry
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			})
			if err != nil || entry.UpdatedAt.Before(cutoff) {
				stale = append(stale, item.KeyCopy(nil))
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan credentials: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	err = s.db.Update(func(txn *badgerdb.Txn) error {
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to purge credentials: %w", err)
	}
	return len(stale), nil
}

// Ping reports whether the database is open
func (s *CredentialStore) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return errors.New("credential database is closed")
	}
	return nil
}
