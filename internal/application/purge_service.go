package application

import (
	"context"
	"fmt"
	"time"

	"weather-insight/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// CredentialPurgeService struct - Removes credentials of sessions idle past the session timeout
type CredentialPurgeService struct {
	store   output.CredentialStore
	timeout time.Duration
	now     func() time.Time
}

// NewCredentialPurgeService func - Creates new purge service. A timeout of zero disables purging.
func NewCredentialPurgeService(store output.CredentialStore, timeout time.Duration) *CredentialPurgeService {
	return &CredentialPurgeService{
		store:   store,
		timeout: timeout,
		now:     time.Now,
	}
}

// PurgeExpired func - Use case: drop every credential set older than the session timeout
func (s *CredentialPurgeService) PurgeExpired(ctx context.Context) (int, error) {
	if s.timeout <= 0 {
		return 0, nil
	}

	cutoff := s.now().Add(-s.timeout)
	removed, err := s.store.PurgeExpired(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge credentials: %w", err)
	}
	if removed > 0 {
		logrus.Infof("Purged %d expired credential sets", removed)
	}
	return removed, nil
}
