package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weather-insight/internal/domain"
	"weather-insight/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const defaultRedirectPath = "/"

// AuthService struct - Application service implementing the authorization flow
type AuthService struct {
	oauth output.OAuthProvider
	store output.CredentialStore
}

// NewAuthService func - Creates new authorization service
func NewAuthService(oauth output.OAuthProvider, store output.CredentialStore) *AuthService {
	return &AuthService{
		oauth: oauth,
		store: store,
	}
}

// Begin func - Use case: build the consent URL, carrying the redirect hint in state
func (s *AuthService) Begin(redirectHint string) string {
	state := redirectHint
	if state == "" {
		state = defaultRedirectPath
	}
	return s.oauth.AuthCodeURL(state)
}

// Complete func - Use case: exchange the code and bind the credentials to the session
func (s *AuthService) Complete(ctx context.Context, sessionID, code string, stateValues []string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", fmt.Errorf("%w: missing authorization code", domain.ErrAuthExchange)
	}

	creds, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		if !errors.Is(err, domain.ErrAuthExchange) {
			err = fmt.Errorf("%w: %v", domain.ErrAuthExchange, err)
		}
		return "", err
	}
	if !creds.Valid() {
		return "", fmt.Errorf("%w: provider returned no access token", domain.ErrAuthExchange)
	}

	if err := s.store.PutCredentials(ctx, sessionID, creds); err != nil {
		return "", fmt.Errorf("failed to store credentials: %w", err)
	}

	logrus.Infof("Calendar credentials stored for session %s", shortID(sessionID))

	return ResolveRedirectPath(stateValues), nil
}

// Logout func - Use case: forget the session's credentials
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.store.DeleteCredentials(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}

// ResolveRedirectPath picks the post-login path from the raw state values.
// Only the first value counts, and it must be a local absolute path; anything
// else falls back to "/".
func ResolveRedirectPath(stateValues []string) string {
	if len(stateValues) == 0 {
		return defaultRedirectPath
	}
	path := stateValues[0]
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return defaultRedirectPath
	}
	return path
}

// shortID keeps session identifiers out of logs in full
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "…"
}
