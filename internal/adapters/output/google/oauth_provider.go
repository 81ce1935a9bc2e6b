package google

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weather-insight/configs"
	"weather-insight/internal/domain"
	"weather-insight/internal/ports/output"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

var _ output.OAuthProvider = (*OAuthProviderAdapter)(nil)

// OAuthProviderAdapter struct - Output adapter for Google's OAuth2 server
type OAuthProviderAdapter struct {
	config *oauth2.Config
}

// NewOAuthProviderAdapter func - Creates the adapter from the registered client.
// AuthURL and TokenURL override Google's endpoints when set.
func NewOAuthProviderAdapter(cfg configs.Google) *OAuthProviderAdapter {
	endpoint := googleoauth.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		logrus.Warn("Google OAuth client is not configured, calendar login will fail")
	}

	return &OAuthProviderAdapter{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{domain.CalendarReadonlyScope},
			Endpoint:     endpoint,
		},
	}
}

// AuthCodeURL func - Consent URL with offline access and a forced consent screen
func (a *OAuthProviderAdapter) AuthCodeURL(state string) string {
	return a.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange func - Trades the authorization code for tokens
func (a *OAuthProviderAdapter) Exchange(ctx context.Context, code string) (*domain.CredentialSet, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		logrus.Errorf("OAuth2 code exchange failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthExchange, err)
	}

	creds := credentialsFromToken(token)
	if len(creds.Scopes) == 0 {
		creds.Scopes = append([]string(nil), a.config.Scopes...)
	}
	return creds, nil
}

func credentialsFromToken(token *oauth2.Token) *domain.CredentialSet {
	creds := &domain.CredentialSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
		IssuedAt:     time.Now(),
	}
	if scope, ok := token.Extra("scope").(string); ok && scope != "" {
		creds.Scopes = strings.Fields(scope)
	}
	return creds
}

func tokenFromCredentials(creds *domain.CredentialSet) *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    creds.TokenType,
		Expiry:       creds.Expiry,
	}
}
