// ════════════════════════════════════════════════════════════
// Path: config/google_oauth.go
// Google OAuth Configuration
// ════════════════════════════════════════════════════════════

package config

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleIssuer = "https://accounts.google.com"

// GoogleOAuthConfig builds the authorization-code flow config.
func GoogleOAuthConfig(cfg *AppConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			oidc.ScopeOpenID,
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// GoogleIDTokenVerifier discovers Google's keys for One Tap ID token verification.
func GoogleIDTokenVerifier(ctx context.Context, cfg *AppConfig) (*oidc.IDTokenVerifier, error) {
	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}
	return provider.Verifier(&oidc.Config{ClientID: cfg.GoogleClientID}), nil
}
