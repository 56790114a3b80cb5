// ════════════════════════════════════════════════════════════
// Google sign-in: authorization code flow + One Tap ID tokens
// ════════════════════════════════════════════════════════════

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/longpt2111/food-app/models"
	"golang.org/x/oauth2"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

var ErrMissingGoogleID = errors.New("google account id not found")

// AuthGateway signs a visitor in with their Google account.
type AuthGateway interface {
	AuthCodeURL(state string) string
	SignIn(ctx context.Context, code string) (*models.UserProfile, error)
	VerifyIDToken(ctx context.Context, rawIDToken string) (*models.UserProfile, error)
}

type GoogleAuthService struct {
	oauth       *oauth2.Config
	verifier    *oidc.IDTokenVerifier
	userInfoURL string
}

func NewGoogleAuthService(oauthConfig *oauth2.Config, verifier *oidc.IDTokenVerifier) *GoogleAuthService {
	return &GoogleAuthService{
		oauth:       oauthConfig,
		verifier:    verifier,
		userInfoURL: googleUserInfoURL,
	}
}

// AuthCodeURL is where the popup sends the visitor to consent.
func (g *GoogleAuthService) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// SignIn exchanges the authorization code and reads the account's profile.
func (g *GoogleAuthService) SignIn(ctx context.Context, code string) (*models.UserProfile, error) {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get user info: status %d", resp.StatusCode)
	}

	var info models.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	if info.GoogleID() == "" {
		return nil, ErrMissingGoogleID
	}
	return info.ToProfile(), nil
}

// VerifyIDToken checks a Google One Tap credential and returns its profile.
func (g *GoogleAuthService) VerifyIDToken(ctx context.Context, rawIDToken string) (*models.UserProfile, error) {
	if g.verifier == nil {
		return nil, errors.New("id token verification is not configured")
	}

	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify id token: %w", err)
	}

	var info models.GoogleUserInfo
	if err := idToken.Claims(&info); err != nil {
		return nil, fmt.Errorf("failed to decode id token claims: %w", err)
	}
	if info.Sub == "" {
		info.Sub = idToken.Subject
	}
	if info.GoogleID() == "" {
		return nil, ErrMissingGoogleID
	}
	return info.ToProfile(), nil
}
