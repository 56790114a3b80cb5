package models

// UserProfile is the signed-in storefront user as reported by the identity provider.
// A nil *UserProfile means "not authenticated".
type UserProfile struct {
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
	Email       string `json:"email"`
	UID         string `json:"uid"`
}

// GoogleUserInfo mirrors the payload of Google's userinfo endpoint and ID token claims.
type GoogleUserInfo struct {
	Sub           string `json:"sub"` // Google user ID
	ID            string `json:"id"`  // Alternative field name (v2 userinfo)
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleID returns the stable Google account id, whichever field carried it.
func (g GoogleUserInfo) GoogleID() string {
	if g.Sub != "" {
		return g.Sub
	}
	return g.ID
}

// ToProfile converts the provider payload into a storefront profile.
func (g GoogleUserInfo) ToProfile() *UserProfile {
	return &UserProfile{
		DisplayName: g.Name,
		PhotoURL:    g.Picture,
		Email:       g.Email,
		UID:         g.GoogleID(),
	}
}
