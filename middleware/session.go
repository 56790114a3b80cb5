package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/services"
	"github.com/longpt2111/food-app/session"
	"go.uber.org/zap"
)

const (
	SessionCookieName = "storefront_session"
	sessionContextKey = "session"
	rotateContextKey  = "session.rotate"
)

// SessionCookie controls how the session cookie is written.
type SessionCookie struct {
	Secure bool
	Domain string
}

// SessionMiddleware resolves the visitor's session from the signed session
// cookie, minting a new session id when the cookie is missing or invalid.
func SessionMiddleware(registry *session.Registry, tokens *services.JWTService, cookie SessionCookie, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string

		if raw, err := c.Cookie(SessionCookieName); err == nil && raw != "" {
			claims, err := tokens.VerifySessionToken(raw)
			if err == nil {
				sessionID = claims.SessionID
			} else {
				log.Debug("Discarding session cookie", zap.Error(err))
			}
		}

		maxAge := int(tokens.TTL().Seconds())
		// mint returns a fresh session id and its signed cookie value.
		mint := func() (string, string, error) {
			id, err := uuid.NewV7()
			if err != nil {
				return "", "", err
			}
			token, err := tokens.GenerateSessionToken(id.String())
			if err != nil {
				log.Error("Failed to sign session token", zap.Error(err))
				return "", "", err
			}
			return id.String(), token, nil
		}

		if sessionID == "" {
			id, token, err := mint()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start session"))
				return
			}
			sessionID = id
			SetSessionCookie(c, token, maxAge, cookie)
		}

		c.Set(sessionContextKey, registry.Open(c.Request.Context(), sessionID))
		c.Set(rotateContextKey, func() (*session.Session, error) {
			current, ok := CurrentSession(c)
			if !ok {
				return nil, errNoSession
			}
			id, token, err := mint()
			if err != nil {
				return nil, err
			}
			s, err := registry.Rotate(c.Request.Context(), current.ID, id)
			if err != nil {
				return nil, err
			}
			SetSessionCookie(c, token, maxAge, cookie)
			c.Set(sessionContextKey, s)
			return s, nil
		})
		c.Next()
	}
}

var errNoSession = errors.New("no session on request")

// RotateSession moves the request's session to a fresh id and reissues the
// cookie. Call it before the session gains privileges, as on sign-in.
func RotateSession(c *gin.Context) (*session.Session, error) {
	v, exists := c.Get(rotateContextKey)
	if !exists {
		return nil, errNoSession
	}
	rotate, ok := v.(func() (*session.Session, error))
	if !ok {
		return nil, errNoSession
	}
	return rotate()
}

// SetSessionCookie writes the session cookie; a negative maxAge deletes it.
func SetSessionCookie(c *gin.Context, token string, maxAge int, cookie SessionCookie) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", cookie.Domain, cookie.Secure, true)
}

// CurrentSession returns the session attached by SessionMiddleware.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
