package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/middleware"
	"github.com/longpt2111/food-app/utils"
	"go.uber.org/zap"
)

// GoogleCallback finishes the OAuth flow, signs the session in and sends the
// visitor back to the storefront.
// GET /auth/google/callback
func (ctl *Controller) GoogleCallback(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	state := c.Query("state")
	savedState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != savedState {
		ctl.logger.Warn("OAuth state mismatch", zap.String("session", s.ID))
		ctl.redirectWithError(c, "Invalid state token")
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", ctl.cookie.Domain, ctl.cookie.Secure, true)

	code := c.Query("code")
	if code == "" {
		ctl.redirectWithError(c, "No authorization code")
		return
	}

	profile, err := ctl.auth.SignIn(c.Request.Context(), code)
	if err != nil {
		ctl.logger.Error("Google sign-in failed", zap.String("session", s.ID), zap.Error(err))
		ctl.redirectWithError(c, "Failed to sign in with Google")
		return
	}

	// a fresh id keeps a pre-login cookie from riding into the signed-in session
	s, err = middleware.RotateSession(c)
	if err != nil {
		ctl.logger.Error("Failed to rotate session", zap.Error(err))
		ctl.redirectWithError(c, "Failed to sign in")
		return
	}

	if err := s.SignIn(c.Request.Context(), profile); err != nil {
		ctl.logger.Error("Failed to store sign-in", zap.String("session", s.ID), zap.Error(err))
		ctl.redirectWithError(c, "Failed to sign in")
		return
	}

	ctl.logger.Info("Google sign-in", append(utils.NewClientInfo(c).Fields(), zap.String("session", s.ID))...)
	c.Redirect(http.StatusTemporaryRedirect, ctl.frontendURL)
}
