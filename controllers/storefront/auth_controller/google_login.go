package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GoogleLogin starts the OAuth flow: it pins a state token in a short-lived
// cookie and redirects to Google's consent page.
// GET /auth/google
func (ctl *Controller) GoogleLogin(c *gin.Context) {
	state := uuid.NewString()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, 600, "/", ctl.cookie.Domain, ctl.cookie.Secure, true)

	c.Redirect(http.StatusTemporaryRedirect, ctl.auth.AuthCodeURL(state))
}
