package auth_controller

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/middleware"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/services"
	"github.com/longpt2111/food-app/session"
	"go.uber.org/zap"
)

const stateCookieName = "oauth_state"

type Controller struct {
	auth        services.AuthGateway
	cookie      middleware.SessionCookie
	frontendURL string
	logger      *zap.Logger
}

func New(auth services.AuthGateway, cookie middleware.SessionCookie, frontendURL string, logger *zap.Logger) *Controller {
	return &Controller{auth: auth, cookie: cookie, frontendURL: frontendURL, logger: logger}
}

func currentSession(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not initialised"))
	}
	return s, ok
}

func (ctl *Controller) redirectWithError(c *gin.Context, message string) {
	c.Redirect(http.StatusTemporaryRedirect, ctl.frontendURL+"/auth/error?message="+url.QueryEscape(message))
}
