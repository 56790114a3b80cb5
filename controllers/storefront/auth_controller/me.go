package auth_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/session"
)

// Me returns the signed-in profile.
// GET /auth/me
func (ctl *Controller) Me(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	user, err := s.User()
	if errors.Is(err, session.ErrNotAuthenticated) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not signed in"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "User retrieved successfully", user))
}
