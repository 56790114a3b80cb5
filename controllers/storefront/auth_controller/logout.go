package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"go.uber.org/zap"
)

// Logout clears the session's user and its durable mirror. The cart survives.
// POST /auth/logout
func (ctl *Controller) Logout(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	if err := s.SignOut(c.Request.Context()); err != nil {
		ctl.logger.Error("Sign out failed", zap.String("session", s.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sign out"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
