package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/middleware"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/utils"
	"go.uber.org/zap"
)

type oneTapRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// GoogleOneTap signs the session in with a Google Identity Services ID token.
// POST /auth/google/one-tap
func (ctl *Controller) GoogleOneTap(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	var req oneTapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "credential is required"))
		return
	}

	profile, err := ctl.auth.VerifyIDToken(c.Request.Context(), req.Credential)
	if err != nil {
		ctl.logger.Warn("Rejected Google ID token", zap.String("session", s.ID), zap.Error(err))
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid Google credential"))
		return
	}

	// a fresh id keeps a pre-login cookie from riding into the signed-in session
	s, err = middleware.RotateSession(c)
	if err != nil {
		ctl.logger.Error("Failed to rotate session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sign in"))
		return
	}

	if err := s.SignIn(c.Request.Context(), profile); err != nil {
		ctl.logger.Error("Failed to store sign-in", zap.String("session", s.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sign in"))
		return
	}

	ctl.logger.Info("Google sign-in", append(utils.NewClientInfo(c).Fields(), zap.String("session", s.ID))...)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Signed in", profile))
}
