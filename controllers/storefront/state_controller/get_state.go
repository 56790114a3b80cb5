package state_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/store"
)

// GetState returns the session's current state with the basket count and total.
// GET /store/state
func (ctl *Controller) GetState(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "State retrieved successfully", store.NewStateView(s.Store.State())))
}
