package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
)

// GetCart returns the basket lines with their count and total.
// GET /store/cart
func (ctl *Controller) GetCart(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart retrieved successfully", newCartView(s.Store.State())))
}
