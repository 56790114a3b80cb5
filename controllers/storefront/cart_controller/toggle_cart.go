package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/store"
)

// ToggleCart opens the basket panel if closed and closes it if open.
// POST /store/cart/toggle
func (ctl *Controller) ToggleCart(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	err := s.Store.Update(func(current store.AppState) (store.Action, error) {
		return store.SetCartShow{CartShow: !current.CartShow}, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to toggle cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart toggled", newCartView(s.Store.State())))
}
