package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/store"
	"go.uber.org/zap"
)

// RemoveCartItem takes one of an item out of the basket, dropping the line at zero.
// DELETE /store/cart/items/:id
func (ctl *Controller) RemoveCartItem(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	if err := store.RemoveFromCart(s.Store, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Item is not in the cart"))
			return
		}
		ctl.logger.Error("Failed to remove from cart", zap.String("session", s.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", newCartView(s.Store.State())))
}
