package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/store"
	"go.uber.org/zap"
)

type addCartItemRequest struct {
	ID string `json:"id" binding:"required"`
}

// AddCartItem puts one more of a menu item in the basket.
// POST /store/cart/items
func (ctl *Controller) AddCartItem(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Item id is required"))
		return
	}

	if err := store.AddMenuItemToCart(s.Store, req.ID); err != nil {
		if errors.Is(err, store.ErrFoodItemNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Food item not found"))
			return
		}
		ctl.logger.Error("Failed to add to cart", zap.String("session", s.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", newCartView(s.Store.State())))
}
