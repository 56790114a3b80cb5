package menu_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
)

// ListMenu returns the session's food items, optionally narrowed to one category.
// GET /store/menu?category=rice
func (ctl *Controller) ListMenu(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	items := s.Store.State().FoodItems

	if category := c.Query("category"); category != "" {
		if !models.IsFoodCategory(category) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown category"))
			return
		}
		filtered := make([]models.FoodItem, 0, len(items))
		for _, item := range items {
			if item.Category == category {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu retrieved successfully", items))
}

// ListCategories returns the fixed category list the menu filters on.
// GET /store/menu/categories
func (ctl *Controller) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", models.FoodCategories))
}
