package menu_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/middleware"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/services"
	"go.uber.org/zap"
)

// CreateMenuItem adds a food item to the catalog and reloads the caller's menu.
// POST /store/menu
func (ctl *Controller) CreateMenuItem(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	var input models.FoodItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	id, err := ctl.catalog.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown category"))
			return
		}
		ctl.logger.Error("Failed to create food item", zap.Error(err))
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to save food item"))
		return
	}

	fields := []zap.Field{zap.String("id", id), zap.String("category", input.Category)}
	if user, ok := middleware.CurrentUser(c); ok {
		fields = append(fields, zap.String("uid", user.UID))
	}
	ctl.logger.Info("Food item created", fields...)

	s.RefreshMenu()
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Food item created successfully", gin.H{"id": id}))
}
