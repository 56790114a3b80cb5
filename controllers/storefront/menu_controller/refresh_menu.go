package menu_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"go.uber.org/zap"
)

// RefreshMenu reloads the session menu from the catalog and waits for it,
// returning the new items. If the client goes away first the load keeps running.
// A load superseded by a newer refresh follows the newer one.
// POST /store/menu/refresh
func (ctl *Controller) RefreshMenu(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	task := s.RefreshMenu()
	for {
		select {
		case <-task.Done():
		case <-c.Request.Context().Done():
			return
		}

		err := task.Wait()
		if errors.Is(err, context.Canceled) {
			if next := s.MenuLoad(); next != nil && next != task {
				task = next
				continue
			}
		}
		if err != nil {
			ctl.logger.Error("Menu refresh failed", zap.String("session", s.ID), zap.Error(err))
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to load menu"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu refreshed", s.Store.State().FoodItems))
		return
	}
}
