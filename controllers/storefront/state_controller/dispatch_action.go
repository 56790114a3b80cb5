package state_controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/store"
	"go.uber.org/zap"
)

const maxActionBytes = 64 << 10

// Dispatch applies a view-originated action to the session store and returns
// the resulting state.
// POST /store/dispatch
func (ctl *Controller) Dispatch(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxActionBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read request body"))
		return
	}

	action, err := store.DecodeAction(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	if err := store.CheckViewAction(action); err != nil {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, err.Error()))
		return
	}

	if err := s.Store.Dispatch(action); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrUnknownAction) {
			status = http.StatusBadRequest
		}
		ctl.logger.Warn("Dispatch failed", zap.String("session", s.ID), zap.Error(err))
		c.JSON(status, models.ErrorResponse(c, err.Error()))
		return
	}

	ctl.logger.Debug("Action dispatched", zap.String("session", s.ID), zap.String("type", string(action.Type())))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Action dispatched", store.NewStateView(s.Store.State())))
}
