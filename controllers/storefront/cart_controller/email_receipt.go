package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/services"
	"github.com/longpt2111/food-app/store"
	"go.uber.org/zap"
)

// EmailReceipt renders the basket receipt and mails it to the signed-in user.
// POST /store/cart/receipt/email
func (ctl *Controller) EmailReceipt(c *gin.Context) {
	if ctl.mailer == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Email receipts are not configured"))
		return
	}

	s, ok := currentSession(c)
	if !ok {
		return
	}

	state := s.Store.State()
	if state.User == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Sign in required"))
		return
	}
	if len(state.CartItems) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	issuedAt := ctl.now()
	buf, err := services.RenderCartReceipt(state.User, state.CartItems, issuedAt)
	if err != nil {
		ctl.logger.Error("Failed to render receipt", zap.String("session", s.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate receipt"))
		return
	}

	err = ctl.mailer.SendCartReceipt(c.Request.Context(), services.CartReceiptEmail{
		User:     state.User,
		Items:    state.CartItems,
		Total:    store.CartTotal(state.CartItems),
		IssuedAt: issuedAt,
		PDF:      buf.Bytes(),
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingRecipient) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Account has no email address"))
			return
		}
		ctl.logger.Error("Failed to email receipt", zap.String("session", s.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to send receipt"))
		return
	}

	ctl.logger.Info("Receipt emailed", zap.String("session", s.ID), zap.String("uid", state.User.UID))
	c.JSON(http.StatusAccepted, models.SuccessResponse(c, "Receipt sent to "+state.User.Email, nil))
}
