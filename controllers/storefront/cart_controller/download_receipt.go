package cart_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/services"
	"go.uber.org/zap"
)

// DownloadReceipt renders the basket as a PDF receipt.
// GET /store/cart/receipt
func (ctl *Controller) DownloadReceipt(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	state := s.Store.State()
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

	filename := fmt.Sprintf("receipt-%s.pdf", issuedAt.Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
