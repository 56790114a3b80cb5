package cart_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/middleware"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/services"
	"github.com/longpt2111/food-app/session"
	"github.com/longpt2111/food-app/store"
	"go.uber.org/zap"
)

type Controller struct {
	mailer services.ReceiptMailer
	logger *zap.Logger
	now    func() time.Time
}

// New builds the cart controller. mailer may be nil, which disables emailed receipts.
func New(mailer services.ReceiptMailer, logger *zap.Logger) *Controller {
	return &Controller{mailer: mailer, logger: logger, now: time.Now}
}

// CartView is the basket as the header and cart panel render it.
type CartView struct {
	CartItems   []models.CartItem `json:"cartItems"`
	CartShow    bool              `json:"cartShow"`
	BasketCount int               `json:"basketCount"`
	CartTotal   float64           `json:"cartTotal"`
}

func newCartView(state store.AppState) CartView {
	return CartView{
		CartItems:   state.CartItems,
		CartShow:    state.CartShow,
		BasketCount: store.BasketCount(state.CartItems),
		CartTotal:   store.CartTotal(state.CartItems),
	}
}

func currentSession(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not initialised"))
	}
	return s, ok
}
