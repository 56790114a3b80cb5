package storefront_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/controllers/storefront/cart_controller"
	"github.com/longpt2111/food-app/middleware"
)

func SetupCartRoutes(router *gin.RouterGroup, deps Dependencies) {
	ctl := cart_controller.New(deps.Mailer, deps.Logger)

	cart := router.Group("/store/cart")
	{
		cart.GET("", ctl.GetCart)
		cart.POST("/items", ctl.AddCartItem)
		cart.DELETE("/items/:id", ctl.RemoveCartItem)
		cart.POST("/toggle", ctl.ToggleCart)
		cart.GET("/receipt", ctl.DownloadReceipt)
	}

	cart.POST("/receipt/email",
		middleware.RequireUser(),
		middleware.RateLimiter(deps.Redis, deps.RateLimitMax, deps.RateLimitWindow),
		ctl.EmailReceipt,
	)
}
