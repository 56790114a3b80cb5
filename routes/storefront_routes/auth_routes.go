package storefront_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/controllers/storefront/auth_controller"
)

func SetupAuthRoutes(router *gin.RouterGroup, deps Dependencies) {
	ctl := auth_controller.New(deps.Auth, deps.Cookie, deps.FrontendURL, deps.Logger)

	auth := router.Group("/auth")
	{
		auth.GET("/google", ctl.GoogleLogin)
		auth.GET("/google/callback", ctl.GoogleCallback)
		auth.POST("/google/one-tap", ctl.GoogleOneTap)
		auth.POST("/logout", ctl.Logout)
		auth.GET("/me", ctl.Me)
	}
}
