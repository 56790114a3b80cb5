package storefront_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/controllers/storefront/menu_controller"
	"github.com/longpt2111/food-app/middleware"
)

func SetupMenuRoutes(router *gin.RouterGroup, deps Dependencies) {
	ctl := menu_controller.New(deps.Catalog, deps.Images, deps.Logger)

	menu := router.Group("/store/menu")
	{
		menu.GET("", ctl.ListMenu)
		menu.GET("/categories", ctl.ListCategories)
		menu.GET("/export", ctl.ExportMenu)
		menu.POST("/refresh", ctl.RefreshMenu)
	}

	// Creating items needs a signed-in user and is rate limited per client
	authoring := menu.Group("")
	authoring.Use(middleware.RequireUser(), middleware.RateLimiter(deps.Redis, deps.RateLimitMax, deps.RateLimitWindow))
	{
		authoring.POST("", ctl.CreateMenuItem)
		authoring.POST("/images", ctl.UploadMenuImage)
	}
}
