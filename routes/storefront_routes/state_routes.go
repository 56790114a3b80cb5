package storefront_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/controllers/storefront/state_controller"
)

func SetupStateRoutes(router *gin.RouterGroup, deps Dependencies) {
	ctl := state_controller.New(deps.Logger, deps.AllowedOrigins)

	state := router.Group("/store")
	{
		state.GET("/state", ctl.GetState)
		state.GET("/state/ws", ctl.StreamState)
		state.POST("/dispatch", ctl.Dispatch)
	}
}
