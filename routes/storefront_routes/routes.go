package storefront_routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/controllers/storefront/health_controller"
	"github.com/longpt2111/food-app/controllers/storefront/menu_controller"
	"github.com/longpt2111/food-app/middleware"
	"github.com/longpt2111/food-app/services"
	"github.com/longpt2111/food-app/session"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Dependencies is everything the storefront routes are built from.
type Dependencies struct {
	Registry *session.Registry
	Tokens   *services.JWTService
	Cookie   middleware.SessionCookie
	Redis    *redis.Client
	Catalog  services.CatalogGateway
	Auth     services.AuthGateway
	Images   menu_controller.ImageUploader
	Mailer   services.ReceiptMailer
	Checks   map[string]health_controller.Check
	Logger   *zap.Logger

	FrontendURL     string
	AllowedOrigins  []string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Setup registers every storefront route under router (normally /api/v1).
func Setup(router *gin.RouterGroup, deps Dependencies) {
	router.GET("/healthz", health_controller.New(deps.Checks, deps.Logger).Health)

	withSession := router.Group("")
	withSession.Use(middleware.SessionMiddleware(deps.Registry, deps.Tokens, deps.Cookie, deps.Logger))

	SetupAuthRoutes(withSession, deps)
	SetupStateRoutes(withSession, deps)
	SetupMenuRoutes(withSession, deps)
	SetupCartRoutes(withSession, deps)
}
