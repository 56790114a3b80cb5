package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	menu_cache "github.com/longpt2111/food-app/cache"
	"github.com/longpt2111/food-app/config"
	"github.com/longpt2111/food-app/controllers/storefront/health_controller"
	"github.com/longpt2111/food-app/middleware"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/routes/storefront_routes"
	"github.com/longpt2111/food-app/services"
	"github.com/longpt2111/food-app/session"
	"go.uber.org/zap"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	log, err := config.NewLogger(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Gorm.AutoMigrate(&models.FoodItem{}); err != nil {
		return err
	}

	rdb, err := config.ConnectRedis(cfg, log)
	if err != nil {
		return err
	}
	defer rdb.Close()

	images, err := services.NewCloudinaryService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return err
	}

	var mailer services.ReceiptMailer
	if cfg.ResendAPIKey != "" {
		m, err := services.NewResendMailer(cfg.ResendAPIKey, cfg.ResendFromEmail)
		if err != nil {
			return err
		}
		mailer = m
	} else {
		log.Warn("RESEND_API_KEY not set; emailed receipts are disabled")
	}

	tokens, err := services.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		return err
	}
	log.Info("✅ JWT Service initialized")

	verifier, err := config.GoogleIDTokenVerifier(ctx, cfg)
	if err != nil {
		return err
	}
	auth := services.NewGoogleAuthService(config.GoogleOAuthConfig(cfg), verifier)

	catalog := services.NewCachedCatalog(services.NewCatalogService(db.Gorm), menu_cache.New(cfg.MenuCacheTTL))
	mirror := services.NewRedisUserMirror(rdb, cfg.SessionTTL)
	registry := session.NewRegistry(mirror, catalog, log)
	defer registry.Shutdown()

	go sweepSessions(ctx, registry, cfg.SessionIdle)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}))

	storefront_routes.Setup(router.Group("/api/v1"), storefront_routes.Dependencies{
		Registry: registry,
		Tokens:   tokens,
		Cookie:   middleware.SessionCookie{Secure: cfg.IsProduction()},
		Redis:    rdb,
		Catalog:  catalog,
		Auth:     auth,
		Images:   images,
		Mailer:   mailer,
		Checks: map[string]health_controller.Check{
			"postgres": db.Ping,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		Logger:          log,
		FrontendURL:     cfg.FrontendURL,
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("🚀 Server is running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// sweepSessions drops in-memory stores that have been idle for maxIdle.
func sweepSessions(ctx context.Context, registry *session.Registry, maxIdle time.Duration) {
	ticker := time.NewTicker(maxIdle / 4)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			registry.Sweep(maxIdle)
		}
	}
}
