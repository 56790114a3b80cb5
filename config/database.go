package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database bundles the gorm handle used by the catalog and the pgx pool used
// for health checks.
type Database struct {
	Gorm *gorm.DB
	Pool *pgxpool.Pool
}

func InitDB(cfg *AppConfig, log *zap.Logger) (*Database, error) {
	ctx, cancel := WithTimeout()
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	log.Info("✅ Database connected (pgx)")

	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database with GORM: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Info("✅ Database connected (GORM)")

	return &Database{Gorm: db, Pool: pool}, nil
}

// Ping checks the database is reachable.
func (d *Database) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

func (d *Database) Close() {
	if d.Pool != nil {
		d.Pool.Close()
	}
	if d.Gorm != nil {
		if sqlDB, _ := d.Gorm.DB(); sqlDB != nil {
			sqlDB.Close()
		}
	}
}

// WithTimeout returns a context with a 10s timeout (Neon cold starts can be slow)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
