package app

import (
	"time"

	"github.com/Prateek11234/hrms/internal/config"
	"github.com/Prateek11234/hrms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const retryDelay = 2 * time.Second

// BuildApp connects storage, migrates the schema and registers every module
// on router. The returned cleanup closes the connections it opened.
func BuildApp(router *gin.Engine, cfg config.AppConfig, logger *zap.Logger) (func(), error) {
	if logger == nil {
		logger = zap.L()
	}

	db, err := connection.ConnectGORMWithRetry(cfg.DatabaseURL, cfg.DBMaxRetries, retryDelay, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries, retryDelay, logger)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Info("redis connection established, idempotency keys enabled")
	}

	registerModules(router, Modules{
		DB:     db,
		Redis:  rdb,
		Config: cfg,
		Logger: logger,
	})

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}
	return cleanup, nil
}
