package connection

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

const sqliteParams = "_foreign_keys=on&_busy_timeout=5000"

// Dialector picks the gorm dialector for a DATABASE_URL.
//
//	postgres://..., postgresql://..., host=... -> PostgreSQL (pgx)
//	sqlite://path, file:path, *.db, :memory:   -> SQLite with foreign keys on
func Dialector(databaseURL string) (gorm.Dialector, Driver, error) {
	url := strings.TrimSpace(databaseURL)
	switch {
	case url == "":
		return nil, "", fmt.Errorf("database url is empty")
	case strings.HasPrefix(url, "postgres://"),
		strings.HasPrefix(url, "postgresql://"),
		strings.HasPrefix(url, "host="):
		return postgres.Open(url), DriverPostgres, nil
	case strings.HasPrefix(url, "sqlite://"):
		return sqlite.Open(sqliteDSN(strings.TrimPrefix(url, "sqlite://"))), DriverSQLite, nil
	case strings.HasPrefix(url, "file:"),
		strings.HasSuffix(url, ".db"),
		url == ":memory:":
		return sqlite.Open(sqliteDSN(url)), DriverSQLite, nil
	default:
		return nil, "", fmt.Errorf("unsupported database url %q", url)
	}
}

func sqliteDSN(path string) string {
	// sqlite:///abs/file.db keeps its leading slash, sqlite://./file.db is relative
	if path == "" {
		path = ":memory:"
	}
	if strings.Contains(path, "?") {
		return path + "&" + sqliteParams
	}
	return path + "?" + sqliteParams
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Open opens and pings the database once.
func Open(databaseURL string) (*gorm.DB, error) {
	dialector, driver, err := Dialector(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	// Pool config
	switch driver {
	case DriverSQLite:
		// one writer at a time; a single connection serializes transactions
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	case DriverPostgres:
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return db, nil
}

func ConnectGORMWithRetry(
	databaseURL string,
	maxRetries int,
	retryDelay time.Duration,
	logger *zap.Logger,
) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.L()
	}
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error

	for i := 1; i <= maxRetries; i++ {
		db, err := Open(databaseURL)
		if err == nil {
			logger.Info("database connected", zap.Int("attempt", i))
			return db, nil
		}

		lastErr = err
		logger.Warn("database connect failed",
			zap.Int("attempt", i),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
		if i < maxRetries {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}

func ConnectRedisWithRetry(addr string, maxRetries int, retryDelay time.Duration, logger *zap.Logger) (*redis.Client, error) {
	if logger == nil {
		logger = zap.L()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			logger.Info("redis connected", zap.String("addr", addr))
			return rdb, nil
		}

		lastErr = err
		logger.Warn("redis connect failed",
			zap.Int("attempt", i),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
		if i < maxRetries {
			time.Sleep(retryDelay)
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("failed to connect redis at %s: %w", addr, lastErr)
}
