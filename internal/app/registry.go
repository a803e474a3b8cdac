package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/Prateek11234/hrms/internal/attendance"
	"github.com/Prateek11234/hrms/internal/config"
	"github.com/Prateek11234/hrms/internal/dashboard"
	"github.com/Prateek11234/hrms/internal/employee"
	"github.com/Prateek11234/hrms/internal/middleware"
	"github.com/Prateek11234/hrms/internal/shared/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Modules carries what the HTTP modules are built from.
type Modules struct {
	DB     *gorm.DB
	Redis  *redis.Client // optional
	Config config.AppConfig
	Logger *zap.Logger
	Clock  func() time.Time // defaults to time.Now
}

func registerModules(router *gin.Engine, m Modules) {
	logger := m.Logger
	if logger == nil {
		logger = zap.L()
	}
	clock := m.Clock
	if clock == nil {
		clock = time.Now
	}

	router.Use(
		gin.Recovery(),
		middleware.ContextLogger(logger.Named("http")),
		cors.New(corsConfig(m.Config.CORSOrigins)),
	)

	// --- Repositories ---
	employeeRepo := employee.NewRepository(m.DB)
	attendanceRepo := attendance.NewRepository(m.DB)
	dashboardRepo := dashboard.NewRepository(m.DB)

	// --- Services ---
	employeeService := employee.NewService(m.DB, employeeRepo, logger)
	attendanceService := attendance.NewService(m.DB, attendanceRepo, logger)
	dashboardService := dashboard.NewServiceWithClock(dashboardRepo, clock, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)

	guards := writeGuards(m.Config, m.Redis)

	// --- Routes Registration ---
	root := router.Group("")
	{
		root.GET("/health", func(c *gin.Context) {
			response.Success(c, http.StatusOK, nil)
		})
		employee.RegisterRoutes(root, employeeHandler, guards...)
		attendance.RegisterRoutes(root, attendanceHandler, guards...)
		dashboard.RegisterRoutes(root, dashboardHandler)
	}
}

// writeGuards share one per-IP limiter across every write route. A
// non-positive rate disables limiting.
func writeGuards(cfg config.AppConfig, rdb *redis.Client) []gin.HandlerFunc {
	var guards []gin.HandlerFunc
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		guards = append(guards, middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), burst))
	}
	if rdb != nil {
		guards = append(guards, middleware.Idempotency(rdb))
	}
	return guards
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			middleware.RequestIDHeader, middleware.IdempotencyKeyHeader,
		},
		ExposeHeaders:    []string{middleware.RequestIDHeader, middleware.IdempotencyReplayedHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			// a wildcard cannot be combined with credentials, so reflect the caller's origin
			cfg.AllowOriginFunc = func(string) bool { return true }
			return cfg
		}
	}
	cfg.AllowOrigins = make([]string, 0, len(origins))
	for _, o := range origins {
		cfg.AllowOrigins = append(cfg.AllowOrigins, strings.TrimRight(o, "/"))
	}
	return cfg
}
