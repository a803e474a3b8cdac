package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8000"
	defaultDatabaseURL = "sqlite://./hrms.db"
	defaultCORSOrigin  = "http://localhost:5173"
)

type AppConfig struct {
	Env            string
	Port           string
	DatabaseURL    string
	DBMaxRetries   int
	CORSOrigins    []string
	RedisAddr      string
	RateLimitRPS   float64
	RateLimitBurst int
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env (if present) and then the process environment. It is
// called once at startup.
func Load() (AppConfig, error) {
	_ = godotenv.Load() // load .env if present

	cfg := AppConfig{
		Env:         strings.ToLower(getEnv("APP_ENV", "development")),
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		CORSOrigins: ParseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		RedisAddr:   strings.TrimSpace(os.Getenv("REDIS_ADDR")),
	}

	var err error
	if cfg.DBMaxRetries, err = getInt("DB_MAX_RETRIES", 5); err != nil {
		return AppConfig{}, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 10); err != nil {
		return AppConfig{}, err
	}
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 5); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

// ParseCORSOrigins splits a comma separated origin list, dropping blanks.
func ParseCORSOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		raw = defaultCORSOrigin
	}
	origins := make([]string, 0)
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{defaultCORSOrigin}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getFloat(key string, defaultValue float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
