package config

import (
	"os"
	"strconv"
	"time"

	"hris-portal/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Port   string
	AppEnv string

	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	Postgres    connection.PostgresConfig
	RedisAddr   string
	KafkaBroker string

	SessionTTL             time.Duration
	AttendancePollInterval time.Duration
	Location               *time.Location

	RateLimitRPS   float64
	RateLimitBurst int
}

// SecureCookies is true in production, where the portal is served over TLS.
func (c Config) SecureCookies() bool {
	return c.AppEnv == "production"
}

// Load reads .env when present, then the process environment.
func Load() Config {
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Asia/Kolkata"))
	if err != nil {
		zap.L().Warn("invalid TIMEZONE, falling back to UTC", zap.Error(err))
		loc = time.UTC
	}

	return Config{
		Port:            getEnv("PORT", "3000"),
		AppEnv:          getEnv("APP_ENV", "development"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:5000"),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 15*time.Second),
		Postgres: connection.PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:            os.Getenv("KAFKA_BROKER"),
		SessionTTL:             getDuration("SESSION_TTL", 24*time.Hour),
		AttendancePollInterval: getDuration("ATTENDANCE_POLL_INTERVAL", 30*time.Second),
		Location:               loc,
		RateLimitRPS:           getFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:         getInt("RATE_LIMIT_BURST", 20),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		zap.L().Warn("invalid duration in env, using default", zap.String("key", key), zap.String("value", v))
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
