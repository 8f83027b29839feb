package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string // "development" or "production"
	FrontendURL string

	// Database Configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSL      bool
	DBPoolSize int

	// Auth Configuration
	JWTSecret string
	JWTExpire time.Duration

	// Redis Configuration (optional, rate limiting)
	RedisURL string

	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production deployments
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", "development"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3001"), "/"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "job_portal"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "job_portal"),
		DBSSL:      getEnvBool("DB_SSL", false),
		DBPoolSize: getEnvInt("DB_POOL_SIZE", 10),

		JWTSecret: getEnv("JWT_SECRET", ""),

		RedisURL: getEnv("REDIS_URL", ""),

		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
	}

	expire, err := time.ParseDuration(getEnv("JWT_EXPIRE", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRE: %w", err)
	}
	cfg.JWTExpire = expire

	// Token issuance is impossible without a secret; refuse to start.
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not configured. Please set it in your .env file")
	}

	if cfg.DBPassword == "" {
		log.Println("WARNING: DB_PASSWORD is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// DatabaseURL assembles a pgx connection string from the discrete settings.
func (c *Config) DatabaseURL() string {
	sslMode := "disable"
	if c.DBSSL {
		sslMode = "require"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, sslMode)
}

// IsProduction reports whether the app runs in production mode. Internal
// error responses hide diagnostic detail when this is true.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
