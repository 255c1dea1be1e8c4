package config

import (
	"os"
	"strconv"
	"time"

	"gtd_assistant/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Lifecycle scan scheduler
	ScanInterval time.Duration

	// Suggestion defaults
	MaxSuggestions int

	// Rate limits
	APIRateLimit  int
	APIRateWindow time.Duration
	AuthRateLimit int
}

// Load reads configuration from the environment, failing fast on
// anything the server cannot run without.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	// scans run every 5 minutes unless configured otherwise
	scanInterval := 5 * time.Minute
	if v := os.Getenv("SCAN_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			scanInterval = time.Duration(n) * time.Second
		}
	}

	maxSuggestions := 10
	if v := os.Getenv("MAX_SUGGESTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxSuggestions = n
		}
	}

	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateLimit = n
		}
	}

	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	authRateLimit := 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			authRateLimit = n
		}
	}

	return &Config{
		AppPort:        port,
		DatabaseURL:    dbURL,
		JWTSecret:      jwtSecret,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		ScanInterval:   scanInterval,
		MaxSuggestions: maxSuggestions,
		APIRateLimit:   apiRateLimit,
		APIRateWindow:  apiRateWindow,
		AuthRateLimit:  authRateLimit,
	}
}
