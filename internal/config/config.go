package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL      string
	RedisURL         string
	ServerPort       string
	ApprovalPassword string
	ApproverName     string
	CORSOrigins      []string
	CacheTTL         int
	LogLevel         string
	DBMaxOpenConns   int
	DBMaxIdleConns   int
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		DatabaseURL:      getEnv("DATABASE_URL", "sqlite://orders.db"),
		RedisURL:         getEnv("REDIS_URL", ""),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		ApprovalPassword: getEnv("APPROVAL_PASSWORD", "admin"),
		ApproverName:     getEnv("APPROVER_NAME", "이지은"),
		CORSOrigins:      getEnvAsList("CORS_ORIGINS", defaultOrigins),
		CacheTTL:         getEnvAsInt("CACHE_TTL", 300),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DBMaxOpenConns:   getEnvAsInt("DB_MAX_OPEN_CONNS", 50),
		DBMaxIdleConns:   getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
	}
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8000",
	"https://samsip.vercel.app",
	"https://samsip-be.koyeb.app",
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
