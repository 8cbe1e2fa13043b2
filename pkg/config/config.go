package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	JWT         JWTConfig
	GoogleDrive GoogleDriveConfig
	RateLimit   RateLimitConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type GoogleDriveConfig struct {
	APIKey       string // API key used to list publicly shared folders
	PreviewWidth int    // Width of generated preview thumbnails
}

type RateLimitConfig struct {
	Enabled           bool
	MaxRequests       int
	WindowSeconds     int
	AuthMaxRequests   int
	AuthWindowSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists (optional for production)
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	previewWidth, _ := strconv.Atoi(getEnv("DRIVE_PREVIEW_WIDTH", "1000"))
	maxRequests, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "120"))
	windowSeconds, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))
	authMaxRequests, _ := strconv.Atoi(getEnv("RATE_LIMIT_AUTH_MAX", "10"))
	authWindowSeconds, _ := strconv.Atoi(getEnv("RATE_LIMIT_AUTH_WINDOW_SECONDS", "60"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Proofroom"),
			Port: getEnv("APP_PORT", "3000"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "proofroom"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		GoogleDrive: GoogleDriveConfig{
			APIKey:       getEnv("GOOGLE_DRIVE_API_KEY", ""),
			PreviewWidth: previewWidth,
		},
		RateLimit: RateLimitConfig{
			Enabled:           getEnv("RATE_LIMIT_ENABLED", "true") == "true",
			MaxRequests:       maxRequests,
			WindowSeconds:     windowSeconds,
			AuthMaxRequests:   authMaxRequests,
			AuthWindowSeconds: authWindowSeconds,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
