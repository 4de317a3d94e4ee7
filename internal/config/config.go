package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DatabaseURL string // Consolidated DB Connection URL
	RedisURL    string
	OutputPath  string // Where the xlsx report is written
}

// LoadConfig reads configuration from environment variables (.env file)
func LoadConfig() (*Config, error) {
	// Load .env file. In production, env variables are often set directly.
	if err := godotenv.Load(); err != nil {
		// Don't fail if .env is not present, just log it
		// log.Printf("Warning: .env file not found, reading from environment")
	}

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		OutputPath:  getEnv("OUTPUT_PATH", "davay_pozhenimsya.xlsx"),
	}, nil
}

// Helper function to get env var or return default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
