package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Version reported by the health endpoint.
const Version = "1.0"

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	// DatabaseURL and DatabaseName configure the optional database
	// collaborator. The demo endpoints never touch a database; these only
	// drive the /test diagnostic and the best-effort handle setup.
	DatabaseURL  string
	DatabaseName string
}

func Load() *Config {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	return &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8000"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
