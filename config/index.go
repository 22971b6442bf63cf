package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reads an environment variable, falling back to .env when present.
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	if value := Config(key); value != "" {
		return value
	}
	return fallback
}
