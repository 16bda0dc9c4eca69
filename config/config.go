package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process configuration, populated from environment
// variables after an optional .env file is loaded.
type Config struct {
	Port   string
	DBPath string
}

// Load reads configuration from the environment. An empty DB_PATH selects
// an in-memory datastore.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "data/badger"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
