// Package config loads runtime settings from the environment, with an
// optional .env file for local development. Every setting is optional:
// the app runs fully offline with built-in defaults.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings.
type Config struct {
	// DBPath overrides the SQLite database location.
	DBPath string

	// MongoURI enables the hosted roster store when set.
	MongoURI string

	// MongoDatabase names the roster database. Defaults to "bevuihoc".
	MongoDatabase string

	// GeminiAPIKey enables text-to-speech when set.
	GeminiAPIKey string
}

// Load reads the environment. A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		DBPath:        os.Getenv("BEVUIHOC_DB"),
		MongoURI:      os.Getenv("BEVUIHOC_MONGO_URI"),
		MongoDatabase: getenvDefault("BEVUIHOC_MONGO_DB", "bevuihoc"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
