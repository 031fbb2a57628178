// Package config resolves the process configuration from the
// environment.
package config

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config carries every value the core reads from its environment.
type Config struct {
	// EncryptionKey is the durable vault key. Empty switches the
	// vault to an ephemeral key.
	EncryptionKey string

	// MongoURI points at the MongoDB deployment. Empty means data
	// does not persist unless another backend is selected.
	MongoURI string

	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string

	// StoreBackend selects the record store: mongo, sqlite or memory.
	StoreBackend string

	// LogFormat switches log output; "human" selects the console
	// writer, anything else stays JSON.
	LogFormat string
}

// Load reads a .env file when one exists, then resolves the
// configuration from the environment.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded environment from .env")
	}

	return &Config{
		EncryptionKey: os.Getenv("ENCRYPTION_KEY"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		SQLitePath:    getEnv("SQLITE_DB_PATH", "data/cofrinho.db"),
		StoreBackend:  getEnv("STORE_BACKEND", "mongo"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
	}
}

// SetupLogging configures the global logger. The format can be
// explicitly set; if it is not, output stays JSON for machine
// consumption.
func SetupLogging(format string) {
	output := io.Writer(os.Stdout)
	if format == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// getEnv returns the value of the environment variable key, or
// fallback when it is unset or empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
