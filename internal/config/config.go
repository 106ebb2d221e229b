package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, sourced from environment variables.
type Config struct {
	// Port is the listen address, e.g. ":8080".
	Port string
	// DatabaseURL is the Postgres connection string. Empty selects the
	// in-memory store.
	DatabaseURL string
	// AuthSecret is the HS256 signing secret for bearer tokens. Empty
	// disables token verification and identities are taken from request
	// bodies as-is.
	AuthSecret string
}

// Load reads configuration from the environment. A .env file is loaded
// first if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        listenAddr(),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AuthSecret:  os.Getenv("AUTH_SECRET"),
	}
}

func listenAddr() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
