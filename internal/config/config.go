package config // package config loads application configuration from environment variables

import (
	"os" // os provides access to environment variables

	"github.com/joho/godotenv" // godotenv loads a local .env file into the environment
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a default so the server can run
// with no environment at all; real environment variables always win over
// values loaded from .env.
type Config struct {
	Env    string // application environment label (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBPath string // path of the SQLite database file
}

// Load reads configuration from the environment, consulting a .env file in
// the working directory when one exists.  A missing .env is not an error.
func Load() Config {
	_ = godotenv.Load() // best effort; os.Setenv values are not overwritten

	return Config{
		Env:    envOr("APP_ENV", "dev"),           // environment label for startup logs
		Port:   envOr("APP_PORT", "8080"),         // port to bind the HTTP server
		DBPath: envOr("DB_PATH", "candidates.db"), // embedded database file
	}
}

// envOr retrieves an environment variable, falling back to def when the
// variable is unset or empty.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
