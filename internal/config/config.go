package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DBPath   string
	Addr     string
	LogDir   string
	Verbose  bool
	Location *time.Location
}

// Load reads configuration from a .env file (working directory, if present)
// and environment variables. All settings have working defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables")
	}

	dbPath := getEnv("LENTOFLOW_DB", "")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".lentoflow", "lentoflow.db")
	}

	logDir := getEnv("LENTOFLOW_LOG_DIR", "")
	if logDir == "" {
		logDir = filepath.Join(filepath.Dir(dbPath), "logs")
	}

	// The user's local day is computed in a single configured time zone.
	loc := time.Local
	if tz := getEnv("LENTOFLOW_TZ", ""); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("loading time zone %q: %w", tz, err)
		}
		loc = parsed
	}

	return &AppConfig{
		DBPath:   dbPath,
		Addr:     getEnv("LENTOFLOW_ADDR", ":8080"),
		LogDir:   logDir,
		Verbose:  getEnvBool("LENTOFLOW_VERBOSE", false),
		Location: loc,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
