package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultTimeZone  = "UTC"
)

type Config struct {
	LogLevel  string
	LogFormat string
	TimeZone  string
	SeedFile  string
}

// LoadConfig reads the configuration from the environment after loading
// envFile into it. A missing envFile is not an error, and variables already
// set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	config := Config{
		LogLevel:  envOrDefault("LOG_LEVEL", defaultLogLevel),
		LogFormat: envOrDefault("LOG_FORMAT", defaultLogFormat),
		TimeZone:  envOrDefault("TIME_ZONE", defaultTimeZone),
		SeedFile:  os.Getenv("SEED_FILE"),
	}

	if _, err := config.Location(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Location resolves TimeZone. Dates given without an offset on the command
// line or in seed files are read in this location.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("TIME_ZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
