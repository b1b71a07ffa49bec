package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"required"`

	// CatalogPath points at a recipe file; empty means the built-in catalog
	CatalogPath   string
	CatalogStrict bool

	CraftDelayMS   int    `validate:"min=0"`
	SlotLimit      int    `validate:"min=1"`
	MatchStrategy  string `validate:"oneof=sorted counted"`
	MatchCacheSize int    `validate:"min=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		CatalogPath:    getEnv(EnvCatalogPath, ""),
		CatalogStrict:  getEnvAsBool(EnvCatalogStrict, false),
		SlotLimit:      getEnvAsInt(EnvSlotLimit, DefaultSlotLimit),
		MatchStrategy:  strings.ToLower(getEnv(EnvMatchStrategy, DefaultMatchStrategy)),
		MatchCacheSize: getEnvAsInt(EnvMatchCacheSize, DefaultMatchCacheSize),
	}

	delayStr := getEnv(EnvCraftDelayMS, strconv.Itoa(DefaultCraftDelayMS))
	delay, err := strconv.Atoi(delayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvCraftDelayMS, err)
	}
	cfg.CraftDelayMS = delay

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CraftDelay returns the simulated crafting interval
func (c *Config) CraftDelay() time.Duration {
	return time.Duration(c.CraftDelayMS) * time.Millisecond
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
