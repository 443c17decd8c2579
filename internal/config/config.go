// Package config loads the CLI and HTTP ambient layers' settings from the
// environment (optionally via a .env file), as a struct of sections with a
// single Load() (*Config, error) entry point.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"lightcurve/internal/lcerr"
)

// Config is the complete ambient configuration for cmd/lcfeature.
type Config struct {
	Output OutputConfig
	Server ServerConfig
}

// OutputConfig controls where and how CLI results are written.
type OutputConfig struct {
	Dir          string
	WritePNG     bool
	WriteReport  bool
	ReportFormat string // "md" or "html"
	DmDtSize     int    // PNG edge length in pixels, both axes
}

// ServerConfig holds the debug HTTP transport's settings.
type ServerConfig struct {
	Port string
}

// Load reads a .env file if present (ignored if absent — environment
// variables set another way are just as valid), then builds a Config from
// the environment, applying defaults and validating required fields.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Output: loadOutputConfig(),
		Server: loadServerConfig(),
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadOutputConfig() OutputConfig {
	return OutputConfig{
		Dir:          getEnvOrDefault("LCFEATURE_OUTPUT_DIR", "."),
		WritePNG:     getEnvBoolOrDefault("LCFEATURE_WRITE_PNG", true),
		WriteReport:  getEnvBoolOrDefault("LCFEATURE_WRITE_REPORT", false),
		ReportFormat: getEnvOrDefault("LCFEATURE_REPORT_FORMAT", "md"),
		DmDtSize:     getEnvIntOrDefault("LCFEATURE_DMDT_SIZE", 128),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port: getEnvOrDefault("LCFEATURE_PORT", "8080"),
	}
}

func validate(cfg *Config) error {
	if cfg.Output.ReportFormat != "md" && cfg.Output.ReportFormat != "html" {
		return &lcerr.InvalidParameterError{
			Feature:   "config",
			Parameter: "LCFEATURE_REPORT_FORMAT",
			Reason:    "must be \"md\" or \"html\"",
		}
	}
	if cfg.Output.DmDtSize <= 0 {
		return &lcerr.InvalidParameterError{
			Feature:   "config",
			Parameter: "LCFEATURE_DMDT_SIZE",
			Reason:    "must be positive",
		}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
