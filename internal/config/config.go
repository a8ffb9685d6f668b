package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API struct {
		BaseURL string
		Timeout time.Duration
	}
	Report struct {
		Timezone string
		PDFDir   string
	}
}

// Load reads configuration from the environment, optionally preloading a
// .env file from path. API_BASE_URL is the only required value.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: failed to load .env: %w", err)
		}
	}

	cfg := &Config{}

	cfg.API.BaseURL = os.Getenv("API_BASE_URL")
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL is required")
	}

	cfg.API.Timeout = 30 * time.Second
	if raw := os.Getenv("API_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("config: invalid API_TIMEOUT_SECONDS %q", raw)
		}
		cfg.API.Timeout = time.Duration(seconds) * time.Second
	}

	cfg.Report.Timezone = os.Getenv("REPORT_TIMEZONE")
	if cfg.Report.Timezone == "" {
		cfg.Report.Timezone = "UTC"
	}

	cfg.Report.PDFDir = os.Getenv("REPORT_PDF_DIR")
	if cfg.Report.PDFDir == "" {
		cfg.Report.PDFDir = "."
	}

	return cfg, nil
}
