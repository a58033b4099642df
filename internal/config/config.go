// Package config reads settings from the environment and an optional .env
// file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	CaseFile               string
	ReportDir              string
	Workers                int
	RecommendedUtilization float64
	LogLevel               slog.Level
}

func Default() Config {
	return Config{
		ReportDir:              "reports",
		Workers:                4,
		RecommendedUtilization: 0.85,
		LogLevel:               slog.LevelInfo,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then builds the Config. Missing files are ignored;
// variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from RISER_* variables.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	if v := getenv("RISER_CASE_FILE"); v != "" {
		cfg.CaseFile = v
	}
	if v := getenv("RISER_REPORT_DIR"); v != "" {
		cfg.ReportDir = v
	}
	if v := getenv("RISER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("RISER_WORKERS must be a positive integer, got %q", v)
		}
		cfg.Workers = n
	}
	if v := getenv("RISER_RECOMMENDED_UTILIZATION"); v != "" {
		u, err := strconv.ParseFloat(v, 64)
		if err != nil || u <= 0 || u > 1 {
			return Config{}, fmt.Errorf("RISER_RECOMMENDED_UTILIZATION must be in (0, 1], got %q", v)
		}
		cfg.RecommendedUtilization = u
	}
	if v := getenv("RISER_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return Config{}, fmt.Errorf("RISER_LOG_LEVEL: %w", err)
		}
	}
	return cfg, nil
}
