package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvLogFile       = "CAREERFIT_LOG_FILE"
	EnvLogLevel      = "CAREERFIT_LOG_LEVEL"
	EnvStrictCatalog = "CAREERFIT_STRICT_CATALOG"
	EnvReportFormat  = "CAREERFIT_REPORT_FORMAT"
	EnvReportDir     = "CAREERFIT_REPORT_DIR"
)

// DefaultEnvFile is loaded when present and no other file is named.
const DefaultEnvFile = ".env"

// Config holds process-wide settings.
type Config struct {
	// LogFile receives structured logs. Empty discards them, since the TUI
	// owns the terminal.
	LogFile string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `validate:"oneof=debug info warn error"`
	// StrictCatalog fails catalog construction when a scenario option has no score.
	StrictCatalog bool
	// ReportFormat is the default output of the score command.
	ReportFormat string `validate:"oneof=text json yaml"`
	// ReportDir is where the results screen suggests saving exports.
	ReportDir string `validate:"required"`
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Load reads envFile (or .env when empty and present) into the environment
// without overriding variables already set, then builds a validated Config.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", DefaultEnvFile, err)
	}

	reportDir, err := DefaultReportDir()
	if err != nil {
		return nil, err
	}
	strict, err := getEnvBool(EnvStrictCatalog, false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogFile:       getEnv(EnvLogFile, ""),
		LogLevel:      getEnv(EnvLogLevel, "info"),
		StrictCatalog: strict,
		ReportFormat:  getEnv(EnvReportFormat, "text"),
		ReportDir:     getEnv(EnvReportDir, reportDir),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints. Call it again after applying overrides.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid config: %s=%q fails %s %s", fe.Field(), fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DefaultReportDir returns $XDG_DATA_HOME/careerfit/reports, falling back to
// ~/.local/share when XDG_DATA_HOME is unset.
func DefaultReportDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "careerfit", "reports"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
