package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml"
)

type Config struct {
	// Remote API
	APIBaseURL     string        `toml:"api_base_url"`
	RequestTimeout time.Duration `toml:"request_timeout"`

	// Listing
	PageSize int `toml:"page_size"`

	// Local state
	SessionFile    string `toml:"session_file"`
	SnapshotDBPath string `toml:"snapshot_db_path"`

	// Category cache
	CategoryCacheTTL time.Duration `toml:"category_cache_ttl"`

	// Logging
	LogLevel string `toml:"log_level"`
}

func Load() *Config {
	home, _ := os.UserHomeDir()
	stateDir := filepath.Join(home, ".fintrack")

	return &Config{
		APIBaseURL:       getEnv("FINTRACK_API_URL", "http://localhost:8000/api"),
		RequestTimeout:   getEnvDuration("FINTRACK_REQUEST_TIMEOUT", 15*time.Second),
		PageSize:         getEnvInt("FINTRACK_PAGE_SIZE", 10),
		SessionFile:      getEnv("FINTRACK_SESSION_FILE", filepath.Join(stateDir, "session.json")),
		SnapshotDBPath:   getEnv("FINTRACK_SNAPSHOT_DB", filepath.Join(stateDir, "snapshot.db")),
		CategoryCacheTTL: getEnvDuration("FINTRACK_CATEGORY_TTL", 5*time.Minute),
		LogLevel:         getEnv("FINTRACK_LOG_LEVEL", "info"),
	}
}

// MergeFile overlays values from a TOML config file onto the environment
// defaults. Zero values in the file leave the existing setting untouched.
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if file.APIBaseURL != "" {
		c.APIBaseURL = file.APIBaseURL
	}
	if file.RequestTimeout != 0 {
		c.RequestTimeout = file.RequestTimeout
	}
	if file.PageSize != 0 {
		c.PageSize = file.PageSize
	}
	if file.SessionFile != "" {
		c.SessionFile = file.SessionFile
	}
	if file.SnapshotDBPath != "" {
		c.SnapshotDBPath = file.SnapshotDBPath
	}
	if file.CategoryCacheTTL != 0 {
		c.CategoryCacheTTL = file.CategoryCacheTTL
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	return nil
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if u, err := url.Parse(c.APIBaseURL); err != nil {
		errs = append(errs, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Sprintf("invalid API base URL scheme '%s': must be http or https", u.Scheme))
	}

	if c.RequestTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid request timeout %v: must be at least 1 second", c.RequestTimeout))
	} else if c.RequestTimeout > 5*time.Minute {
		errs = append(errs, fmt.Sprintf("invalid request timeout %v: must be at most 5 minutes", c.RequestTimeout))
	}

	if c.PageSize < 1 {
		errs = append(errs, fmt.Sprintf("invalid page size %d: must be at least 1", c.PageSize))
	} else if c.PageSize > 500 {
		errs = append(errs, fmt.Sprintf("invalid page size %d: must be at most 500", c.PageSize))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if c.SnapshotDBPath != "" {
		dir := filepath.Dir(c.SnapshotDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create snapshot directory '%s': %v", dir, err))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
