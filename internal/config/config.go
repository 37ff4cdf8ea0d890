package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Notion NotionConfig
	Asset  AssetConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// NotionConfig holds content store credentials and database identifiers
type NotionConfig struct {
	APIKey    string
	BaseURL   string
	Version   string
	PageSize  int
	Timeout   time.Duration
	Databases DatabaseIDs
}

// DatabaseIDs holds one content store database identifier per content type
type DatabaseIDs struct {
	Notices    string
	Activities string
	Programs   string
	Business   string
	Banners    string
	About      string
}

// AssetConfig holds asset relay settings
type AssetConfig struct {
	// AllowedHosts restricts which origins the relay will fetch from,
	// matched by host suffix. Empty means any host.
	AllowedHosts []string
	Timeout      time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Notion: NotionConfig{
			APIKey:   getEnv("NOTION_API_KEY", ""),
			BaseURL:  getEnv("NOTION_BASE_URL", "https://api.notion.com"),
			Version:  getEnv("NOTION_VERSION", "2022-06-28"),
			PageSize: getIntEnv("NOTION_PAGE_SIZE", 100),
			Timeout:  getDurationEnv("NOTION_TIMEOUT", 10*time.Second),
			Databases: DatabaseIDs{
				Notices:    getEnv("NOTION_DATABASE_NOTICES", ""),
				Activities: getEnv("NOTION_DATABASE_ACTIVITIES", ""),
				Programs:   getEnv("NOTION_DATABASE_PROGRAMS", ""),
				Business:   getEnv("NOTION_DATABASE_BUSINESS", ""),
				Banners:    getEnv("NOTION_DATABASE_BANNERS", ""),
				About:      getEnv("NOTION_DATABASE_ABOUT", ""),
			},
		},
		Asset: AssetConfig{
			AllowedHosts: getSliceEnv("ASSET_ALLOWED_HOSTS", nil),
			Timeout:      getDurationEnv("ASSET_TIMEOUT", 15*time.Second),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
// Validation runs once at startup; services receive a validated config and
// never re-check credentials per request.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Content store validation
	if c.Notion.APIKey == "" {
		errs = append(errs, errors.New("NOTION_API_KEY is required"))
	}
	if c.Notion.PageSize <= 0 || c.Notion.PageSize > 100 {
		errs = append(errs, fmt.Errorf("NOTION_PAGE_SIZE must be between 1 and 100, got %d", c.Notion.PageSize))
	}
	for envVar, id := range map[string]string{
		"NOTION_DATABASE_NOTICES":    c.Notion.Databases.Notices,
		"NOTION_DATABASE_ACTIVITIES": c.Notion.Databases.Activities,
		"NOTION_DATABASE_PROGRAMS":   c.Notion.Databases.Programs,
		"NOTION_DATABASE_BUSINESS":   c.Notion.Databases.Business,
		"NOTION_DATABASE_BANNERS":    c.Notion.Databases.Banners,
		"NOTION_DATABASE_ABOUT":      c.Notion.Databases.About,
	} {
		if id == "" {
			errs = append(errs, fmt.Errorf("%s is required", envVar))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
