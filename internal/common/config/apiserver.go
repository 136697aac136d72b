package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type (
	// APIServerConfig is the root configuration for the Sentra API server
	APIServerConfig struct {
		Port       int              `yaml:"port"`
		Database   DatabaseConfig   `yaml:"database"`
		Logger     LoggerConfig     `yaml:"logger"`
		JWT        JWTConfig        `yaml:"jwt"`
		Auth       AuthConfig       `yaml:"auth"`
		Preference PreferenceConfig `yaml:"preference"`
		SuperAdmin SuperAdminConfig `yaml:"super_admin"`
		Metrics    MetricsConfig    `yaml:"metrics"`
		I18n       I18nConfig       `yaml:"i18n"`
	}

	// I18nConfig represents the internationalization configuration
	I18nConfig struct {
		Path string `yaml:"path"` // Path to i18n translation files
	}

	DatabaseConfig struct {
		Type     string `yaml:"type"`     // mysql, postgres, sqlite
		Host     string `yaml:"host"`     // localhost
		Port     int    `yaml:"port"`     // 3306 (for mysql), 5432 (for postgres)
		User     string `yaml:"user"`     // root (for mysql), postgres (for postgres)
		Password string `yaml:"password"` // password
		DBName   string `yaml:"dbname"`   // database name, or the file path for sqlite
		SSLMode  string `yaml:"sslmode"`  // disable (for postgres)
	}

	JWTConfig struct {
		SecretKey string        `yaml:"secret_key"`
		Duration  time.Duration `yaml:"duration"`
	}

	// AuthConfig carries the tenant-routing policy knobs for the login flow
	AuthConfig struct {
		// ReservedSlugs is a comma-separated list of slugs reserved for the
		// platform portal. Defaults apply when empty.
		ReservedSlugs string `yaml:"reserved_slugs"`
		// DemoLoginEnabled allows the designated demo account to log in
		// without a stored profile.
		DemoLoginEnabled bool `yaml:"demo_login_enabled"`
		// DemoEmail is the email of the demo account.
		DemoEmail string `yaml:"demo_email"`
		// ProfileRetry bounds the retry of transiently aborted profile fetches.
		ProfileRetry RetryConfig `yaml:"profile_retry"`
	}

	// RetryConfig represents a bounded retry policy
	RetryConfig struct {
		MaxRetries int           `yaml:"max_retries"`
		Delay      time.Duration `yaml:"delay"`
	}

	// PreferenceConfig represents the last-known-good company store configuration
	PreferenceConfig struct {
		Type  string                `yaml:"type"`  // "memory" or "redis"
		Redis PreferenceRedisConfig `yaml:"redis"` // Redis configuration
	}

	// PreferenceRedisConfig represents the Redis configuration for the preference store
	PreferenceRedisConfig struct {
		Addr     string        `yaml:"addr"`
		Username string        `yaml:"username"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		Prefix   string        `yaml:"prefix"`
		TTL      time.Duration `yaml:"ttl"`
	}

	// SuperAdminConfig represents the bootstrap super admin account
	SuperAdminConfig struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	}

	// MetricsConfig represents the Prometheus metrics configuration
	MetricsConfig struct {
		Namespace string    `yaml:"namespace"`
		Buckets   []float64 `yaml:"buckets"`
	}

	// LoggerConfig represents the logger configuration
	LoggerConfig struct {
		Level      string `yaml:"level"`       // debug, info, warn, error
		Format     string `yaml:"format"`      // json, console
		Output     string `yaml:"output"`      // stdout, file
		FilePath   string `yaml:"file_path"`   // path to log file when output is file
		MaxSize    int    `yaml:"max_size"`    // max size of log file in MB
		MaxBackups int    `yaml:"max_backups"` // max number of backup files
		MaxAge     int    `yaml:"max_age"`     // max age of backup files in days
		Compress   bool   `yaml:"compress"`    // whether to compress backup files
		Color      bool   `yaml:"color"`       // whether to use color in console output
		Stacktrace bool   `yaml:"stacktrace"`  // whether to include stacktrace in error logs
		TimeZone   string `yaml:"time_zone"`   // time zone for log timestamps, default is local
		TimeFormat string `yaml:"time_format"` // time format for log timestamps
	}
)

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	switch c.Type {
	case "postgres":
		return c.getPostgresDSN()
	case "mysql":
		return c.getMySQLDSN()
	case "sqlite":
		// Ensure the directory for the SQLite database exists.
		if err := os.MkdirAll(filepath.Dir(c.DBName), 0755); err != nil {
			panic(fmt.Errorf("failed to create directory for sqlite database: %w", err))
		}
		return c.DBName // For SQLite, DBName is the file path
	default:
		return ""
	}
}

// getPostgresDSN returns PostgreSQL connection string
func (c *DatabaseConfig) getPostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// getMySQLDSN returns MySQL connection string
func (c *DatabaseConfig) getMySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}
