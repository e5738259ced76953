package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string
	MediaRoot   string

	// Notification settings. Notifications are disabled when SMTPHost or
	// AdminEmail is empty.
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	FromEmail     string
	AdminEmail    string
	NotifyTimeout time.Duration

	// Admin API credentials. An empty password hash disables the admin API.
	AdminUser         string
	AdminPasswordHash string

	// Optional Redis-backed rate limiting of form submissions. Disabled when
	// RedisAddr is empty.
	RedisAddr      string
	RedisDB        int
	FormRateLimit  int
	FormRateWindow time.Duration

	DefaultLanguage string
	SeedDemoData    bool
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultMediaRoot       = "media"
	defaultSMTPPort        = 587
	defaultFromEmail       = "noreply@academiq.com"
	defaultNotifyTimeout   = 5 * time.Second
	defaultAdminUser       = "admin"
	defaultFormRateLimit   = 10
	defaultFormRateWindow  = time.Minute
	defaultLanguage        = "en"
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables. A .env file
// in the working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		MediaRoot:         getString(lookup, "MEDIA_ROOT", defaultMediaRoot),
		SMTPHost:          getString(lookup, "SMTP_HOST", ""),
		SMTPPort:          getInt(lookup, "SMTP_PORT", defaultSMTPPort),
		SMTPUsername:      getString(lookup, "SMTP_USERNAME", ""),
		SMTPPassword:      getString(lookup, "SMTP_PASSWORD", ""),
		FromEmail:         getString(lookup, "FROM_EMAIL", defaultFromEmail),
		AdminEmail:        getString(lookup, "ADMIN_EMAIL", ""),
		NotifyTimeout:     getDuration(lookup, "NOTIFY_TIMEOUT", defaultNotifyTimeout),
		AdminUser:         getString(lookup, "ADMIN_USER", defaultAdminUser),
		AdminPasswordHash: getString(lookup, "ADMIN_PASSWORD_HASH", ""),
		RedisAddr:         getString(lookup, "REDIS_ADDR", ""),
		RedisDB:           getInt(lookup, "REDIS_DB", 0),
		FormRateLimit:     getInt(lookup, "FORM_RATE_LIMIT", defaultFormRateLimit),
		FormRateWindow:    getDuration(lookup, "FORM_RATE_WINDOW", defaultFormRateWindow),
		DefaultLanguage:   getString(lookup, "DEFAULT_LANGUAGE", defaultLanguage),
		SeedDemoData:      getBool(lookup, "SEED_DEMO_DATA", false),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("academiq", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		notifyTimeoutStr   = cfg.NotifyTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.MediaRoot, "media", cfg.MediaRoot, "Directory for uploaded attachments")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "Recipient of submission notifications")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for form rate limiting")
	fs.BoolVar(&cfg.SeedDemoData, "seed", cfg.SeedDemoData, "Seed demo catalog data on startup")
	fs.StringVar(&notifyTimeoutStr, "notify-timeout", notifyTimeoutStr, "Timeout for a single notification attempt")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.NotifyTimeout, err = time.ParseDuration(notifyTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid notify timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.FormRateLimit <= 0 {
		cfg.FormRateLimit = defaultFormRateLimit
	}

	if cfg.FormRateWindow <= 0 {
		cfg.FormRateWindow = defaultFormRateWindow
	}

	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = defaultLanguage
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
