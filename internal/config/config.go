package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Slack    SlackConfig
	Firebase FirebaseConfig
	JWT      JWTConfig
	Job      JobConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// SMTPConfig holds the mail relay credentials. An empty Host disables
// outbound email (sends are logged and skipped).
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// SlackConfig holds the Slack bot token, the incoming webhook used for
// reminder broadcasts, and the channel that receives daily-log posts.
// APIURL overrides the Slack Web API base URL (tests only).
type SlackConfig struct {
	BotToken        string
	WebhookURL      string
	DailyLogChannel string
	APIURL          string
}

// FirebaseConfig points at the service-account credentials file. An empty
// path disables push notifications.
type FirebaseConfig struct {
	CredentialsFile string
}

// JWTConfig holds the shared secret used to verify bearer tokens issued by
// the identity provider. An empty secret leaves the API unguarded.
type JWTConfig struct {
	Secret string
}

// JobConfig holds the scheduled-job settings. Timezone fixes the wall clock
// for every schedule and for the reconciliation day boundaries; it must not
// fall back to the host clock's zone.
type JobConfig struct {
	Timezone        string
	ReconcileSpec   string
	DefaultCheckout string
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "techcreator-ems"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
		FromName: getEnv("SMTP_FROM_NAME", "TechCreator EMS"),
	}

	// Slack configuration
	config.Slack = SlackConfig{
		BotToken:        getEnv("SLACK_BOT_TOKEN", ""),
		WebhookURL:      getEnv("SLACK_WEBHOOK_URL", ""),
		DailyLogChannel: getEnv("SLACK_DAILYLOG_CHANNEL", ""),
		APIURL:          getEnv("SLACK_API_URL", ""),
	}

	// Firebase configuration
	config.Firebase = FirebaseConfig{
		CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Scheduled job configuration
	config.Job = JobConfig{
		Timezone:        getEnv("JOB_TIMEZONE", "Asia/Karachi"),
		ReconcileSpec:   getEnv("JOB_RECONCILE_CRON", "0 21 * * *"),
		DefaultCheckout: getEnv("JOB_DEFAULT_CHECKOUT", "16:30"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if _, err := time.LoadLocation(c.Job.Timezone); err != nil {
		return fmt.Errorf("invalid JOB_TIMEZONE %q: %w", c.Job.Timezone, err)
	}
	if _, _, err := ParseWallClock(c.Job.DefaultCheckout); err != nil {
		return fmt.Errorf("invalid JOB_DEFAULT_CHECKOUT %q: %w", c.Job.DefaultCheckout, err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// ParseWallClock parses an "HH:MM" wall-clock string.
func ParseWallClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
