package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Telegram
	BotToken string
	Admins   []int64

	// Data service
	APIBaseURL        string
	APITimeoutSeconds int

	// Quiz content
	RulesPageURL string

	// Scheduling
	LocalTimezone string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Application
	AppEnv   string
	AppPort  string
	LogLevel string
}

func LoadConfig() (*Config, error) {
	cfg := load()

	admins, err := parseAdminList(getEnv("LIST_OF_ADMINS", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid LIST_OF_ADMINS: %w", err)
	}
	cfg.Admins = admins

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadServerConfig loads configuration for the data-service process, which
// needs no bot token or admin list.
func LoadServerConfig() (*Config, error) {
	cfg := load()

	if err := cfg.ServerValidate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func load() *Config {
	return &Config{
		BotToken: getEnv("TELEGRAM_BOT_API_TOKEN", ""),

		APIBaseURL:        getEnv("API_BASE_URL", "http://localhost:8080"),
		APITimeoutSeconds: getEnvInt("API_TIMEOUT_SECONDS", 3),

		RulesPageURL:  getEnv("RULES_PAGE_URL", ""),
		LocalTimezone: getEnv("LOCAL_TIMEZONE", "UTC"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "discquiz"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "discquiz_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AppEnv:   getEnv("APP_ENV", "development"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_API_TOKEN is required")
	}
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if len(c.Admins) == 0 {
		return fmt.Errorf("LIST_OF_ADMINS is required")
	}
	if _, err := time.LoadLocation(c.LocalTimezone); err != nil {
		return fmt.Errorf("invalid LOCAL_TIMEZONE %q: %w", c.LocalTimezone, err)
	}
	return nil
}

// ServerValidate checks only the fields the data-service process needs,
// so it can run without a bot token or admin list.
func (c *Config) ServerValidate() error {
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	return nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.LocalTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsAdmin reports whether the given Telegram user id is on the allow-list.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.Admins {
		if id == userID {
			return true
		}
	}
	return false
}

func parseAdminList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	admins := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad user id %q: %w", part, err)
		}
		admins = append(admins, id)
	}
	return admins, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
