package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultEndpoint       = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultPollSchedule   = "@every 10m"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogFile        = "program.log"
	DefaultLogMaxSizeMB   = 50
	DefaultLogMaxBackups  = 5
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64
	hasChatID      bool

	Endpoint       string
	PollSchedule   string // robfig/cron spec, e.g. "@every 10m"
	RequestTimeout time.Duration
	StrictTokens   bool // abort startup when a secret is missing

	LogLevel      string
	Environment   string
	LogFile       string // empty disables the file sink
	LogMaxSizeMB  int
	LogMaxBackups int
}

// Load reads configuration from environment variables and .env file (if present).
// Missing secrets are not an error here, see MissingTokens.
func Load() (*AppConfig, error) {
	// godotenv.Load does not override variables already set in the environment.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")

	chatIDStr := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID"))
	if chatIDStr != "" {
		cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.hasChatID = true
	}

	cfg.Endpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	cfg.PollSchedule = strings.TrimSpace(os.Getenv("POLL_SCHEDULE"))
	if cfg.PollSchedule == "" {
		cfg.PollSchedule = DefaultPollSchedule
	}

	cfg.RequestTimeout = DefaultRequestTimeout
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		cfg.RequestTimeout, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
		if cfg.RequestTimeout <= 0 {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: must be positive, got %s", v)
		}
	}

	if v := os.Getenv("STRICT_TOKENS"); v != "" {
		cfg.StrictTokens, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STRICT_TOKENS: %w", err)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.LogFile = DefaultLogFile
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}

	cfg.LogMaxSizeMB, err = intFromEnv("LOG_MAX_SIZE_MB", DefaultLogMaxSizeMB)
	if err != nil {
		return nil, err
	}
	cfg.LogMaxBackups, err = intFromEnv("LOG_MAX_BACKUPS", DefaultLogMaxBackups)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// MissingTokens returns the names of the required secrets that are not set.
func (c *AppConfig) MissingTokens() []string {
	var missing []string
	if c.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if !c.hasChatID {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	return missing
}

func intFromEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative, got %d", key, n)
	}
	return n, nil
}
