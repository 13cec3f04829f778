package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Capture pipeline
	Extraction ExtractionConfig
	Review     ReviewConfig

	// Collaborators
	Redis          RedisConfig
	Memos          MemosConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
	Breaker        BreakerConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
	MaxClients     int
}

type ExtractionConfig struct {
	Timeout       time.Duration
	MinConfidence float64
	MaxInputChars int
	CacheSize     int
	CacheTTL      time.Duration
	// Categories overrides the default category catalog when set.
	Categories []string
}

// Review store kinds.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type ReviewConfig struct {
	Store           string
	TTL             time.Duration
	MaxSessions     int
	ReminderMinutes []int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MemosConfig struct {
	URL         string
	AccessToken string
	ExternalURL string // URL for generating user-facing links (e.g., http://localhost:5230)
	Timeout     time.Duration
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
	// NgrokAPI is the local ngrok API used to discover the webhook URL in
	// development when WebhookURL is empty.
	NgrokAPI string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	// TokenPath is read only for OAuth desktop credentials.
	TokenPath  string
	CalendarID string
}

type BreakerConfig struct {
	FailureThreshold uint32
	Timeout          time.Duration
	Interval         time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Environment.Timezone = viper.GetString("environment.timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	// Capture pipeline
	cfg.Extraction.Timeout = viper.GetDuration("extraction.timeout")
	cfg.Extraction.MinConfidence = viper.GetFloat64("extraction.min_confidence")
	cfg.Extraction.MaxInputChars = viper.GetInt("extraction.max_input_chars")
	cfg.Extraction.CacheSize = viper.GetInt("extraction.cache_size")
	cfg.Extraction.CacheTTL = viper.GetDuration("extraction.cache_ttl")
	cfg.Extraction.Categories = splitList(viper.GetString("extraction.categories"))

	cfg.Review.Store = viper.GetString("review.store")
	cfg.Review.TTL = viper.GetDuration("review.ttl")
	cfg.Review.MaxSessions = viper.GetInt("review.max_sessions")
	minutes, err := parseMinutes(viper.GetString("review.reminder_minutes"))
	if err != nil {
		return nil, err
	}
	cfg.Review.ReminderMinutes = minutes

	// Collaborators
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	cfg.Memos.URL = viper.GetString("memos.url")
	cfg.Memos.AccessToken = viper.GetString("memos.access_token")
	cfg.Memos.ExternalURL = viper.GetString("memos.external_url")
	cfg.Memos.Timeout = viper.GetDuration("memos.timeout")
	// If external URL not set, default to internal URL
	if cfg.Memos.ExternalURL == "" {
		cfg.Memos.ExternalURL = cfg.Memos.URL
	}

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")

	cfg.Breaker.FailureThreshold = viper.GetUint32("breaker.failure_threshold")
	cfg.Breaker.Timeout = viper.GetDuration("breaker.timeout")
	cfg.Breaker.Interval = viper.GetDuration("breaker.interval")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.timezone", "UTC")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("rate_limit.max_clients", 1000)

	viper.SetDefault("extraction.timeout", "100ms")
	viper.SetDefault("extraction.min_confidence", 0.3)
	viper.SetDefault("extraction.max_input_chars", 10000)
	viper.SetDefault("extraction.cache_size", 0)
	viper.SetDefault("extraction.cache_ttl", "1m")

	viper.SetDefault("review.store", StoreMemory)
	viper.SetDefault("review.ttl", "24h")
	viper.SetDefault("review.max_sessions", 10000)
	viper.SetDefault("review.reminder_minutes", "30,10")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("memos.timeout", "10s")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("breaker.failure_threshold", 5)
	viper.SetDefault("breaker.timeout", "30s")
	viper.SetDefault("breaker.interval", "1m")
}

func (c *Config) validate() error {
	switch c.Review.Store {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("review.store must be %q or %q, got %q", StoreMemory, StoreRedis, c.Review.Store)
	}
	if c.Extraction.MinConfidence < 0 || c.Extraction.MinConfidence > 1 {
		return fmt.Errorf("extraction.min_confidence must be within [0,1], got %v", c.Extraction.MinConfidence)
	}
	if c.Extraction.Timeout <= 0 {
		return fmt.Errorf("extraction.timeout must be positive")
	}
	return nil
}

// splitList reads comma separated values, since viper does not split env
// values into slices.
func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseMinutes(raw string) ([]int, error) {
	var out []int
	for _, v := range splitList(raw) {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("review.reminder_minutes: invalid value %q", v)
		}
		out = append(out, n)
	}
	return out, nil
}
