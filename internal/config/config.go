package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	// Environment name, "development" relaxes secret checks
	Environment string `env:"APP_ENV" envDefault:"development"`

	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// JWT configuration
	JWT JWTConfig

	// Automation webhook configuration
	Webhook WebhookConfig

	// Analytics configuration
	Analytics AnalyticsConfig

	// Google OAuth configuration
	GoogleOAuth GoogleOAuthConfig

	// CORS configuration
	CORS CORSConfig

	// Event publishing configuration
	Events EventsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host         string        `env:"DB_HOST" envDefault:"localhost"`
	Port         string        `env:"DB_PORT" envDefault:"5432"`
	User         string        `env:"DB_USER" envDefault:"postgres"`
	Password     string        `env:"DB_PASSWORD"`
	Name         string        `env:"DB_NAME" envDefault:"postgres"`
	SSLMode      string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxConns     int32         `env:"DB_MAX_CONNS" envDefault:"5"`
	MinConns     int32         `env:"DB_MIN_CONNS" envDefault:"0"`
	MaxLifetime  time.Duration `env:"DB_MAX_LIFETIME" envDefault:"1h"`
	ConnTimeout  time.Duration `env:"DB_CONN_TIMEOUT" envDefault:"10s"`
	QueryTimeout time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"30s"`
	// Use simple protocol when connecting through PgBouncer (transaction pooling)
	SimpleProtocol bool `env:"DB_SIMPLE_PROTOCOL" envDefault:"true"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret         string        `env:"JWT_SECRET" envDefault:"your-secret-key-change-in-production"`
	Issuer         string        `env:"JWT_ISSUER" envDefault:"fittrack-backend"`
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TTL" envDefault:"168h"` // 7 days
}

// WebhookConfig holds the automation webhook endpoints used for voice and chat
type WebhookConfig struct {
	VoiceURLs []string      `env:"WEBHOOK_VOICE_URLS" envSeparator:","`
	ChatURLs  []string      `env:"WEBHOOK_CHAT_URLS" envSeparator:","`
	Mode      string        `env:"WEBHOOK_VOICE_MODE" envDefault:"multipart"` // multipart | json
	Timeout   time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"30s"`
	// Shared secret expected on inbound exercise callbacks
	CallbackSecret string `env:"WEBHOOK_CALLBACK_SECRET"`
	MaxAudioBytes  int64  `env:"WEBHOOK_MAX_AUDIO_BYTES" envDefault:"26214400"` // 25 MiB
}

// AnalyticsConfig holds settings for the analytics reductions
type AnalyticsConfig struct {
	Timezone  string `env:"ANALYTICS_TIMEZONE" envDefault:"UTC"`
	FetchSize int    `env:"ANALYTICS_FETCH_SIZE" envDefault:"1000"`
}

// GoogleOAuthConfig holds Google OAuth configuration
type GoogleOAuthConfig struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string `env:"GOOGLE_REDIRECT_URL" envDefault:"http://localhost:8080/api/auth/google/callback"`
	FrontendURL  string `env:"GOOGLE_FRONTEND_CALLBACK_URL" envDefault:"http://localhost:5173/callback"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"*"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`
}

// EventsConfig holds Kafka publishing configuration
type EventsConfig struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_EXERCISE_TOPIC" envDefault:"exercise.recorded"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Parse reads the process environment into a Config without touching .env files
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}

	if !c.IsDevelopment() && (c.JWT.Secret == "" || c.JWT.Secret == defaultJWTSecret) {
		return fmt.Errorf("JWT_SECRET must be set outside development")
	}

	switch c.Webhook.Mode {
	case "multipart", "json":
	default:
		return fmt.Errorf("WEBHOOK_VOICE_MODE must be multipart or json, got %q", c.Webhook.Mode)
	}

	if _, err := time.LoadLocation(c.Analytics.Timezone); err != nil {
		return fmt.Errorf("ANALYTICS_TIMEZONE: %w", err)
	}
	if c.Analytics.FetchSize <= 0 {
		return fmt.Errorf("ANALYTICS_FETCH_SIZE must be positive")
	}

	if len(c.Webhook.VoiceURLs) == 0 {
		log.Println("Warning: WEBHOOK_VOICE_URLS not configured. Voice uploads will get the local fallback reply.")
	}
	if len(c.Webhook.ChatURLs) == 0 {
		log.Println("Warning: WEBHOOK_CHAT_URLS not configured. Chat will use local replies.")
	}
	if c.Webhook.CallbackSecret == "" {
		log.Println("Warning: WEBHOOK_CALLBACK_SECRET not configured. Exercise callbacks will be rejected.")
	}

	if !c.IsGoogleOAuthConfigured() {
		log.Println("Warning: Google OAuth credentials not configured. Google login will not work.")
	}

	return nil
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "" || c.Environment == "development"
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	query := fmt.Sprintf("sslmode=%s&connect_timeout=%d",
		url.QueryEscape(c.Database.SSLMode), int(c.Database.ConnTimeout.Seconds()))
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: query,
	}
	return u.String()
}

// Location returns the timezone used to bucket exercises into calendar days
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Analytics.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsGoogleOAuthConfigured checks if Google OAuth is properly configured
func (c *Config) IsGoogleOAuthConfigured() bool {
	return c.GoogleOAuth.ClientID != "" && c.GoogleOAuth.ClientSecret != ""
}

// IsEventsConfigured checks if Kafka brokers are configured
func (c *Config) IsEventsConfigured() bool {
	return len(c.Events.Brokers) > 0
}
