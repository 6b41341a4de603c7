package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Generation GenerationConfig
	AssemblyAI AssemblyAIConfig
	Redis      RedisConfig
	Analytics  AnalyticsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"5000"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"15m"`
	RateLimitMax    int           `envconfig:"RATE_LIMIT_MAX" default:"100"`
	MaxUploadBytes  int64         `envconfig:"MAX_UPLOAD_BYTES" default:"52428800"`
}

// GenerationConfig holds the text-generation (Groq) client configuration
type GenerationConfig struct {
	APIKey     string        `envconfig:"GROQ_API_KEY"`
	BaseURL    string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model      string        `envconfig:"GENERATION_MODEL" default:"llama-3.1-8b-instant"`
	Timeout    time.Duration `envconfig:"GENERATION_TIMEOUT" default:"30s"`
	MaxRetries uint64        `envconfig:"GENERATION_MAX_RETRIES" default:"3"`
}

// AssemblyAIConfig holds the transcription client configuration
type AssemblyAIConfig struct {
	APIKey  string `envconfig:"ASSEMBLYAI_API_KEY"`
	BaseURL string `envconfig:"ASSEMBLYAI_API_URL"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// AnalyticsConfig selects where meeting counters live
type AnalyticsConfig struct {
	Backend   string `envconfig:"ANALYTICS_BACKEND" default:"memory"`
	KeyPrefix string `envconfig:"ANALYTICS_KEY_PREFIX" default:"meeting-summarizer:analytics"`
}

// Analytics backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

var environments = map[string]bool{
	"development": true,
	"test":        true,
	"staging":     true,
	"production":  true,
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}
	return FromEnv()
}

// FromEnv reads the process environment only, without touching .env files.
func FromEnv() (*Config, error) {
	config := &Config{}
	sections := []struct {
		name   string
		target any
	}{
		{"server", &config.Server},
		{"generation", &config.Generation},
		{"assemblyai", &config.AssemblyAI},
		{"redis", &config.Redis},
		{"analytics", &config.Analytics},
	}
	for _, s := range sections {
		if err := envconfig.Process("", s.target); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !environments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of development, test, staging, production (got %q)", c.Server.Environment)
	}
	if c.Server.RateLimitMax <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive")
	}
	if c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Generation.Timeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must be positive")
	}
	switch c.Analytics.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("ANALYTICS_BACKEND must be %q or %q (got %q)", BackendMemory, BackendRedis, c.Analytics.Backend)
	}
	return nil
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// RatePerSecond converts RATE_LIMIT_MAX per RATE_LIMIT_WINDOW into a steady rate
func (c ServerConfig) RatePerSecond() float64 {
	return float64(c.RateLimitMax) / c.RateLimitWindow.Seconds()
}

// Origins returns the trimmed, non-empty CORS origins
func (c ServerConfig) Origins() []string {
	origins := make([]string, 0, len(c.AllowedOrigins))
	for _, o := range c.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
