package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Remote-backend settings are optional: when MONGO_URI is empty the panel
// runs mock-only and every remote-mode request is rejected as unavailable.
type Config struct {
	// Server
	Port          int    `mapstructure:"PORT"`
	Env           string `mapstructure:"APP_ENV"` // development | production
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`

	// Remote document backend (optional)
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Redis — data-mode persistence, onboarding drafts, job queues
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// SMTP (confirmation emails)
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Workers
	WorkerPoolSize int `mapstructure:"WORKER_POOL_SIZE"`

	// Reports
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
// It never fails on absent values: missing remote settings simply disable the
// remote backend.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8000")
	viper.SetDefault("MONGO_DATABASE", "restopanel")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("WORKER_POOL_SIZE", 3)
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/restopanel/pdfs")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	log.Info().
		Str("env", cfg.Env).
		Bool("remote_backend", cfg.IsRemoteEnabled()).
		Msg("configuration loaded")

	return cfg, nil
}

func (c *Config) IsDevelopment() bool { return c.Env != "production" }
func (c *Config) IsProduction() bool  { return c.Env == "production" }

// IsRemoteEnabled reports whether the remote document backend is configured.
// Absence degrades gracefully to mock-only operation.
func (c *Config) IsRemoteEnabled() bool { return c.MongoURI != "" }
