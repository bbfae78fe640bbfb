// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/motherproperties/website-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	// TrustedProxies is a list of CIDR ranges or IPs of trusted reverse proxies.
	// If empty, X-Forwarded-For headers are ignored entirely (safe default).
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES" yaml:"trusted_proxies"`
}

// EmailConfig holds configuration for sending notification emails.
// OperatorAddress is the fixed recipient of inquiry and catalogue alerts.
type EmailConfig struct {
	FromAddress        string `mapstructure:"FROM_ADDRESS" yaml:"from_address"`
	FromName           string `mapstructure:"FROM_NAME" yaml:"from_name"`
	OperatorAddress    string `mapstructure:"OPERATOR_ADDRESS" yaml:"operator_address"`
	ResendAPIKey       string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
	SendTimeoutSeconds int    `mapstructure:"SEND_TIMEOUT_SECONDS" yaml:"send_timeout_seconds"`
}

// RedisConfig holds Redis connection details for the intake rate limiter.
type RedisConfig struct {
	Address  string `mapstructure:"ADDRESS" yaml:"address"`
	Password string `mapstructure:"PASSWORD" yaml:"password"`
	DB       int    `mapstructure:"DB" yaml:"db"`
	UseTLS   bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
}

// RateLimitConfig holds configuration for rate limiting the intake endpoints.
type RateLimitConfig struct {
	// Maximum form submissions per window per client IP
	IntakeRequestsPerMinute int `mapstructure:"INTAKE_REQUESTS_PER_MINUTE" yaml:"intake_requests_per_minute"`
	// Window duration in seconds for rate limiting
	WindowSeconds int `mapstructure:"WINDOW_SECONDS" yaml:"window_seconds"`
}

// SiteConfig holds site-level settings referenced by notification
// templates and the catalogue flow.
type SiteConfig struct {
	// BaseURL is the public URL of the marketing site, used for links in
	// confirmation emails.
	BaseURL string `mapstructure:"BASE_URL" yaml:"base_url"`
	// CataloguePath is the site-relative path of the catalogue document
	// the client downloads after a successful registration.
	CataloguePath string `mapstructure:"CATALOGUE_PATH" yaml:"catalogue_path"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server    ServerConfig    `mapstructure:"SERVER" yaml:"server"`
	Email     EmailConfig     `mapstructure:"EMAIL" yaml:"email"`
	Redis     RedisConfig     `mapstructure:"REDIS" yaml:"redis"`
	RateLimit RateLimitConfig `mapstructure:"RATE_LIMIT" yaml:"rate_limit"`
	Site      SiteConfig      `mapstructure:"SITE" yaml:"site"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.TRUSTED_PROXIES", []string{}) // Empty = trust no one (safe default)
	v.SetDefault("EMAIL.FROM_ADDRESS", "onboarding@resend.dev")
	v.SetDefault("EMAIL.FROM_NAME", "Mother Properties")
	v.SetDefault("EMAIL.OPERATOR_ADDRESS", "motherpropertiesblr@gmail.com")
	v.SetDefault("EMAIL.SEND_TIMEOUT_SECONDS", 10)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.USE_TLS", false)
	v.SetDefault("RATE_LIMIT.INTAKE_REQUESTS_PER_MINUTE", 10)
	v.SetDefault("RATE_LIMIT.WINDOW_SECONDS", 60)
	v.SetDefault("SITE.BASE_URL", "https://www.motherproperties.net")
	v.SetDefault("SITE.CATALOGUE_PATH", "/images/Coffee_Prince_Catalog_Mother_Properties.pdf")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind environment variables
	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.TRUSTED_PROXIES", "TRUSTED_PROXIES"},
		// Email config
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
		{"EMAIL.OPERATOR_ADDRESS", "EMAIL_OPERATOR_ADDRESS"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"EMAIL.SEND_TIMEOUT_SECONDS", "EMAIL_SEND_TIMEOUT_SECONDS"},
		// Redis config
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		// Rate limit config
		{"RATE_LIMIT.INTAKE_REQUESTS_PER_MINUTE", "RATE_LIMIT_INTAKE_REQUESTS_PER_MINUTE"},
		{"RATE_LIMIT.WINDOW_SECONDS", "RATE_LIMIT_WINDOW_SECONDS"},
		// Site config
		{"SITE.BASE_URL", "SITE_BASE_URL"},
		{"SITE.CATALOGUE_PATH", "SITE_CATALOGUE_PATH"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", v.GetString("SERVER.ENVIRONMENT"),
		"server_port", v.GetString("SERVER.PORT"),
		"allowed_origins", v.GetString("SERVER.ALLOWED_ORIGINS"),
		"trusted_proxies", v.GetStringSlice("SERVER.TRUSTED_PROXIES"),
		"operator_address", logger.MaskEmail(v.GetString("EMAIL.OPERATOR_ADDRESS")),
		"rate_limit_per_minute", v.GetInt("RATE_LIMIT.INTAKE_REQUESTS_PER_MINUTE"),
	)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration validated successfully")
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	// Validate AllowedOrigins format if not wildcard
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	if cfg.Email.OperatorAddress == "" {
		return fmt.Errorf("operator email address is required")
	}
	if !strings.Contains(cfg.Email.OperatorAddress, "@") {
		return fmt.Errorf("invalid operator email address '%s'", cfg.Email.OperatorAddress)
	}

	// A missing Resend credential surfaces as a dispatch failure at first
	// use, not a startup failure. Warn so it is visible in logs.
	if cfg.Email.ResendAPIKey == "" {
		log.Warnw("RESEND_API_KEY is not set; notification dispatch will fail until it is provided")
	}

	if cfg.Email.SendTimeoutSeconds <= 0 {
		return fmt.Errorf("email send timeout must be positive, got %d", cfg.Email.SendTimeoutSeconds)
	}

	if cfg.RateLimit.IntakeRequestsPerMinute <= 0 {
		return fmt.Errorf("intake rate limit must be positive, got %d", cfg.RateLimit.IntakeRequestsPerMinute)
	}
	if cfg.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate limit window must be positive, got %d", cfg.RateLimit.WindowSeconds)
	}

	if cfg.Site.BaseURL != "" {
		if _, err := url.ParseRequestURI(cfg.Site.BaseURL); err != nil {
			return fmt.Errorf("invalid site base URL '%s': %w", cfg.Site.BaseURL, err)
		}
	}
	if !strings.HasPrefix(cfg.Site.CataloguePath, "/") {
		return fmt.Errorf("catalogue path must be site-relative, got '%s'", cfg.Site.CataloguePath)
	}

	return nil
}

// containsWildcard reports whether the origin list allows any origin.
func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
