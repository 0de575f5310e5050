// Package config reads the server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is populated from environment variables, after any .env file has
// been loaded.
type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	DatabasePath string        `env:"DATABASE_PATH" envDefault:"data/portfolio.db"`
	ContentFile  string        `env:"CONTENT_FILE"`
	PageTTL      time.Duration `env:"PAGE_TTL" envDefault:"30m"`
	// PendingTTL applies to rendered pages whose browser never connected.
	PendingTTL time.Duration `env:"PAGE_PENDING_TTL" envDefault:"2m"`

	EmailJS EmailJS

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
}

// EmailJS holds the third-party email service identifiers.
type EmailJS struct {
	ServiceID  string        `env:"EMAILJS_SERVICE_ID"`
	TemplateID string        `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string        `env:"EMAILJS_PUBLIC_KEY"`
	PrivateKey string        `env:"EMAILJS_PRIVATE_KEY"`
	Endpoint   string        `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
	Timeout    time.Duration `env:"EMAIL_TIMEOUT" envDefault:"15s"`
}

// Load returns the Config for the process environment.
func Load() (Config, error) {
	return load(env.Options{})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PageTTL <= 0 {
		return Config{}, fmt.Errorf("PAGE_TTL must be positive, got %s", cfg.PageTTL)
	}
	if cfg.PendingTTL <= 0 {
		return Config{}, fmt.Errorf("PAGE_PENDING_TTL must be positive, got %s", cfg.PendingTTL)
	}
	return cfg, nil
}

// DefaultCredentials reports whether the admin login still uses the
// development defaults.
func (c Config) DefaultCredentials() bool {
	return c.AdminUsername == "admin" && c.AdminPassword == "admin123"
}
