// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultAdminPassword is the gate password the site shipped with.
// Override it with BMBUZZ_ADMIN_PASSWORD in any real deployment.
const DefaultAdminPassword = "bmbuzz2025"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"BMBUZZ_DB_PATH" envDefault:"./data/bmbuzz.db"`
	SessionSecret string `env:"BMBUZZ_SESSION_SECRET,required"`
	AdminPassword string `env:"BMBUZZ_ADMIN_PASSWORD"`
	ServerHost    string `env:"BMBUZZ_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"BMBUZZ_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"BMBUZZ_ENV" envDefault:"development"`
	LogLevel      string `env:"BMBUZZ_LOG_LEVEL" envDefault:"info"`
	UploadsDir    string `env:"BMBUZZ_UPLOADS_DIR" envDefault:"./uploads"`

	// BaseURL is the public URL prefix for uploaded objects,
	// e.g. https://bmbuzz.example.com. Empty means relative URLs.
	BaseURL string `env:"BMBUZZ_BASE_URL"`

	// DoSeed enables demo post seeding on startup.
	DoSeed bool `env:"BMBUZZ_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("BMBUZZ_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	if cfg.AdminPassword == "" {
		cfg.AdminPassword = DefaultAdminPassword
	}

	return cfg, nil
}
