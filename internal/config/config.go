// config.go
//
// Paint store inventory and point-of-sale service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of paintstore.
// paintstore is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// paintstore is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with paintstore.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port             string `envconfig:"PORT" default:"5000"`
	CORSAllowOrigins string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,app://-,app://.,app://,file://"`

	// Database configuration
	DBType            string        `envconfig:"DB_TYPE" default:"sqlite"` // sqlite, sqlite3, mysql, postgres, sqlserver
	DBPath            string        `envconfig:"DB_PATH" default:"inventory.db"`
	DBHost            string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort            string        `envconfig:"DB_PORT"`
	DBDatabase        string        `envconfig:"DB_DATABASE"`
	DBUser            string        `envconfig:"DB_USER"`
	DBPassword        string        `envconfig:"DB_PASSWORD"`
	DBConnectionLimit int           `envconfig:"DB_CONNECTION_LIMIT" default:"5"`
	DBBusyTimeout     time.Duration `envconfig:"DB_BUSY_TIMEOUT" default:"30s"`
	DBLogLevel        string        `envconfig:"DB_LOG_LEVEL" default:"warn"`

	// Auth configuration
	JWTSecret     string        `envconfig:"JWT_SECRET"`
	TokenTTL      time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	AdminUsername string        `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string        `envconfig:"ADMIN_PASSWORD"`

	// Presentation and logging
	DisplayTimezone string `envconfig:"DISPLAY_TIMEZONE" default:"Africa/Nairobi"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string `envconfig:"LOG_FORMAT" default:"text"`

	SeedDefaults bool `envconfig:"SEED_DEFAULTS" default:"true"`

	// Location is resolved from DisplayTimezone by Load
	Location *time.Location `ignored:"true"`
}

// Load loads configuration from an optional .env file and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required fields and resolves derived values
func (cfg *Config) Validate() error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}

	switch cfg.DBType {
	case "sqlite", "sqlite3":
		if cfg.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for %s", cfg.DBType)
		}
	case "mysql", "mariadb", "postgres", "postgresql", "sqlserver", "mssql":
		if cfg.DBDatabase == "" {
			return fmt.Errorf("DB_DATABASE is required for %s", cfg.DBType)
		}
	default:
		return fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	if web, _ := cfg.SplitOrigins(); len(web) == 0 {
		return fmt.Errorf("CORS_ALLOW_ORIGINS needs at least one http or https origin")
	}

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", cfg.DisplayTimezone, err)
	}
	cfg.Location = loc

	return nil
}

// IsSQLite reports whether the store is a local SQLite file
func (cfg *Config) IsSQLite() bool {
	return cfg.DBType == "sqlite" || cfg.DBType == "sqlite3"
}

// AllowedOrigins returns the CORS allow-list as a slice
func (cfg *Config) AllowedOrigins() []string {
	parts := strings.Split(cfg.CORSAllowOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// SplitOrigins separates http(s) origins from desktop-shell origins such as app:// and file://
func (cfg *Config) SplitOrigins() (web, other []string) {
	for _, origin := range cfg.AllowedOrigins() {
		lower := strings.ToLower(origin)
		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
			web = append(web, origin)
		} else {
			other = append(other, origin)
		}
	}
	return web, other
}
