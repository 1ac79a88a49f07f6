package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the API and its tools.
type Config struct {
	Port     string         `yaml:"port"`
	LogLevel string         `yaml:"log_level"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	NATS     NATSConfig     `yaml:"nats"`
	Wheel    WheelConfig    `yaml:"wheel"`
	Archive  ArchiveConfig  `yaml:"archive"`
	CORS     CORSConfig     `yaml:"cors"`
}

type DatabaseConfig struct {
	URL              string        `yaml:"url"`
	Host             string        `yaml:"host"`
	Port             string        `yaml:"port"`
	User             string        `yaml:"user"`
	Password         string        `yaml:"password"`
	Name             string        `yaml:"name"`
	SSLMode          string        `yaml:"sslmode"`
	AutoMigrate      bool          `yaml:"auto_migrate"`
	StatementTimeout time.Duration `yaml:"statement_timeout"`
}

type JWTConfig struct {
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

type WheelConfig struct {
	Timezone string `yaml:"timezone"`
}

type ArchiveConfig struct {
	Schedule string `yaml:"schedule"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

// Default returns the configuration used when no file or variable overrides a value.
func Default() *Config {
	return &Config{
		Port:     "8080",
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:             "localhost",
			Port:             "5432",
			User:             "postgres",
			Name:             "realtaker",
			SSLMode:          "disable",
			StatementTimeout: 10 * time.Second,
		},
		JWT:     JWTConfig{TTL: 24 * time.Hour},
		NATS:    NATSConfig{Subject: "realtaker.events"},
		Wheel:   WheelConfig{Timezone: "UTC"},
		Archive: ArchiveConfig{Schedule: "0 0 3 * * *"},
	}
}

// Load reads the YAML file at path when it exists, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.Database.URL, "DATABASE_URL")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.NATS.URL, "NATS_URL")
	setString(&cfg.NATS.Subject, "NATS_SUBJECT")
	setString(&cfg.Wheel.Timezone, "WHEEL_TIMEZONE")
	setString(&cfg.Archive.Schedule, "ARCHIVE_SCHEDULE")

	if v := os.Getenv("AUTO_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid AUTO_MIGRATE %q: %w", v, err)
		}
		cfg.Database.AutoMigrate = b
	}
	if v := os.Getenv("DB_STATEMENT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid DB_STATEMENT_TIMEOUT %q: %w", v, err)
		}
		cfg.Database.StatementTimeout = d
	}
	if v := os.Getenv("JWT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid JWT_TTL %q: %w", v, err)
		}
		cfg.JWT.TTL = d
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORS.Origins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORS.Origins = append(cfg.CORS.Origins, origin)
			}
		}
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DSN returns the Postgres connection string, preferring DATABASE_URL.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// WheelLocation resolves the timezone used to bucket draws per calendar day.
func (c *Config) WheelLocation() (*time.Location, error) {
	if c.Wheel.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Wheel.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid wheel timezone %q: %w", c.Wheel.Timezone, err)
	}
	return loc, nil
}
