package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Env string

	// Valuation API
	Port          string
	MaxImageBytes int64

	// Pricing service, as seen by its clients
	PricingURL     string
	PricingAPIKey  string
	PricingTimeout time.Duration // zero means no timeout

	// Pricing service, as served
	PricingPort          string
	PricingHistoryAPIKey string

	// Database (pricing service history)
	DB DBConfig
}

// DBConfig selects and addresses the history database.
type DBConfig struct {
	Driver   string // "sqlite" or "postgres"
	Path     string // sqlite file
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the PostgreSQL connection string
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MigrationURL returns the postgres:// URL golang-migrate expects.
func (c DBConfig) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

const defaultMaxImageBytes = 10 << 20

var defaults = map[string]any{
	"ENV":                     "development",
	"PORT":                    "8080",
	"MAX_IMAGE_BYTES":         defaultMaxImageBytes,
	"PRICING_URL":             "http://localhost:8000",
	"PRICING_API_KEY":         "",
	"PRICING_TIMEOUT":         "0s",
	"PRICING_PORT":            "8000",
	"PRICING_HISTORY_API_KEY": "",
	"DB_DRIVER":               "sqlite",
	"DB_PATH":                 "database.db",
	"DB_HOST":                 "localhost",
	"DB_PORT":                 "5432",
	"DB_USER":                 "smartval",
	"DB_PASSWORD":             "smartval",
	"DB_NAME":                 "smartval",
	"DB_SSLMODE":              "disable",
}

// Load loads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	return FromViper(NewViper())
}

// NewViper returns a viper instance bound to the environment with defaults set.
// Command-line tools bind their flags onto it before calling FromViper.
func NewViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper reads and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:                  v.GetString("ENV"),
		Port:                 v.GetString("PORT"),
		PricingURL:           v.GetString("PRICING_URL"),
		PricingAPIKey:        v.GetString("PRICING_API_KEY"),
		PricingPort:          v.GetString("PRICING_PORT"),
		PricingHistoryAPIKey: v.GetString("PRICING_HISTORY_API_KEY"),
		DB: DBConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			Path:     v.GetString("DB_PATH"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
	}

	timeout, err := time.ParseDuration(v.GetString("PRICING_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRICING_TIMEOUT %q: %w", v.GetString("PRICING_TIMEOUT"), err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("PRICING_TIMEOUT must not be negative, got %v", timeout)
	}
	cfg.PricingTimeout = timeout

	maxImage := v.GetInt64("MAX_IMAGE_BYTES")
	if maxImage <= 0 {
		return nil, fmt.Errorf("MAX_IMAGE_BYTES must be positive, got %q", v.GetString("MAX_IMAGE_BYTES"))
	}
	cfg.MaxImageBytes = maxImage

	switch cfg.DB.Driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: must be sqlite or postgres", cfg.DB.Driver)
	}

	if strings.TrimSpace(cfg.PricingURL) == "" {
		return nil, fmt.Errorf("PRICING_URL is required")
	}

	return cfg, nil
}
