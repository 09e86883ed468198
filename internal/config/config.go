// Package config loads service settings. Environment variables
// (DASHBOARD_ prefix) override config.yaml, which overrides the defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultDatasetURL is the published, pre-cleaned e-commerce dataset.
const DefaultDatasetURL = "https://raw.githubusercontent.com/tinashdj/E-Commerce-Public/main/dashboard/ecommerce.csv"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Dataset   DatasetConfig   `mapstructure:"dataset"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Auth      AuthConfig      `mapstructure:"auth"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// TrustProxy takes client addresses from forwarding headers.
	TrustProxy bool `mapstructure:"trust_proxy"`
}

type DatasetConfig struct {
	// Source is "csv" or "postgres".
	Source   string `mapstructure:"source"`
	Location string `mapstructure:"location"`
	Table    string `mapstructure:"table"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	StrikeThreshold   int           `mapstructure:"strike_threshold"`
	StrikeWindow      time.Duration `mapstructure:"strike_window"`
	BanDuration       time.Duration `mapstructure:"ban_duration"`
}

type AuthConfig struct {
	JWTSecret         string        `mapstructure:"jwt_secret"`
	AdminUser         string        `mapstructure:"admin_user"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.trust_proxy", false)
	v.SetDefault("dataset.source", "csv")
	v.SetDefault("dataset.location", DefaultDatasetURL)
	v.SetDefault("dataset.table", "order_items")
	v.SetDefault("database.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("rate_limit.requests_per_second", 5.0)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("rate_limit.strike_threshold", 20)
	v.SetDefault("rate_limit.strike_window", "1m")
	v.SetDefault("rate_limit.ban_duration", "15m")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.admin_user", "admin")
	v.SetDefault("auth.admin_password_hash", "")
	v.SetDefault("auth.token_ttl", "15m")
}

// Load reads configuration. paths are searched for config.yaml; a missing
// file is not an error.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database.url", "DASHBOARD_DATABASE_URL", "DATABASE_URL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Dataset.Source {
	case "csv":
		if c.Dataset.Location == "" {
			return errors.New("dataset.location is required for the csv source")
		}
	case "postgres":
		if c.Database.URL == "" {
			return errors.New("database.url (or DATABASE_URL) is required for the postgres source")
		}
	default:
		return fmt.Errorf("unknown dataset.source %q", c.Dataset.Source)
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("rate_limit.requests_per_second and rate_limit.burst must be positive")
	}
	return nil
}

// AdminEnabled reports whether the admin endpoints can issue tokens.
func (c Config) AdminEnabled() bool {
	return c.Auth.JWTSecret != "" && c.Auth.AdminPasswordHash != ""
}
