// Package config loads the bot's configuration from the environment.
// A .env file in the working directory is read first if present.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name
const Prefix = "KITS"

// Catalog backends
const (
	CatalogBackendRedis = "redis"
	CatalogBackendFile  = "file"
)

// Config holds all configuration values for the bot
type Config struct {
	Redis   RedisConfig
	Catalog CatalogConfig
	Kit     KitConfig
	Discord DiscordConfig
	MQTT    MQTTConfig
	Log     LogConfig
}

type RedisConfig struct {
	Addr     string `split_words:"true" default:"localhost:6379"`
	Password string `split_words:"true"`
	DB       int    `split_words:"true" default:"0"`
}

type CatalogConfig struct {
	// Backend is "redis" or "file"
	Backend string `split_words:"true" default:"redis"`
	Path    string `split_words:"true" default:"kits.hujson"`
}

// KitConfig holds the redemption policy switches
type KitConfig struct {
	MustGetAll        bool `split_words:"true" default:"false"`
	ProcessTokens     bool `split_words:"true" default:"false"`
	AutoRedeemEnabled bool `split_words:"true" default:"false"`
	LogAutoRedeem     bool `split_words:"true" default:"false"`
	InventorySize     int  `split_words:"true" default:"36"`
}

type DiscordConfig struct {
	Token         string `split_words:"true"`
	ApplicationID string `split_words:"true"`
	GuildID       string `split_words:"true"`

	// AnnounceChannelID receives the output of the say console command
	AnnounceChannelID string `split_words:"true"`
}

type MQTTConfig struct {
	// Broker is left empty to disable notifications
	Broker         string        `split_words:"true"`
	ClientID       string        `split_words:"true" default:"kits-bot"`
	Username       string        `split_words:"true"`
	Password       string        `split_words:"true"`
	TopicPrefix    string        `split_words:"true" default:"kits"`
	ConnectTimeout time.Duration `split_words:"true" default:"10s"`
}

type LogConfig struct {
	Level  string `split_words:"true" default:"info"`
	Format string `split_words:"true" default:"text"`
}

// Load reads .env (if any) and the environment into a Config
func Load() (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv reads the current environment into a Config without touching .env
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values envconfig cannot express
func (c *Config) Validate() error {
	switch c.Catalog.Backend {
	case CatalogBackendRedis, CatalogBackendFile:
	default:
		return fmt.Errorf("unknown catalog backend %q", c.Catalog.Backend)
	}

	if c.Catalog.Backend == CatalogBackendFile && c.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required for the file backend")
	}

	if c.Kit.InventorySize <= 0 {
		return fmt.Errorf("inventory size must be positive, got %d", c.Kit.InventorySize)
	}

	return nil
}
