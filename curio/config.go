package curio

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

type Config struct {
	Log      LogConfig      `toml:"log"`
	DB       DBConfig       `toml:"db"`
	Web      WebConfig      `toml:"web"`
	Spaces   SpacesConfig   `toml:"spaces"`
	Metadata MetadataConfig `toml:"metadata"`
	Eshop    EshopConfig    `toml:"eshop"`
	Pricing  PricingConfig  `toml:"pricing"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	AddSource bool       `toml:"add_source"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

type WebConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type SpacesConfig struct {
	Enabled bool   `toml:"enabled"`
	Key     string `toml:"key"`
	Secret  string `toml:"secret"`
	Region  string `toml:"region"`
	Bucket  string `toml:"bucket"`
}

type MetadataConfig struct {
	BaseURL  string `toml:"base_url"`
	APIKey   string `toml:"api_key"`
	TTLHours int    `toml:"ttl_hours"`
}

type EshopConfig struct {
	SearchURL string `toml:"search_url"`
	PriceURL  string `toml:"price_url"`
}

type PricingConfig struct {
	Platform      string `toml:"platform"`
	IntervalHours int    `toml:"interval_hours"`
	ThrottleMS    int    `toml:"throttle_ms"`
	RunOnStart    bool   `toml:"run_on_start"`
}

func (c *Config) applyDefaults() {
	if c.Metadata.TTLHours == 0 {
		c.Metadata.TTLHours = 12
	}
	if c.Pricing.IntervalHours == 0 {
		c.Pricing.IntervalHours = 6
	}
	if c.Pricing.ThrottleMS == 0 {
		c.Pricing.ThrottleMS = 1500
	}
	if c.Pricing.Platform == "" {
		c.Pricing.Platform = "switch"
	}
	if c.Web.Port == 0 {
		c.Web.Port = 8090
	}
}

func (p PricingConfig) Interval() time.Duration {
	return time.Duration(p.IntervalHours) * time.Hour
}

func (p PricingConfig) Throttle() time.Duration {
	return time.Duration(p.ThrottleMS) * time.Millisecond
}

func (m MetadataConfig) TTL() time.Duration {
	return time.Duration(m.TTLHours) * time.Hour
}
