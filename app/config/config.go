package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when no --config flag is given.
const DefaultConfigPath = "results.yaml"

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Logging       LoggingConfig       `yaml:"logging"`
	Notifications NotificationsConfig `yaml:"notifications"`
	// Seed loads the demo students, sections and results on start.
	Seed bool `yaml:"seed"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	CORS bool   `yaml:"cors"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

type NotificationsConfig struct {
	TTL           string `yaml:"ttl"`
	SweepInterval string `yaml:"sweep_interval"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
			CORS: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Notifications: NotificationsConfig{
			TTL:           "3s",
			SweepInterval: "1s",
		},
		Seed: true,
	}
}

// Load reads the YAML file at path over the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("RESULTS_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if level := os.Getenv("RESULTS_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if seed := os.Getenv("RESULTS_SEED"); seed != "" {
		if v, err := strconv.ParseBool(seed); err == nil {
			c.Seed = v
		}
	}
	if ttl := os.Getenv("RESULTS_NOTIFICATION_TTL"); ttl != "" {
		c.Notifications.TTL = ttl
	}
}

// Validate checks values that cannot be checked by YAML decoding alone.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	if _, err := c.Notifications.TTLDuration(); err != nil {
		return err
	}
	if _, err := c.Notifications.SweepDuration(); err != nil {
		return err
	}
	return nil
}

// TTLDuration parses the notification lifetime.
func (n NotificationsConfig) TTLDuration() (time.Duration, error) {
	return parsePositiveDuration("notifications.ttl", n.TTL)
}

// SweepDuration parses how often expired notifications are pruned.
func (n NotificationsConfig) SweepDuration() (time.Duration, error) {
	return parsePositiveDuration("notifications.sweep_interval", n.SweepInterval)
}

func parsePositiveDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, value)
	}
	return d, nil
}
