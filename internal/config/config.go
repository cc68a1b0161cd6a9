package config

import (
	"fmt"
	"os"
	"path/filepath"

	"lrukv/pkg/errors"

	"gopkg.in/yaml.v3"
)

// FileName is the config file NewConfig looks for in its directory.
const FileName = "config.yaml"

const (
	DefaultCapacity = 1024
	DefaultShards   = 16
	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"
)

type Config struct {
	// Total number of entries across all shards
	Capacity int `yaml:"capacity"`
	// Number of independently locked cache instances
	Shards int `yaml:"shards"`

	// HTTP listen address
	Addr string `yaml:"addr"`

	// Logger Config
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Capacity: DefaultCapacity,
		Shards:   DefaultShards,
		Addr:     DefaultAddr,
		LogLevel: DefaultLogLevel,
	}
}

// NewConfig loads dir/config.yaml, or returns the defaults when the file does
// not exist.
func NewConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return FromFile(path)
}

// FromFile reads a YAML config. Fields missing from the file keep their
// default values.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	conf := DefaultConfig()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("%w: capacity %d: %w", errors.ErrInvalidConfig, c.Capacity, errors.ErrInvalidCapacity)
	}
	if c.Shards < 1 {
		return fmt.Errorf("%w: shards %d: %w", errors.ErrInvalidConfig, c.Shards, errors.ErrInvalidShardCount)
	}
	if c.Addr == "" {
		return fmt.Errorf("%w: empty addr", errors.ErrInvalidConfig)
	}
	return nil
}
