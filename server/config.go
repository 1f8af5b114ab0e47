package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the serve command's settings. Zero values fall back to the
// defaults below, so a partial YAML file only overrides what it names.
type Config struct {
	ListenAddr  string `yaml:"listen_addr"`  // API address, default :8080
	MetricsAddr string `yaml:"metrics_addr"` // Prometheus address, "" disables the metrics listener
	LogLevel    string `yaml:"log_level"`    // logrus level name
	MaxRequests int    `yaml:"max_requests"` // cap on queue length per call, 0 = unlimited
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		ListenAddr:  ":8080",
		MetricsAddr: ":9090",
		LogLevel:    "info",
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultConfig().ListenAddr
	}
	if cfg.MaxRequests < 0 {
		return cfg, fmt.Errorf("config %s: max_requests must be >= 0", path)
	}
	return cfg, nil
}
