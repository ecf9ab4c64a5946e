// Package config loads server settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Addr               string   `yaml:"addr"`
	LogLevel           string   `yaml:"log_level"`
	RequestTimeout     Duration `yaml:"request_timeout"`
	ShutdownTimeout    Duration `yaml:"shutdown_timeout"`
	MaxRequestBodySize int64    `yaml:"max_request_body_size"`
}

func Default() Config {
	return Config{
		Addr:               ":8080",
		LogLevel:           "info",
		RequestTimeout:     Duration(30 * time.Second),
		ShutdownTimeout:    Duration(10 * time.Second),
		MaxRequestBodySize: 1 << 20, // 1MB
	}
}

// Load builds the effective configuration: defaults, then the YAML file named
// by SPARKY_CONFIG (if any), then SPARKY_* environment overrides. A missing
// file is an error only when SPARKY_CONFIG explicitly names it.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("SPARKY_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.Addr = getEnv("SPARKY_ADDR", cfg.Addr)
	cfg.LogLevel = getEnv("SPARKY_LOG_LEVEL", cfg.LogLevel)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
