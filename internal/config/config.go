// Package config loads runtime configuration for the sunband binaries.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/litescript/sunband/internal/solar"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// EngineConfig carries the engine defaults a deployment may tune.
// The threshold stays a request parameter; this is only its default.
type EngineConfig struct {
	ThresholdDeg float64 `yaml:"thresholdDeg"`
	MonthsAhead  int     `yaml:"monthsAhead"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file and environment variables.
// The file named by SUNBAND_CONFIG is used when set, otherwise
// configs/config.yaml when present; environment variables win over both.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("SUNBAND_CONFIG"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Engine: EngineConfig{
			ThresholdDeg: solar.DefaultThresholdDeg,
			MonthsAhead:  4,
		},
		Log: LogConfig{Level: "info"},
	}
}

func hydrateFromFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SUNBAND_HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("SUNBAND_THRESHOLD_DEG"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.ThresholdDeg = f
		}
	}
	if v := os.Getenv("SUNBAND_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) validate() error {
	if c.HTTP.Address == "" {
		return fmt.Errorf("http.address must not be empty")
	}
	if c.Engine.ThresholdDeg <= 0 || c.Engine.ThresholdDeg >= 90 {
		return fmt.Errorf("engine.thresholdDeg = %v, must be in (0, 90)", c.Engine.ThresholdDeg)
	}
	if c.Engine.MonthsAhead < 0 || c.Engine.MonthsAhead > 12 {
		return fmt.Errorf("engine.monthsAhead = %d, must be 0..12", c.Engine.MonthsAhead)
	}
	return nil
}
