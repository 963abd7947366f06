// Package config loads the optional YAML configuration file. Everything in
// it can also be given as command-line flags; flags win on conflict.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fidgetd/fidget/internal/event"
)

// KeyEvent is one periodic key press in the config file.
type KeyEvent struct {
	Key        string `yaml:"key"`
	IntervalMs uint64 `yaml:"interval_ms"`
}

// ButtonEvent is one periodic button click in the config file.
type ButtonEvent struct {
	Button     uint8  `yaml:"button"`
	IntervalMs uint64 `yaml:"interval_ms"`
}

// Config mirrors the YAML file layout.
type Config struct {
	Display string        `yaml:"display"`
	DelayMs *uint64       `yaml:"delay_ms"`
	Backend string        `yaml:"backend"`
	Keys    []KeyEvent    `yaml:"keys"`
	Buttons []ButtonEvent `yaml:"buttons"`
}

// Load reads and decodes the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DelayMs != nil {
		if _, err := event.IntervalFromMs(*cfg.DelayMs); err != nil {
			return nil, fmt.Errorf("parse config %s: delay_ms: %w", path, err)
		}
	}
	return &cfg, nil
}

// Specs validates the configured events and turns them into descriptors,
// buttons first, in file order.
func (c *Config) Specs() ([]event.Spec, error) {
	specs := make([]event.Spec, 0, len(c.Buttons)+len(c.Keys))
	for _, b := range c.Buttons {
		interval, err := event.IntervalFromMs(b.IntervalMs)
		if err != nil {
			return nil, err
		}
		spec, err := event.NewButton(b.Button, interval)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	for _, k := range c.Keys {
		interval, err := event.IntervalFromMs(k.IntervalMs)
		if err != nil {
			return nil, err
		}
		spec, err := event.NewKey(k.Key, interval)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Delay returns the configured startup delay, or fallback when the file does
// not set one.
func (c *Config) Delay(fallback time.Duration) time.Duration {
	if c.DelayMs == nil {
		return fallback
	}
	return time.Duration(*c.DelayMs) * time.Millisecond
}
