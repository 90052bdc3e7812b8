// Package config loads optional layout and timing overrides from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. SCREADER_CHAT_GAP
const Prefix = "SCREADER"

// Config holds window geometry, loop timing and message layout settings.
// Every field has a default so an empty environment reproduces the stock layout.
type Config struct {
	ConfigX      int `envconfig:"CONFIG_X" default:"0"`
	ConfigY      int `envconfig:"CONFIG_Y" default:"0"`
	ConfigWidth  int `envconfig:"CONFIG_WIDTH" default:"800"`
	ConfigHeight int `envconfig:"CONFIG_HEIGHT" default:"320"`

	ChatWidth  int `envconfig:"CHAT_WIDTH" default:"600"`
	ChatHeight int `envconfig:"CHAT_HEIGHT" default:"400"`
	// ChatGap is the horizontal distance between the config window's right edge and the chat window
	ChatGap int `envconfig:"CHAT_GAP" default:"20"`

	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"16ms"`

	// Message row layout, in device independent pixels
	MetaWidth    float32 `envconfig:"META_WIDTH" default:"151"`
	UsernameWrap float32 `envconfig:"USERNAME_WRAP" default:"151"`
	ContentWrap  float32 `envconfig:"CONTENT_WRAP" default:"454"`
	RowHeight    float32 `envconfig:"ROW_HEIGHT" default:"76"`
}

// Load reads the configuration from SCREADER_* environment variables
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects sizes and intervals that cannot produce a usable window
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"CONFIG_WIDTH", float64(c.ConfigWidth)},
		{"CONFIG_HEIGHT", float64(c.ConfigHeight)},
		{"CHAT_WIDTH", float64(c.ChatWidth)},
		{"CHAT_HEIGHT", float64(c.ChatHeight)},
		{"POLL_INTERVAL", float64(c.PollInterval)},
		{"META_WIDTH", float64(c.MetaWidth)},
		{"USERNAME_WRAP", float64(c.UsernameWrap)},
		{"CONTENT_WRAP", float64(c.ContentWrap)},
		{"ROW_HEIGHT", float64(c.RowHeight)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("invalid %s_%s: must be positive", Prefix, p.name)
		}
	}
	if c.ChatGap < 0 {
		return fmt.Errorf("invalid %s_CHAT_GAP: must not be negative", Prefix)
	}
	if c.UsernameWrap > c.MetaWidth {
		return fmt.Errorf("invalid %s_USERNAME_WRAP: exceeds META_WIDTH", Prefix)
	}
	return nil
}
