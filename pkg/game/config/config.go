// Package config holds the game's tunable values. All gameplay constants
// (trail length, loot odds, camera smoothing) live here rather than as
// literals so they can be overridden from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full set of tunables for a session.
type Config struct {
	// MemoryLimit is the maximum number of cells kept in the trail.
	MemoryLimit int `yaml:"memory_limit"`

	// BackpackCapacity is the total item count the backpack can hold.
	BackpackCapacity int `yaml:"backpack_capacity"`

	// BufferTiles is the margin of cells added around the trail's bounding
	// box when fitting the viewport.
	BufferTiles int `yaml:"buffer_tiles"`

	// PanSmoothing is the camera's exponential smoothing factor in [0,1).
	// Higher values pan more slowly.
	PanSmoothing float64 `yaml:"pan_smoothing"`

	// MoveCooldown is the minimum wall-clock time between accepted moves.
	MoveCooldownSeconds float64 `yaml:"move_cooldown_seconds"`

	// MessageSeconds is how long an action message stays on the HUD.
	MessageSeconds float64 `yaml:"message_seconds"`

	// DefaultMaxLoot replaces an unparseable max_loot on a room template.
	DefaultMaxLoot int `yaml:"default_max_loot"`

	// LootUpperCap bounds the number of loot draws per room regardless of
	// the template's max_loot.
	LootUpperCap int `yaml:"loot_upper_cap"`

	// RarityCommon and RarityUncommon give the tier roll split: tier 0 with
	// probability RarityCommon, tier 1 with RarityUncommon, tier 2 with the
	// remainder.
	RarityCommon   float64 `yaml:"rarity_common"`
	RarityUncommon float64 `yaml:"rarity_uncommon"`

	// SearchChance and SearchPlusChance are the find probabilities of the
	// "search" and "search+" room actions.
	SearchChance     float64 `yaml:"search_chance"`
	SearchPlusChance float64 `yaml:"search_plus_chance"`

	// Window geometry. HUDWidth is reserved on the right for the side panel
	// and subtracted from the display width before viewport fitting.
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	HUDWidth     int `yaml:"hud_width"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		MemoryLimit:         12,
		BackpackCapacity:    20,
		BufferTiles:         1,
		PanSmoothing:        0.85,
		MoveCooldownSeconds: 0.15,
		MessageSeconds:      3.0,
		DefaultMaxLoot:      3,
		LootUpperCap:        5,
		RarityCommon:        0.60,
		RarityUncommon:      0.25,
		SearchChance:        0.30,
		SearchPlusChance:    0.50,
		ScreenWidth:         800,
		ScreenHeight:        600,
		HUDWidth:            200,
	}
}

// Load returns the default configuration overlaid with values from the given
// YAML file. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MemoryLimit < 1 {
		return fmt.Errorf("memory_limit must be at least 1, got %d", c.MemoryLimit)
	}
	if c.BackpackCapacity < 0 {
		return fmt.Errorf("backpack_capacity must not be negative, got %d", c.BackpackCapacity)
	}
	if c.PanSmoothing < 0 || c.PanSmoothing >= 1 {
		return fmt.Errorf("pan_smoothing must be in [0,1), got %v", c.PanSmoothing)
	}
	if c.RarityCommon < 0 || c.RarityUncommon < 0 || c.RarityCommon+c.RarityUncommon > 1 {
		return fmt.Errorf("rarity split %v/%v is not a valid distribution", c.RarityCommon, c.RarityUncommon)
	}
	return nil
}

// MoveCooldown returns the move cooldown as a duration.
func (c *Config) MoveCooldown() time.Duration {
	return time.Duration(c.MoveCooldownSeconds * float64(time.Second))
}

// MessageDuration returns the action message lifetime as a duration.
func (c *Config) MessageDuration() time.Duration {
	return time.Duration(c.MessageSeconds * float64(time.Second))
}

// GameWidth returns the width of the map area (screen minus HUD panel).
func (c *Config) GameWidth() int {
	return c.ScreenWidth - c.HUDWidth
}
