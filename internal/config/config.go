// Package config loads the TOML configuration file used by the command
// console.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/voxcmd/internal/command"
	"github.com/dekarrin/voxcmd/internal/world"
)

// MinWidth is the narrowest console width that output can be wrapped to.
const MinWidth = 20

// Config is the complete console configuration.
type Config struct {
	// Prompt is shown before each line of interactive input.
	Prompt string `toml:"prompt"`

	// Width is the column that console output is wrapped at.
	Width int `toml:"width"`

	// State is the path to the file that the player state is loaded from at
	// start and saved to at exit. If empty, state is not kept between
	// sessions.
	State string `toml:"state"`

	// History is the path to the readline history file. If empty, history is
	// kept only for the current session.
	History string `toml:"history"`

	// Player is the state a player starts with if there is no saved state.
	Player PlayerConfig `toml:"player"`
}

// PlayerConfig is the starting player state.
type PlayerConfig struct {
	Fly     bool              `toml:"fly"`
	Placing command.BlockKind `toml:"placing"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	start := world.DefaultState()
	return Config{
		Prompt: "> ",
		Width:  80,
		Player: PlayerConfig{
			Fly:     start.Fly,
			Placing: start.Placing,
		},
	}
}

// StartState returns the world.State described by the player section.
func (cfg Config) StartState() world.State {
	return world.State{
		Fly:     cfg.Player.Fly,
		Placing: cfg.Player.Placing,
	}
}

// Validate returns an error if the config has values that cannot be used.
func (cfg Config) Validate() error {
	if cfg.Width < MinWidth {
		return fmt.Errorf("width: must be at least %d but is %d", MinWidth, cfg.Width)
	}
	if !cfg.Player.Placing.Valid() {
		return fmt.Errorf("player.placing: not a valid block kind")
	}
	return nil
}

// Load reads the config file at path. Keys not present in the file keep their
// Default values. If the file does not exist, Default is returned with no
// error. Keys that are not part of Config are an error so that typos are not
// silently ignored.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return Config{}, err
	}

	return Parse(data)
}

// Parse decodes config from TOML data. Keys not present in the data keep
// their Default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i := range undecoded {
			keys[i] = undecoded[i].String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
