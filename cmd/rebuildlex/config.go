package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config is the shape of a rebuildlex.toml project file, found by walking
// up from the directory being checked. Every field is optional: an absent
// file or an absent section simply falls back to the CLI's flag defaults.
type config struct {
	Check  checkConfig  `toml:"check"`
	Output outputConfig `toml:"output"`
}

type checkConfig struct {
	Jobs     int  `toml:"jobs"`
	NoCache  bool `toml:"no_cache"`
	Progress bool `toml:"progress"`
}

type outputConfig struct {
	Color    string `toml:"color"`
	PathMode string `toml:"path_mode"`
}

func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "rebuildlex.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig returns the nearest rebuildlex.toml above startDir, or a
// default config if none exists. Progress defaults to true so that an
// absent progress key is distinguished from an explicit "progress = false".
func loadConfig(startDir string) (config, error) {
	cfg := config{Check: checkConfig{Progress: true}}
	path, ok, err := findConfigFile(startDir)
	if err != nil || !ok {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
