package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults loaded from the TOML config file at
// ~/.config/vankampen/config.toml (or $XDG_CONFIG_HOME/vankampen/).
// Command-line flags override configured values; the zero Config leaves
// every default to the pipeline.
type Config struct {
	// Precision is the starting working precision in bits.
	Precision uint `toml:"precision"`

	// MaxPrecision caps the certification retry escalation.
	MaxPrecision uint `toml:"max_precision"`

	// Workers bounds the number of concurrent segment computations.
	Workers int `toml:"workers"`

	// CacheDir overrides the XDG cache directory.
	CacheDir string `toml:"cache_dir"`
}

// loadConfig reads the config file, returning the zero Config when the
// file is missing or unreadable. A malformed file is ignored rather
// than fatal; flags still work without it.
func loadConfig() Config {
	var cfg Config
	path, err := configPath()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
