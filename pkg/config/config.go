package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds defaults for dialog invocations and the tooling around them.
// Filter and DefaultPath are pointers so that an absent value stays
// distinguishable from an explicitly empty one.
type Config struct {
	Backend     string  `toml:"backend"`      // "auto", "nfd", "sqweek" or "zenity"
	Filter      *string `toml:"filter"`       // nativefiledialog filter list, e.g. "png,jpg;pdf"
	DefaultPath *string `toml:"default_path"` // starting directory
	LogDir      string  `toml:"log_dir"`      // empty: user cache dir
	Trace       bool    `toml:"trace"`        // log every native call
}

// Path returns the location of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nfd-go", "config.toml"), nil
}

// Load reads ~/.nfd-go/config.toml if present and applies NFD_*
// environment overrides on top.
func Load() (*Config, error) {
	cfg := &Config{
		Backend: "auto",
	}

	if configPath, err := Path(); err == nil {
		if _, err := os.Stat(configPath); err == nil {
			if _, err := toml.DecodeFile(configPath, cfg); err != nil {
				return nil, fmt.Errorf("decode %s: %w", configPath, err)
			}
		}
	}

	if v := os.Getenv("NFD_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v, ok := os.LookupEnv("NFD_FILTER"); ok {
		cfg.Filter = &v
	}
	if v, ok := os.LookupEnv("NFD_DEFAULT_PATH"); ok {
		cfg.DefaultPath = &v
	}
	if v := os.Getenv("NFD_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("NFD_TRACE"); v != "" {
		trace, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid NFD_TRACE %q: %w", v, err)
		}
		cfg.Trace = trace
	}

	return cfg, nil
}
