// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Data  DataConfig  `toml:"data"`
	Chart ChartConfig `toml:"chart"`
}

// DataConfig maps dataset-related settings.
type DataConfig struct {
	Source         *string `toml:"source"`
	WinningColumn  *string `toml:"winning-column"`
	CashBallColumn *string `toml:"cash-ball-column"`
	Invalid        *string `toml:"invalid"`
	Timeout        *string `toml:"timeout"`
}

// ChartConfig maps chart output settings.
type ChartConfig struct {
	Top    *int    `toml:"top"`
	Width  *int    `toml:"width"`
	Height *int    `toml:"height"`
	Format *string `toml:"format"`
	OutDir *string `toml:"out-dir"`
	Color  *bool   `toml:"color"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
