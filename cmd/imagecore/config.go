package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/mrjoshuak/go-imagecore"
)

// Config is the TOML configuration of the command.
//
//	[transform]
//	mode = "quantized"
//	max_map = 65535
//	workers = 0
//	memory_limit = 0
//
//	[log]
//	level = "info"
//
//	[properties]
//	gamma = "1.7"
type Config struct {
	Transform TransformConfig `toml:"transform"`
	Log       LogConfig       `toml:"log"`

	// Properties are set on every converted image before --set flags.
	Properties map[string]string `toml:"properties"`
}

// TransformConfig configures the colorspace engine.
type TransformConfig struct {
	Mode        string `toml:"mode"`
	MaxMap      int    `toml:"max_map"`
	Workers     int    `toml:"workers"`
	MemoryLimit int64  `toml:"memory_limit"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Transform: TransformConfig{Mode: "quantized", MaxMap: imagecore.DefaultMaxMap},
		Log:       LogConfig{Level: "info"},
	}
}

// LoadConfig reads a TOML file over the defaults. Unknown keys are errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c LogConfig) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.Level))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.Level, err)
	}
	return l, nil
}
