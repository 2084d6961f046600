package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/satindergrewal/fandial"
)

type Config struct {
	LogLevel     string            `koanf:"log_level"`
	InitialSpeed string            `koanf:"initial_speed"`
	Window       WindowConfig      `koanf:"window"`
	Colors       ColorsConfig      `koanf:"colors"`
	Labels       map[string]string `koanf:"labels"`
}

type WindowConfig struct {
	Title  string `koanf:"title"`
	Width  int    `koanf:"width"`
	Height int    `koanf:"height"`
}

// ColorsConfig holds the speed colors as hex strings. An empty string
// leaves the color unset (fully transparent), per the dial's contract.
type ColorsConfig struct {
	Low    string `koanf:"low"`
	Medium string `koanf:"medium"`
	High   string `koanf:"high"`
}

func defaultConfig() Config {
	base := fandial.DefaultConfig()
	return Config{
		LogLevel:     "info",
		InitialSpeed: "off",
		Window: WindowConfig{
			Title:  "Fan Speed",
			Width:  480,
			Height: 480,
		},
		Colors: ColorsConfig{
			Low:    base.LowColor.Hex(),
			Medium: base.MediumColor.Hex(),
			High:   base.HighColor.Hex(),
		},
	}
}

// LoadConfig layers the YAML or JSON file at path over built-in
// defaults. A missing or empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			var parser koanf.Parser
			switch ext := strings.ToLower(filepath.Ext(path)); ext {
			case ".yaml", ".yml":
				parser = kyaml.Parser()
			case ".json":
				parser = kjson.Parser()
			default:
				return Config{}, fmt.Errorf("unsupported config extension %q", ext)
			}
			if err := k.Load(file.Provider(path), parser); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("stat config: %w", err)
		}
		// Config file missing → use defaults
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FANDIAL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FANDIAL_INITIAL_SPEED"); v != "" {
		cfg.InitialSpeed = v
	}
}

// DialConfig converts the file representation into the widget's
// configuration: hex colors parsed, label table wrapped as a lookup
// that falls back to the raw key.
func (c Config) DialConfig() (fandial.Config, error) {
	var out fandial.Config
	var err error

	parse := func(name, hex string) (fandial.Color, error) {
		if hex == "" {
			return fandial.Color{}, nil
		}
		col, err := fandial.ParseHex(hex)
		if err != nil {
			return fandial.Color{}, fmt.Errorf("colors.%s: %w", name, err)
		}
		return col, nil
	}

	if out.LowColor, err = parse("low", c.Colors.Low); err != nil {
		return out, err
	}
	if out.MediumColor, err = parse("medium", c.Colors.Medium); err != nil {
		return out, err
	}
	if out.HighColor, err = parse("high", c.Colors.High); err != nil {
		return out, err
	}

	if len(c.Labels) > 0 {
		labels := c.Labels
		out.Lookup = func(key string) string {
			if text, ok := labels[key]; ok {
				return text
			}
			return key
		}
	}
	return out, nil
}
