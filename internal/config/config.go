// Package config loads stopdemo editor sessions with viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/gogpu/stopedit"
)

// Stop is a palette entry as written in a session file.
type Stop struct {
	ID      int      `mapstructure:"id"`
	Offset  float64  `mapstructure:"offset"`
	Color   string   `mapstructure:"color"`
	Opacity *float64 `mapstructure:"opacity"`
}

// Action is one scripted editor interaction.
type Action struct {
	Type    string    `mapstructure:"type"` // add, drag, select, delete, recolor, click
	X       float64   `mapstructure:"x"`
	Button  string    `mapstructure:"button"`
	ID      int       `mapstructure:"id"`
	Moves   []float64 `mapstructure:"moves"`
	Color   string    `mapstructure:"color"`
	Opacity *float64  `mapstructure:"opacity"`
	Region  string    `mapstructure:"region"`
}

// Config is a complete editor session.
type Config struct {
	LogLevel        string   `mapstructure:"logLevel"`
	Output          string   `mapstructure:"output"`
	Width           float64  `mapstructure:"width"`
	PaletteHeight   float64  `mapstructure:"paletteHeight"`
	StopRemovalDrop float64  `mapstructure:"stopRemovalDrop"`
	MinStops        int      `mapstructure:"minStops"`
	MaxStops        int      `mapstructure:"maxStops"`
	FlatStyle       bool     `mapstructure:"flatStyle"`
	Angle           int      `mapstructure:"angle"`
	Palette         []Stop   `mapstructure:"palette"`
	Actions         []Action `mapstructure:"actions"`
}

// Load reads the session file at path and fills in defaults. An empty path
// yields the defaults alone. The format follows the file extension (JSON,
// YAML or TOML).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("output", "palette.png")
	v.SetDefault("width", stopedit.DefaultWidth)
	v.SetDefault("paletteHeight", stopedit.DefaultPaletteHeight)
	v.SetDefault("stopRemovalDrop", stopedit.DefaultStopRemovalDrop)
	v.SetDefault("minStops", stopedit.DefaultMinStops)
	v.SetDefault("maxStops", stopedit.DefaultMaxStops)
	v.SetDefault("flatStyle", false)
	v.SetDefault("angle", stopedit.DefaultAngle)
	v.SetDefault("palette", []map[string]any{
		{"offset": 0.0, "color": "#ffffff"},
		{"offset": 1.0, "color": "#000000"},
	})

	v.SetEnvPrefix("STOPEDIT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &cfg, nil
}

// Options converts the layout settings to editor options.
func (c *Config) Options() []stopedit.Option {
	return []stopedit.Option{
		stopedit.WithWidth(c.Width),
		stopedit.WithPaletteHeight(c.PaletteHeight),
		stopedit.WithStopRemovalDrop(c.StopRemovalDrop),
		stopedit.WithMinStops(c.MinStops),
		stopedit.WithMaxStops(c.MaxStops),
		stopedit.WithFlatStyle(c.FlatStyle),
	}
}

// InitialPalette returns the configured stops. Missing opacities default
// to fully opaque.
func (c *Config) InitialPalette() []stopedit.ColorStop {
	out := make([]stopedit.ColorStop, len(c.Palette))
	for i, s := range c.Palette {
		out[i] = stopedit.ColorStop{
			ID:      s.ID,
			Offset:  s.Offset,
			Color:   s.Color,
			Opacity: OpacityOr(s.Opacity, 1),
		}
	}
	return out
}

// OpacityOr returns *p, or def when p is nil.
func OpacityOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
