// Package config holds the caretwalk configuration and its defaults.
package config

import (
	"fmt"

	"github.com/iw2rmb/bidicaret"
	"github.com/iw2rmb/bidicaret/bidi"
	"github.com/iw2rmb/bidicaret/layout"
)

// Config is loaded by viper from flags and an optional YAML file.
type Config struct {
	Width     int    `mapstructure:"width"`     // row width in cells, 0 disables wrapping
	Wrap      string `mapstructure:"wrap"`      // "none", "word" or "grapheme"
	TabWidth  int    `mapstructure:"tab_width"` // tab stop width
	ByUnit    bool   `mapstructure:"by_unit"`   // skip combining marks when moving
	Graphemes bool   `mapstructure:"graphemes"` // step whole grapheme clusters
	Base      string `mapstructure:"base"`      // "ltr" (default) or "rtl"
}

func Defaults() Config {
	return Config{
		Width:    0,
		Wrap:     layout.WrapGrapheme.String(),
		TabWidth: 4,
		ByUnit:   true,
		Base:     "ltr",
	}
}

// Options validates c and converts it into line options.
func (c Config) Options() (bidicaret.Options, error) {
	mode, ok := layout.ParseWrapMode(c.Wrap)
	if !ok {
		return bidicaret.Options{}, fmt.Errorf("wrap: unknown mode %q (want none, word or grapheme)", c.Wrap)
	}
	if c.Width < 0 {
		return bidicaret.Options{}, fmt.Errorf("width: must not be negative, got %d", c.Width)
	}
	if c.TabWidth < 0 {
		return bidicaret.Options{}, fmt.Errorf("tab_width: must not be negative, got %d", c.TabWidth)
	}

	var base bidi.Level
	switch c.Base {
	case "", "ltr":
	case "rtl":
		base = 1
	default:
		return bidicaret.Options{}, fmt.Errorf("base: unknown direction %q (want ltr or rtl)", c.Base)
	}

	return bidicaret.Options{
		Base:      base,
		Wrap:      layout.Options{Mode: mode, Width: c.Width, TabWidth: c.TabWidth},
		Graphemes: c.Graphemes,
	}, nil
}
