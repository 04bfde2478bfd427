package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/bidicaret"
	"github.com/iw2rmb/bidicaret/internal/config"
)

// app is the state shared by all subcommands once flags and config are read.
type app struct {
	v       *viper.Viper
	cfgFile string
	debug   bool

	cfg config.Config
	opt bidicaret.Options
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:          "caretwalk",
		Short:        "Visual caret movement through bidirectional text",
		Long:         `caretwalk resolves the direction runs of a line, soft-wraps it and moves a caret through it the way the cursor moves on screen.`,
		Version:      bidicaret.Version(),
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.load()
		},
	}

	defaults := config.Defaults()
	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: .caretwalk/config.yaml or ~/.config/caretwalk/config.yaml)")
	pf.BoolVar(&a.debug, "debug", false, "log diagnostics to stderr")
	pf.Int("width", defaults.Width, "row width in cells, 0 disables wrapping")
	pf.String("wrap", defaults.Wrap, "wrap mode: none, word or grapheme")
	pf.Int("tab-width", defaults.TabWidth, "tab stop width")
	pf.Bool("unit", defaults.ByUnit, "skip combining marks when moving")
	pf.Bool("graphemes", defaults.Graphemes, "step whole grapheme clusters")
	pf.String("base", defaults.Base, "paragraph direction: ltr or rtl")

	_ = a.v.BindPFlag("width", pf.Lookup("width"))
	_ = a.v.BindPFlag("wrap", pf.Lookup("wrap"))
	_ = a.v.BindPFlag("tab_width", pf.Lookup("tab-width"))
	_ = a.v.BindPFlag("by_unit", pf.Lookup("unit"))
	_ = a.v.BindPFlag("graphemes", pf.Lookup("graphemes"))
	_ = a.v.BindPFlag("base", pf.Lookup("base"))

	root.AddCommand(newWalkCmd(a), newTUICmd(a))
	return root
}

func (a *app) load() error {
	if a.debug {
		a.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	defaults := config.Defaults()
	a.v.SetDefault("width", defaults.Width)
	a.v.SetDefault("wrap", defaults.Wrap)
	a.v.SetDefault("tab_width", defaults.TabWidth)
	a.v.SetDefault("by_unit", defaults.ByUnit)
	a.v.SetDefault("graphemes", defaults.Graphemes)
	a.v.SetDefault("base", defaults.Base)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		// Config lookup order:
		// 1. .caretwalk/config.yaml (current directory)
		// 2. ~/.config/caretwalk/config.yaml
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".caretwalk")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "caretwalk"))
		}
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
		a.log.Debug("no config file, using flags and defaults")
	} else {
		a.log.Debug("config loaded", "file", a.v.ConfigFileUsed())
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	opt, err := a.cfg.Options()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.opt = opt
	a.log.Debug("options",
		"width", a.cfg.Width,
		"wrap", a.cfg.Wrap,
		"base", a.cfg.Base,
		"by_unit", a.cfg.ByUnit,
		"graphemes", a.cfg.Graphemes)
	return nil
}
