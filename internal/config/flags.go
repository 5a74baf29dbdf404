package config

// This file implements command-line flag binding.
// Flags are parsed into a scratch Config; [Flags.Resolve] then layers them
// over the defaults and the YAML file so that only flags the user actually
// passed override file settings. Negated flags (--no-color) are applied
// last.

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/backmassage/batchren/internal/naming"
)

// Flags is the set of command-line flags bound to a FlagSet.
type Flags struct {
	fs      *pflag.FlagSet
	parsed  Config
	negated negatedFlags
}

// negatedFlags holds boolean flags that are applied after the config file.
type negatedFlags struct {
	forceColor bool
	noColor    bool
}

// BindFlags registers every flag on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs, parsed: DefaultConfig()}
	cfg := &f.parsed

	fs.StringVarP(&cfg.FileList, "file", "f", "", "read names from `TEXT` file (one per line) instead of FILE arguments")
	fs.Var(&sortModeValue{&cfg.Sort}, "sort", "order of the file list: alpha | natural | none")
	fs.Var(&profileValue{&cfg.Profile}, "profile", "naming rules to validate against: unix-like | windows-ntfs")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "report renames without touching any file")

	fs.Var(&colorModeValue{&cfg.ColorMode}, "color-mode", "colored output: auto | always | never")
	fs.BoolVar(&f.negated.forceColor, "color", false, "force colored output")
	fs.BoolVar(&f.negated.noColor, "no-color", false, "disable colored output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "append JSON log entries to `PATH`")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")

	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML config `PATH` (default $XDG_CONFIG_HOME/batchren/config.yaml)")
	return f
}

// Resolve builds the effective configuration after the FlagSet has been
// parsed. args are the positional FILE arguments.
func (f *Flags) Resolve(args []string) (*Config, error) {
	cfg := DefaultConfig()

	path := f.parsed.ConfigFile
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return nil, err
		}
	} else if def := DefaultConfigPath(); def != "" {
		if _, err := os.Stat(def); err == nil {
			if err := LoadFile(def, &cfg); err != nil {
				return nil, err
			}
		}
	}

	f.fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "file":
			cfg.FileList = f.parsed.FileList
		case "sort":
			cfg.Sort = f.parsed.Sort
		case "profile":
			cfg.Profile = f.parsed.Profile
		case "dry-run":
			cfg.DryRun = f.parsed.DryRun
		case "color-mode":
			cfg.ColorMode = f.parsed.ColorMode
		case "log":
			cfg.LogFile = f.parsed.LogFile
		case "verbose":
			cfg.Verbose = f.parsed.Verbose
		}
	})
	applyNegatedFlags(&cfg, &f.negated)

	cfg.Files = append([]string(nil), args...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// pflag.Value adapters so enum types can be used with FlagSet.Var.

type sortModeValue struct{ p *SortMode }

func (v *sortModeValue) String() string { return string(*v.p) }
func (v *sortModeValue) Type() string   { return "mode" }
func (v *sortModeValue) Set(s string) error {
	switch m := SortMode(strings.ToLower(s)); m {
	case SortAlpha, SortNatural, SortNone:
		*v.p = m
	default:
		return fmt.Errorf("%q: %w", s, ErrInvalidSort)
	}
	return nil
}

type profileValue struct{ p *naming.Profile }

func (v *profileValue) String() string { return string(*v.p) }
func (v *profileValue) Type() string   { return "profile" }
func (v *profileValue) Set(s string) error {
	p, err := naming.ParseProfile(s)
	if err != nil {
		return fmt.Errorf("%q: %w", s, ErrInvalidProfile)
	}
	*v.p = p
	return nil
}

type colorModeValue struct{ p *ColorMode }

func (v *colorModeValue) String() string { return string(*v.p) }
func (v *colorModeValue) Type() string   { return "mode" }
func (v *colorModeValue) Set(s string) error {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		*v.p = m
	default:
		return fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	return nil
}
