// Package config holds runtime configuration: defaults, the YAML config
// file, command-line flags, and validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/batchren/internal/naming"
)

// Version is shown by --version, the banner, and the `version' command.
var Version = "1.0.0-dev"

// --- Enum types for validated string fields ---

// SortMode orders the initial file list.
type SortMode string

const (
	SortAlpha   SortMode = "alpha"   // Byte-wise lexical order (default).
	SortNatural SortMode = "natural" // Digit runs compare by numeric value.
	SortNone    SortMode = "none"    // Keep the order names were given in.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

var (
	ErrInvalidProfile = errors.New("invalid naming profile (use 'unix-like' or 'windows-ntfs')")
	ErrInvalidSort    = errors.New("invalid sort mode (use 'alpha', 'natural' or 'none')")
	ErrInvalidColor   = errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	ErrNoFiles        = errors.New("no file to rename")
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by the YAML config file, then by explicitly set flags.
type Config struct {
	// Inputs.
	Files    []string `yaml:"-"`    // Positional FILE arguments.
	FileList string   `yaml:"file"` // Text file naming one file per line; replaces Files.

	// Renaming behavior.
	Sort    SortMode       `yaml:"sort"`    // Default: "alpha".
	Profile naming.Profile `yaml:"profile"` // Default: "unix-like".
	DryRun  bool           `yaml:"dry_run"` // Report renames without touching the filesystem.

	// Display and logging.
	ColorMode ColorMode `yaml:"color"`   // Default: "auto".
	LogFile   string    `yaml:"log"`     // Optional JSON log file.
	Verbose   bool      `yaml:"verbose"` // Debug-level console and file output.

	// ConfigFile is the YAML file that was loaded, if any.
	ConfigFile string `yaml:"-"`
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		Sort:      SortAlpha,
		Profile:   naming.ProfileUnix,
		ColorMode: ColorAuto,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/batchren/config.yaml (or the
// platform equivalent), or "" when no config directory is known.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "batchren", "config.yaml")
}

// LoadFile overlays the YAML file at path onto cfg. Keys absent from the
// file leave cfg unchanged; unknown keys are an error.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// yaml.v3 reports an empty document as io.EOF.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	cfg.ConfigFile = path
	return nil
}

// Validate checks that enum fields hold valid values.
func (c *Config) Validate() error {
	p, err := naming.ParseProfile(string(c.Profile))
	if err != nil {
		return fmt.Errorf("%q: %w", c.Profile, ErrInvalidProfile)
	}
	c.Profile = p

	switch c.Sort {
	case SortAlpha, SortNatural, SortNone:
		// valid
	default:
		return fmt.Errorf("%q: %w", c.Sort, ErrInvalidSort)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("%q: %w", c.ColorMode, ErrInvalidColor)
	}

	if c.FileList == "" && len(c.Files) == 0 {
		return ErrNoFiles
	}
	return nil
}
