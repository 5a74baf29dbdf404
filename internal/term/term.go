// Package term provides color styles and terminal detection.
//
// Styles are package-level variables because multiple packages (logging,
// display, shell) need them for output formatting. [Configure] sets them
// once during startup; when colors are disabled every style renders its
// input unchanged.
package term

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/backmassage/batchren/internal/config"
)

// Message and token styles.
var (
	Err  = lipgloss.NewStyle() // Errors and blocking findings.
	Warn = lipgloss.NewStyle() // Warnings and advisory findings.
	OK   = lipgloss.NewStyle() // Success messages.
	Rule = lipgloss.NewStyle() // Rule kinds.
	Num  = lipgloss.NewStyle() // Numbers.
	File = lipgloss.NewStyle() // File names.
	Cmd  = lipgloss.NewStyle() // Command names.
	Val  = lipgloss.NewStyle() // Option values.
	Prog = lipgloss.NewStyle() // The program name.
	Etc  = lipgloss.NewStyle() // Secondary text.
)

var enabled bool

// Configure resolves the color mode for out and sets the package-level
// styles. Call once during startup.
func Configure(mode config.ColorMode, out io.Writer) {
	enabled = resolve(mode, out)

	r := lipgloss.NewRenderer(out)
	if enabled {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	Err = fg("9")
	Warn = fg("11")
	OK = fg("10")
	Rule = fg("12")
	Num = fg("11")
	File = fg("13")
	Cmd = fg("11")
	Val = fg("13")
	Prog = fg("14").Bold(true)
	Etc = fg("8")
}

// Enabled reports whether colors are currently active.
func Enabled() bool { return enabled }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		f, ok := out.(*os.File)
		return ok && IsTerminal(f) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
