package display

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Printer receives rendered output lines. *logging.Logger satisfies it.
type Printer interface {
	Out(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Width returns the number of terminal columns s occupies.
func Width(s string) int { return runewidth.StringWidth(s) }

// PadRight appends spaces to s, whose display width is w, up to n columns.
func PadRight(s string, w, n int) string {
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}

// PadLeft prepends spaces to s, whose display width is w, up to n columns.
func PadLeft(s string, w, n int) string {
	if w >= n {
		return s
	}
	return strings.Repeat(" ", n-w) + s
}

// DigitWidth returns the number of decimal digits in n.
func DigitWidth(n int) int {
	return len(strconv.Itoa(max(n, 0)))
}
