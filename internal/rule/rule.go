// Package rule implements the renaming transformations a rule chain is built
// from. Every rule is an immutable value: its Affect method is a pure
// function of the input batch and the rule's options, and each of its
// commands returns a new rule carrying the updated options instead of
// editing the receiver.
package rule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/backmassage/batchren/internal/naming"
)

// Kind identifies a rule implementation.
type Kind string

const (
	KindCase      Kind = "case"
	KindDelete    Kind = "delete"
	KindExtension Kind = "extension"
	KindImport    Kind = "import"
	KindInsert    Kind = "insert"
	KindRemove    Kind = "remove"
	KindReplace   Kind = "replace"
	KindSerialize Kind = "serialize"
	KindStrip     Kind = "strip"
)

// Rule is one renaming transformation.
type Rule interface {
	// Kind returns the rule's identifier.
	Kind() Kind
	// Affect renames every record of batch and returns a new batch of the
	// same length. Directories pass through unchanged.
	Affect(batch naming.Batch) naming.Batch
	// Describe summarizes the current options as one sentence.
	Describe() string
	// Commands returns the command table that edits this rule.
	Commands() []Command
}

// Command is one entry of a rule's command table. Spec is the token
// sequence the command is typed as; "#" stands for a number, "$" for a
// text argument and "*" for a file name.
type Command struct {
	Spec string
	Help string
	Run  func(args []string) (Result, error)
}

// Result is what running a command produced. Rule is the instance that
// replaces the one being edited; it is set even when Run also returns an
// error, in which case it carries the fallback configuration.
type Result struct {
	Rule    Rule
	Message string
	Warning string
	Detail  []string
}

// ErrInvalidNumber reports a malformed or out-of-range numeric argument.
var ErrInvalidNumber = errors.New("invalid number")

// parseCount parses a non-negative whole number.
func parseCount(arg, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s `%s': %w", what, arg, ErrInvalidNumber)
	}
	return n, nil
}

// parseInteger parses a whole number of either sign.
func parseInteger(arg, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid %s `%s': %w", what, arg, ErrInvalidNumber)
	}
	return n, nil
}

// plural returns "s" unless n is 1.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// ordinal renders n as "1st", "2nd", "3rd", "4th", ...
func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// extensionScope describes whether extensions take part in a rule.
func extensionScope(skip bool) string {
	if skip {
		return "skipping extensions"
	}
	return "including extensions"
}
