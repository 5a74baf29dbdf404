package rule

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/backmassage/batchren/internal/naming"
)

// CaseMode selects the letter-case transformation.
type CaseMode string

const (
	CaseOriginal   CaseMode = "original"
	CaseTitle      CaseMode = "title"
	CaseLower      CaseMode = "lower"
	CaseUpper      CaseMode = "upper"
	CaseInvert     CaseMode = "invert"
	CaseCapitalize CaseMode = "capitalize"
)

// ExtMode controls how the case rule treats extensions.
type ExtMode int

const (
	ExtSkip    ExtMode = iota // Extension passes through unchanged (default).
	ExtInclude                // Extension is transformed with the stem.
	ExtLower                  // Extension is always lowercased.
)

// CaseOptions configures [Case].
type CaseOptions struct {
	Mode CaseMode
	Ext  ExtMode
}

// DefaultCaseOptions keeps the original case and skips extensions.
func DefaultCaseOptions() CaseOptions {
	return CaseOptions{Mode: CaseOriginal, Ext: ExtSkip}
}

// Case changes the letter case of names.
type Case struct{ opts CaseOptions }

// NewCase returns a case rule with opts.
func NewCase(opts CaseOptions) Case { return Case{opts: opts} }

// Options returns the rule's configuration.
func (r Case) Options() CaseOptions { return r.opts }

func (r Case) Kind() Kind { return KindCase }

func (r Case) Affect(batch naming.Batch) naming.Batch {
	return batch.Map(func(_ int, name string) string { return r.apply(name) })
}

func (r Case) apply(name string) string {
	ext := ""
	if r.opts.Ext != ExtInclude {
		name, ext = naming.SplitExt(name, naming.NoLimit)
	}
	name = convertCase(name, r.opts.Mode)
	if r.opts.Ext == ExtLower {
		ext = strings.ToLower(ext)
	}
	return name + ext
}

func convertCase(s string, mode CaseMode) string {
	switch mode {
	case CaseTitle:
		return titleCase(s)
	case CaseLower:
		return strings.ToLower(s)
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseInvert:
		return strings.Map(func(c rune) rune {
			if unicode.IsUpper(c) {
				return unicode.ToLower(c)
			}
			return unicode.ToUpper(c)
		}, s)
	case CaseCapitalize:
		c, n := utf8.DecodeRuneInString(s)
		if n == 0 {
			return s
		}
		return string(unicode.ToUpper(c)) + strings.ToLower(s[n:])
	}
	return s
}

// titleCase uppercases the first letter of each word and lowercases the
// rest. Words are separated by anything that is not a letter or digit, so
// spaces, '_', '.', and '-' all start a new word.
func titleCase(s string) string {
	prev := ' '
	return strings.Map(func(c rune) rune {
		start := !unicode.IsLetter(prev) && !unicode.IsDigit(prev)
		prev = c
		if start {
			return unicode.ToUpper(c)
		}
		return unicode.ToLower(c)
	}, s)
}

func (r Case) Describe() string {
	var s string
	switch r.opts.Mode {
	case CaseTitle:
		s = "make file names be title case"
	case CaseLower:
		s = "make file names be lower case"
	case CaseUpper:
		s = "make file names be upper case"
	case CaseInvert:
		s = "invert letter case"
	case CaseCapitalize:
		s = "make only the first character be upper case"
	default:
		s = "keep the original letter case"
	}
	switch r.opts.Ext {
	case ExtInclude:
		return s + " including extensions"
	case ExtLower:
		return s + " with lower case extensions"
	}
	return s + " skipping extensions"
}

func (r Case) Commands() []Command {
	mode := func(m CaseMode, msg string) func([]string) (Result, error) {
		return func([]string) (Result, error) {
			o := r.opts
			o.Mode = m
			return Result{Rule: Case{opts: o}, Message: msg}, nil
		}
	}
	ext := func(e ExtMode, msg string) func([]string) (Result, error) {
		return func([]string) (Result, error) {
			o := r.opts
			o.Ext = e
			return Result{Rule: Case{opts: o}, Message: msg}, nil
		}
	}
	return []Command{
		{Spec: "keep original", Help: "keep the original letter case", Run: mode(CaseOriginal, "letter case will not change")},
		{Spec: "titlecase", Help: "make file names be title case", Run: mode(CaseTitle, "file names will be title case")},
		{Spec: "lowercase", Help: "make file names be lower case", Run: mode(CaseLower, "file names will be lower case")},
		{Spec: "uppercase", Help: "make file names be upper case", Run: mode(CaseUpper, "file names will be upper case")},
		{Spec: "invert", Help: "invert letter case in file names", Run: mode(CaseInvert, "file names will have inverted case")},
		{Spec: "capitalize", Help: "make only the first character be upper case", Run: mode(CaseCapitalize, "only the first character will be upper case")},
		{Spec: "skip extension", Help: "ignore extensions while changing letter case (default)", Run: ext(ExtSkip, "extensions will be ignored while changing case")},
		{Spec: "include extension", Help: "include extensions while changing letter case", Run: ext(ExtInclude, "extensions will be included while changing case")},
		{Spec: "lower extension", Help: "extensions will always be lower case", Run: ext(ExtLower, "extensions will always be lower case")},
	}
}
