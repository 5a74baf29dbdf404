package rule

import (
	"fmt"
	"strings"

	"github.com/backmassage/batchren/internal/naming"
)

// Character presets for [Strip].
const (
	Digits      = "0123456789"
	Punctuators = "!?@#$%^&~`_+-=.,"
	Brackets    = "(){}[]"
)

// StripOptions configures [Strip]. Set holds every character to drop.
type StripOptions struct {
	Set     string
	SkipExt bool
}

// DefaultStripOptions strips nothing.
func DefaultStripOptions() StripOptions {
	return StripOptions{SkipExt: true}
}

// Strip removes every character of a set from file names.
type Strip struct{ opts StripOptions }

// NewStrip returns a strip rule with opts.
func NewStrip(opts StripOptions) Strip { return Strip{opts: opts} }

// Options returns the rule's configuration.
func (r Strip) Options() StripOptions { return r.opts }

func (r Strip) Kind() Kind { return KindStrip }

func (r Strip) Affect(batch naming.Batch) naming.Batch {
	return batch.Map(func(_ int, name string) string { return r.apply(name) })
}

func (r Strip) apply(name string) string {
	stem, ext := naming.SplitExt(name, naming.NoLimit)
	stem = r.strip(stem)
	if r.opts.SkipExt || ext == "" {
		return stem + ext
	}
	if body := r.strip(ext[1:]); body != "" {
		return stem + "." + body
	}
	return stem
}

func (r Strip) strip(s string) string {
	return strings.Map(func(c rune) rune {
		if strings.ContainsRune(r.opts.Set, c) {
			return -1
		}
		return c
	}, s)
}

func (r Strip) Describe() string {
	return fmt.Sprintf("strip `%s' off %s", r.opts.Set, extensionScope(r.opts.SkipExt))
}

func (r Strip) Commands() []Command {
	// Each command replaces the set; the last one given wins.
	set := func(chars, msg string) func([]string) (Result, error) {
		return func([]string) (Result, error) {
			o := r.opts
			o.Set = chars
			return Result{Rule: Strip{opts: o}, Message: msg}, nil
		}
	}
	return []Command{
		{Spec: "digit", Help: "strip digits off", Run: set(Digits, "digits will be stripped off")},
		{Spec: "punctuator", Help: "strip punctuators off", Run: set(Punctuators, "punctuators will be stripped off")},
		{Spec: "bracket", Help: "strip brackets off", Run: set(Brackets, "brackets will be stripped off")},
		{
			Spec: "strip $",
			Help: "strip every character of <CHARS> off",
			Run: func(args []string) (Result, error) {
				return set(args[0], fmt.Sprintf("characters in `%s' will be stripped off", args[0]))(nil)
			},
		},
		{
			Spec: "skip extension",
			Help: "keep extensions intact (default)",
			Run: func([]string) (Result, error) {
				o := r.opts
				o.SkipExt = true
				return Result{Rule: Strip{opts: o}, Message: "extensions will not be affected"}, nil
			},
		},
		{
			Spec: "include extension",
			Help: "strip characters off extensions as well",
			Run: func([]string) (Result, error) {
				o := r.opts
				o.SkipExt = false
				return Result{Rule: Strip{opts: o}, Message: "extensions will be affected"}, nil
			},
		},
	}
}
