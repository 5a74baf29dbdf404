package rule

import (
	"fmt"

	"github.com/backmassage/batchren/internal/naming"
)

// ReplaceOptions configures [Replace].
type ReplaceOptions struct {
	Match
	With string
}

// DefaultReplaceOptions replaces nothing.
func DefaultReplaceOptions() ReplaceOptions {
	return ReplaceOptions{Match: defaultMatch()}
}

// Replace substitutes occurrences of a text with another.
type Replace struct{ opts ReplaceOptions }

// NewReplace returns a replace rule with opts.
func NewReplace(opts ReplaceOptions) Replace { return Replace{opts: opts} }

// Options returns the rule's configuration.
func (r Replace) Options() ReplaceOptions { return r.opts }

func (r Replace) Kind() Kind { return KindReplace }

func (r Replace) Affect(batch naming.Batch) naming.Batch {
	return batch.Map(func(_ int, name string) string { return r.opts.substitute(name, r.opts.With) })
}

func (r Replace) Describe() string {
	return fmt.Sprintf("replace %s with `%s'", r.opts.describe(), r.opts.With)
}

func (r Replace) Commands() []Command {
	with := func(m Match) Rule { return Replace{opts: ReplaceOptions{Match: m, With: r.opts.With}} }
	cmds := []Command{
		{
			Spec: "replace $ $",
			Help: "replace <OLD> with <NEW>",
			Run: func(args []string) (Result, error) {
				o := r.opts
				o.Find, o.With = args[0], args[1]
				return Result{Rule: Replace{opts: o}, Message: fmt.Sprintf("`%s' will be replaced with `%s'", o.Find, o.With)}, nil
			},
		},
	}
	return append(cmds, matchCommands(r.opts.Match, with)...)
}
