package rule

import (
	"fmt"

	"github.com/backmassage/batchren/internal/naming"
)

// RemoveOptions configures [Remove].
type RemoveOptions struct {
	Match
}

// DefaultRemoveOptions removes nothing.
func DefaultRemoveOptions() RemoveOptions {
	return RemoveOptions{Match: defaultMatch()}
}

// Remove deletes occurrences of a text.
type Remove struct{ opts RemoveOptions }

// NewRemove returns a remove rule with opts.
func NewRemove(opts RemoveOptions) Remove { return Remove{opts: opts} }

// Options returns the rule's configuration.
func (r Remove) Options() RemoveOptions { return r.opts }

func (r Remove) Kind() Kind { return KindRemove }

func (r Remove) Affect(batch naming.Batch) naming.Batch {
	return batch.Map(func(_ int, name string) string { return r.opts.substitute(name, "") })
}

func (r Remove) Describe() string { return "remove " + r.opts.describe() }

func (r Remove) Commands() []Command {
	with := func(m Match) Rule { return Remove{opts: RemoveOptions{Match: m}} }
	cmds := []Command{
		{
			Spec: "remove $",
			Help: "remove <TEXT> from file names",
			Run: func(args []string) (Result, error) {
				m := r.opts.Match
				m.Find = args[0]
				return Result{Rule: with(m), Message: fmt.Sprintf("`%s' will be removed", m.Find)}, nil
			},
		},
	}
	return append(cmds, matchCommands(r.opts.Match, with)...)
}
