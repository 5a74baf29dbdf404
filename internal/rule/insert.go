package rule

import (
	"fmt"

	"github.com/backmassage/batchren/internal/naming"
)

// InsertOptions configures [Insert].
type InsertOptions struct {
	Text  string
	Place Placement
}

// DefaultInsertOptions inserts nothing as a prefix.
func DefaultInsertOptions() InsertOptions {
	return InsertOptions{Place: Placement{Where: AsPrefix, SkipExt: true}}
}

// Insert places fixed text into every name.
type Insert struct{ opts InsertOptions }

// NewInsert returns an insert rule with opts.
func NewInsert(opts InsertOptions) Insert { return Insert{opts: opts} }

// Options returns the rule's configuration.
func (r Insert) Options() InsertOptions { return r.opts }

func (r Insert) Kind() Kind { return KindInsert }

func (r Insert) Affect(batch naming.Batch) naming.Batch {
	return batch.Map(func(_ int, name string) string {
		return r.opts.Place.Insert(name, r.opts.Text)
	})
}

func (r Insert) Describe() string {
	return fmt.Sprintf("`%s' will be inserted %s", r.opts.Text, r.opts.Place.describe())
}

func (r Insert) Commands() []Command {
	with := func(p Placement) Rule {
		o := r.opts
		o.Place = p
		return Insert{opts: o}
	}
	cmds := []Command{
		{
			Spec: "insert $",
			Help: "insert <TEXT> into the designated position",
			Run: func(args []string) (Result, error) {
				o := r.opts
				o.Text = args[0]
				return Result{Rule: Insert{opts: o}, Message: fmt.Sprintf("`%s' will be inserted", o.Text)}, nil
			},
		},
	}
	return append(cmds, placementCommands(r.opts.Place, "text", with)...)
}
