package rule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/backmassage/batchren/internal/naming"
)

// SerializeOptions configures [Serialize]. The i-th record receives
// Start + i*Step, zero-padded to Pad digits.
type SerializeOptions struct {
	Start int
	Step  int
	Pad   int
	Place Placement
}

// DefaultSerializeOptions numbers from 1 by 1 as a suffix.
func DefaultSerializeOptions() SerializeOptions {
	return SerializeOptions{
		Start: 1,
		Step:  1,
		Pad:   1,
		Place: Placement{Where: AsSuffix, SkipExt: true, KeepHidden: true},
	}
}

// Serialize numbers file names in batch order.
type Serialize struct{ opts SerializeOptions }

// NewSerialize returns a serialize rule with opts.
func NewSerialize(opts SerializeOptions) Serialize { return Serialize{opts: opts} }

// Options returns the rule's configuration.
func (r Serialize) Options() SerializeOptions { return r.opts }

func (r Serialize) Kind() Kind { return KindSerialize }

func (r Serialize) Affect(batch naming.Batch) naming.Batch {
	return batch.Map(func(i int, name string) string {
		return r.opts.Place.Insert(name, padNumber(r.opts.Start+i*r.opts.Step, r.opts.Pad))
	})
}

// padNumber zero-pads n to width digits. A negative number keeps its sign in
// front and the sign counts toward the width.
func padNumber(n, width int) string {
	if n < 0 {
		return "-" + padLeft(strconv.Itoa(-n), width-1)
	}
	return padLeft(strconv.Itoa(n), width)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func (r Serialize) Describe() string {
	o := r.opts
	return fmt.Sprintf("number from %d by %d padded to %d digit%s %s",
		o.Start, o.Step, o.Pad, plural(o.Pad), o.Place.describe())
}

func (r Serialize) Commands() []Command {
	set := func(fn func(*SerializeOptions)) Rule {
		o := r.opts
		fn(&o)
		return Serialize{opts: o}
	}
	cmds := []Command{
		{
			Spec: "start #",
			Help: "start numbering from <N>",
			Run: func(args []string) (Result, error) {
				n, err := parseInteger(args[0], "start value")
				if err != nil {
					return Result{Rule: set(func(o *SerializeOptions) { o.Start = 1 })}, err
				}
				return Result{Rule: set(func(o *SerializeOptions) { o.Start = n }), Message: fmt.Sprintf("numbering will start from %d", n)}, nil
			},
		},
		{
			Spec: "step #",
			Help: "increase numbers by <N>",
			Run: func(args []string) (Result, error) {
				n, err := parseInteger(args[0], "step value")
				if err != nil {
					return Result{Rule: set(func(o *SerializeOptions) { o.Step = 1 })}, err
				}
				return Result{Rule: set(func(o *SerializeOptions) { o.Step = n }), Message: fmt.Sprintf("numbers will increase by %d", n)}, nil
			},
		},
		{
			Spec: "pad #",
			Help: "pad numbers with zeros to <N> digits",
			Run: func(args []string) (Result, error) {
				n, err := parseCount(args[0], "pad width")
				if err != nil {
					return Result{Rule: set(func(o *SerializeOptions) { o.Pad = 1 })}, err
				}
				return Result{Rule: set(func(o *SerializeOptions) { o.Pad = n }), Message: fmt.Sprintf("numbers will be padded to %d digit%s", n, plural(n))}, nil
			},
		},
	}
	with := func(p Placement) Rule { return set(func(o *SerializeOptions) { o.Place = p }) }
	return append(cmds, placementCommands(r.opts.Place, "numbers", with)...)
}
