package rule

import (
	"fmt"
	"strings"

	"github.com/backmassage/batchren/internal/naming"
)

// LineReader loads the lines of a text file.
type LineReader interface {
	ReadLines(path string) ([]string, error)
}

// ImportOptions configures [Import]. Record i receives line i/Repeat of the
// loaded file, or nothing when the file has fewer lines.
type ImportOptions struct {
	Path      string
	Lines     []string
	SkipEmpty bool
	Repeat    int
	Place     Placement
}

// DefaultImportOptions inserts each line once as a suffix.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{
		Repeat: 1,
		Place:  Placement{Where: AsSuffix, SkipExt: true, KeepHidden: true},
	}
}

// Import inserts lines of a text file into file names, one line per record.
type Import struct {
	opts   ImportOptions
	reader LineReader
}

// NewImport returns an import rule with opts. reader serves `import'
// commands and may be nil when the rule is never edited.
func NewImport(opts ImportOptions, reader LineReader) Import {
	return Import{opts: opts, reader: reader}
}

// Options returns the rule's configuration.
func (r Import) Options() ImportOptions { return r.opts }

func (r Import) Kind() Kind { return KindImport }

func (r Import) Affect(batch naming.Batch) naming.Batch {
	lines := r.lines()
	repeat := max(r.opts.Repeat, 1)
	return batch.Map(func(i int, name string) string {
		text := ""
		if k := i / repeat; k < len(lines) {
			text = lines[k]
		}
		return r.opts.Place.Insert(name, text)
	})
}

func (r Import) lines() []string {
	if !r.opts.SkipEmpty {
		return r.opts.Lines
	}
	out := make([]string, 0, len(r.opts.Lines))
	for _, l := range r.opts.Lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

func (r Import) Describe() string {
	src := "nothing"
	if r.opts.Path != "" {
		src = fmt.Sprintf("lines of `%s'", r.opts.Path)
	}
	s := fmt.Sprintf("insert %s", src)
	if r.opts.Repeat > 1 {
		s += fmt.Sprintf(" repeating each %d times", r.opts.Repeat)
	}
	if r.opts.SkipEmpty {
		s += " skipping empty lines"
	}
	return s + " " + r.opts.Place.describe()
}

func (r Import) Commands() []Command {
	set := func(fn func(*ImportOptions)) Rule {
		o := r.opts
		fn(&o)
		return Import{opts: o, reader: r.reader}
	}
	cmds := []Command{
		{
			Spec: "import *",
			Help: "import lines of <FILE>",
			Run: func(args []string) (Result, error) {
				if r.reader == nil {
					return Result{Rule: r}, fmt.Errorf("cannot import `%s': no file reader", args[0])
				}
				lines, err := r.reader.ReadLines(args[0])
				if err != nil {
					return Result{Rule: r}, fmt.Errorf("cannot import `%s': %w", args[0], err)
				}
				for i, l := range lines {
					lines[i] = strings.TrimSuffix(l, "\r")
				}
				return Result{
					Rule:    set(func(o *ImportOptions) { o.Path, o.Lines = args[0], lines }),
					Message: fmt.Sprintf("%d line%s imported from `%s'", len(lines), plural(len(lines)), args[0]),
				}, nil
			},
		},
		{
			Spec: "skip empty",
			Help: "ignore empty lines",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(o *ImportOptions) { o.SkipEmpty = true }), Message: "empty lines will be ignored"}, nil
			},
		},
		{
			Spec: "include empty",
			Help: "insert empty lines as well (default)",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(o *ImportOptions) { o.SkipEmpty = false }), Message: "empty lines will be inserted"}, nil
			},
		},
		{
			Spec: "repeat #",
			Help: "insert each line <N> times",
			Run: func(args []string) (Result, error) {
				n, err := parseCount(args[0], "repeat count")
				if err == nil && n == 0 {
					err = fmt.Errorf("invalid repeat count `%s': %w", args[0], ErrInvalidNumber)
				}
				if err != nil {
					return Result{Rule: set(func(o *ImportOptions) { o.Repeat = 1 })}, err
				}
				return Result{
					Rule:    set(func(o *ImportOptions) { o.Repeat = n }),
					Message: fmt.Sprintf("each line will be inserted %d time%s", n, plural(n)),
				}, nil
			},
		},
	}
	with := func(p Placement) Rule { return set(func(o *ImportOptions) { o.Place = p }) }
	return append(cmds, placementCommands(r.opts.Place, "lines", with)...)
}
