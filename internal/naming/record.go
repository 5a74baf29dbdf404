package naming

import (
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Separator joins a record's directory and base name.
const Separator = string(filepath.Separator)

// Record is one file of a rename batch at a given pipeline stage. The
// directory is never renamed; the base name is replaced (never edited in
// place) by each stage. Full path and display form are derived from the two
// and recomputed whenever a new record is built.
type Record struct {
	dir  string
	file string

	full    string
	display string
	width   int
}

// NewRecord builds a record and derives its full path and display form.
func NewRecord(dir, file string) Record {
	r := Record{dir: dir, file: file}
	r.fill()
	return r
}

// WithFile returns a copy of r renamed to file, with derived fields recomputed.
func (r Record) WithFile(file string) Record {
	return NewRecord(r.dir, file)
}

// Dir returns the directory component.
func (r Record) Dir() string { return r.dir }

// File returns the base name.
func (r Record) File() string { return r.file }

// Full returns dir + separator + file.
func (r Record) Full() string { return r.full }

// Display returns the full path with characters that have no terminal width
// replaced by '?'.
func (r Record) Display() string { return r.display }

// Width is the number of terminal columns Display occupies.
func (r Record) Width() int { return r.width }

func (r *Record) fill() {
	r.full = r.dir + Separator + r.file
	dir, dw := escape(r.dir)
	file, fw := escape(r.file)
	r.display = dir + Separator + file
	r.width = dw + 1 + fw
}

// escape substitutes '?' for zero-width and non-printable characters and
// returns the resulting string with its column width. Those characters count
// as one column each.
func escape(s string) (string, int) {
	var b strings.Builder
	b.Grow(len(s))
	n := 0
	for _, c := range s {
		w := runewidth.RuneWidth(c)
		if w <= 0 {
			b.WriteByte('?')
			n++
			continue
		}
		b.WriteRune(c)
		n += w
	}
	return b.String(), n
}

// Batch is the ordered set of records one pipeline stage owns.
type Batch []Record

// Clone returns a copy of b that shares no backing array with it.
func (b Batch) Clone() Batch {
	if b == nil {
		return nil
	}
	out := make(Batch, len(b))
	copy(out, b)
	return out
}

// Files returns the base names in order.
func (b Batch) Files() []string {
	out := make([]string, len(b))
	for i, r := range b {
		out[i] = r.file
	}
	return out
}

// Fulls returns the full paths in order.
func (b Batch) Fulls() []string {
	out := make([]string, len(b))
	for i, r := range b {
		out[i] = r.full
	}
	return out
}

// Map returns a new batch where every record's base name is replaced by
// fn(index, name). Directories pass through unchanged.
func (b Batch) Map(fn func(i int, name string) string) Batch {
	out := make(Batch, len(b))
	for i, r := range b {
		out[i] = r.WithFile(fn(i, r.file))
	}
	return out
}
