package rule

import (
	"fmt"

	"github.com/backmassage/batchren/internal/naming"
)

// Until selects where a deletion ends.
type Until int

const (
	UntilCount     Until = iota // Count characters past the start.
	UntilDelimiter              // The next (or previous) occurrence of a delimiter.
	UntilEnd                    // The end (or beginning) of the name.
)

// DeleteOptions configures [Delete]. The span starts at From characters, or
// at FromText when FromDelimiter is set, counted in the direction Reverse
// selects. IncludeDelim makes delimiters part of the deleted span.
type DeleteOptions struct {
	FromDelimiter bool
	From          int
	FromText      string

	Until     Until
	Count     int
	UntilText string

	Reverse      bool
	IncludeDelim bool
	SkipExt      bool
}

// DefaultDeleteOptions deletes nothing: zero characters from position 0.
func DefaultDeleteOptions() DeleteOptions {
	return DeleteOptions{Until: UntilCount, SkipExt: true}
}

// Delete removes a contiguous span of characters from every name.
type Delete struct{ opts DeleteOptions }

// NewDelete returns a delete rule with opts.
func NewDelete(opts DeleteOptions) Delete { return Delete{opts: opts} }

// Options returns the rule's configuration.
func (r Delete) Options() DeleteOptions { return r.opts }

func (r Delete) Kind() Kind { return KindDelete }

func (r Delete) Affect(batch naming.Batch) naming.Batch {
	return batch.Map(func(_ int, name string) string { return r.apply(name) })
}

func (r Delete) apply(name string) string {
	ext := ""
	if r.opts.SkipExt {
		name, ext = naming.SplitExt(name, naming.NoLimit)
	}
	rs := []rune(name)
	s, e := r.span(rs)
	return string(rs[:s]) + string(rs[e:]) + ext
}

// span returns the rune range [s, e) to delete from rs.
func (r Delete) span(rs []rune) (int, int) {
	o := r.opts
	n := len(rs)
	rev := o.Reverse

	var s, sn int
	if !o.FromDelimiter {
		switch {
		case o.From >= n && rev:
			s = 0
		case o.From >= n:
			s = n
		case rev:
			s = n - o.From
		default:
			s = o.From
		}
	} else {
		from := []rune(o.FromText)
		var i int
		if rev {
			i = lastIndexRunes(rs, from)
		} else {
			i = indexRunes(rs, from)
		}
		switch {
		case i < 0 && rev:
			s = 0
		case i < 0:
			s = n
		default:
			s = i
			if rev == o.IncludeDelim {
				sn = len(from)
			}
		}
	}

	var e int
	switch o.Until {
	case UntilCount:
		if rev {
			e = s + sn - o.Count
		} else {
			e = s + sn + o.Count
		}
	case UntilEnd:
		if !rev {
			e = n
		}
	case UntilDelimiter:
		until := []rune(o.UntilText)
		en := 1
		if o.FromDelimiter {
			en = len([]rune(o.FromText))
		}
		i := -1
		if rev {
			i = lastIndexRunes(rs[:s], until)
		} else if s+en <= n {
			if j := indexRunes(rs[s+en:], until); j >= 0 {
				i = j + s + en
			}
		}
		if i < 0 {
			e = s + sn
		} else {
			e = i
			if rev != o.IncludeDelim {
				e += len(until)
			}
		}
	}

	s += sn
	if s > e {
		s, e = e, s
	}
	return clamp(s, 0, n), clamp(e, 0, n)
}

func clamp(v, lo, hi int) int { return max(lo, min(v, hi)) }

func indexRunes(s, sub []rune) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if equalRunes(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func lastIndexRunes(s, sub []rune) int {
	for i := len(s) - len(sub); i >= 0; i-- {
		if equalRunes(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func equalRunes(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (r Delete) Describe() string {
	o := r.opts
	from := fmt.Sprintf("from position %d", o.From)
	if o.FromDelimiter {
		from = fmt.Sprintf("from `%s'", o.FromText)
	}
	var until string
	switch o.Until {
	case UntilCount:
		until = fmt.Sprintf("%d character%s", o.Count, plural(o.Count))
	case UntilDelimiter:
		until = fmt.Sprintf("until `%s'", o.UntilText)
	case UntilEnd:
		until = "until the end"
	}
	s := fmt.Sprintf("delete %s %s", until, from)
	if o.Reverse {
		s += " counting from right to left"
	}
	if o.FromDelimiter || o.Until == UntilDelimiter {
		if o.IncludeDelim {
			s += " including delimiters"
		} else {
			s += " excluding delimiters"
		}
	}
	return s + " " + extensionScope(o.SkipExt)
}

func (r Delete) Commands() []Command {
	set := func(fn func(*DeleteOptions)) Rule {
		o := r.opts
		fn(&o)
		return Delete{opts: o}
	}
	noDelimiter := func(cmd string) string {
		if !r.opts.FromDelimiter && r.opts.Until != UntilDelimiter {
			return fmt.Sprintf("`%s' is meaningful only with delimiters", cmd)
		}
		return ""
	}
	return []Command{
		{
			Spec: "from position #",
			Help: "delete from <N>th character",
			Run: func(args []string) (Result, error) {
				n, err := parseCount(args[0], "position")
				if err != nil {
					return Result{Rule: set(func(o *DeleteOptions) { o.FromDelimiter, o.From = false, 0 })}, err
				}
				return Result{
					Rule:    set(func(o *DeleteOptions) { o.FromDelimiter, o.From = false, n }),
					Message: fmt.Sprintf("deletion will start after %d character%s", n, plural(n)),
				}, nil
			},
		},
		{
			Spec: "from delimiter $",
			Help: "delete from <DELIM>",
			Run: func(args []string) (Result, error) {
				return Result{
					Rule:    set(func(o *DeleteOptions) { o.FromDelimiter, o.FromText = true, args[0] }),
					Message: fmt.Sprintf("deletion will start from `%s'", args[0]),
				}, nil
			},
		},
		{
			Spec: "until count #",
			Help: "delete <N> characters",
			Run: func(args []string) (Result, error) {
				n, err := parseCount(args[0], "count")
				if err != nil {
					return Result{Rule: set(func(o *DeleteOptions) { o.Until, o.Count = UntilCount, 0 })}, err
				}
				return Result{
					Rule:    set(func(o *DeleteOptions) { o.Until, o.Count = UntilCount, n }),
					Message: fmt.Sprintf("%d character%s will be deleted", n, plural(n)),
				}, nil
			},
		},
		{
			Spec: "until delimiter $",
			Help: "delete until <DELIM>",
			Run: func(args []string) (Result, error) {
				return Result{
					Rule:    set(func(o *DeleteOptions) { o.Until, o.UntilText = UntilDelimiter, args[0] }),
					Message: fmt.Sprintf("deletion will end at `%s'", args[0]),
				}, nil
			},
		},
		{
			Spec: "until end",
			Help: "delete until the end of names",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(o *DeleteOptions) { o.Until = UntilEnd }), Message: "deletion will continue to the end"}, nil
			},
		},
		{
			Spec: "skip extension",
			Help: "keep extensions out of deletion (default)",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(o *DeleteOptions) { o.SkipExt = true }), Message: "extensions will be kept"}, nil
			},
		},
		{
			Spec: "include extension",
			Help: "treat extensions as part of the name",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(o *DeleteOptions) { o.SkipExt = false }), Message: "extensions will be treated as part of the name"}, nil
			},
		},
		{
			Spec: "skip delimiter",
			Help: "keep delimiters (default)",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(o *DeleteOptions) { o.IncludeDelim = false }), Message: "delimiters will be kept", Warning: noDelimiter("skip delimiter")}, nil
			},
		},
		{
			Spec: "include delimiter",
			Help: "delete delimiters as well",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(o *DeleteOptions) { o.IncludeDelim = true }), Message: "delimiters will be deleted", Warning: noDelimiter("include delimiter")}, nil
			},
		},
		{
			Spec: "left to right",
			Help: "count and search from left to right (default)",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(o *DeleteOptions) { o.Reverse = false }), Message: "characters will be counted from left to right"}, nil
			},
		},
		{
			Spec: "right to left",
			Help: "count and search from right to left",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(o *DeleteOptions) { o.Reverse = true }), Message: "characters will be counted from right to left"}, nil
			},
		},
	}
}
