package rule

import (
	"fmt"
	"strings"

	"github.com/backmassage/batchren/internal/naming"
)

// Where selects the insertion point of a [Placement].
type Where int

const (
	AsPrefix   Where = iota // Before the name (after a hidden-file dot when KeepHidden).
	AsSuffix                // After the stem, or after the extension when SkipExt is off.
	AtPosition              // After At characters, counted from either end.
	AfterWord               // After every occurrence of Word.
	BeforeWord              // Before every occurrence of Word.
)

// Placement is the position vocabulary shared by insert, serialize and
// import. SkipExt confines suffix, position and word placement to the stem.
type Placement struct {
	Where      Where
	At         int
	Reverse    bool
	Word       string
	SkipExt    bool
	KeepHidden bool
}

// Insert places text into name.
func (p Placement) Insert(name, text string) string {
	if p.Where == AsPrefix {
		if p.KeepHidden && strings.HasPrefix(name, ".") {
			return "." + text + name[1:]
		}
		return text + name
	}

	stem, ext := name, ""
	if p.SkipExt {
		stem, ext = naming.SplitExt(name, naming.NoLimit)
	}
	switch p.Where {
	case AsSuffix:
		stem += text
	case AtPosition:
		rs := []rune(stem)
		pos := min(p.At, len(rs))
		if p.Reverse {
			pos = len(rs) - pos
		}
		stem = string(rs[:pos]) + text + string(rs[pos:])
	case AfterWord:
		stem = insertAround(stem, p.Word, text, true)
	case BeforeWord:
		stem = insertAround(stem, p.Word, text, false)
	}
	return stem + ext
}

// insertAround inserts text next to every non-overlapping occurrence of word.
func insertAround(s, word, text string, after bool) string {
	if word == "" {
		return s
	}
	var b strings.Builder
	for {
		i := strings.Index(s, word)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		if after {
			b.WriteString(s[:i+len(word)])
			b.WriteString(text)
		} else {
			b.WriteString(s[:i])
			b.WriteString(text)
			b.WriteString(word)
		}
		s = s[i+len(word):]
	}
}

// describe renders the placement as the tail of a rule description.
func (p Placement) describe() string {
	switch p.Where {
	case AsPrefix:
		if p.KeepHidden {
			return "as prefix keeping hidden files"
		}
		return "as prefix"
	case AsSuffix:
		return "as suffix " + extensionScope(p.SkipExt)
	case AtPosition:
		s := fmt.Sprintf("at %d", p.At)
		if p.Reverse {
			s += " counting from right to left"
		}
		return s + " " + extensionScope(p.SkipExt)
	case AfterWord:
		return fmt.Sprintf("after `%s' %s", p.Word, extensionScope(p.SkipExt))
	case BeforeWord:
		return fmt.Sprintf("before `%s' %s", p.Word, extensionScope(p.SkipExt))
	}
	return ""
}

// placementCommands builds the placement part of a command table. noun names
// what gets inserted ("text", "numbers"); with wraps an updated placement
// into a new rule of the caller's kind.
func placementCommands(p Placement, noun string, with func(Placement) Rule) []Command {
	set := func(fn func(*Placement)) Rule {
		q := p
		fn(&q)
		return with(q)
	}
	notForPrefix := func(cmd string) string {
		if p.Where == AsPrefix {
			return fmt.Sprintf("`%s' is not meaningful with `as prefix'", cmd)
		}
		return ""
	}
	onlyForAt := func(cmd string) string {
		if p.Where != AtPosition {
			return fmt.Sprintf("`%s' is meaningful only with `at'", cmd)
		}
		return ""
	}

	return []Command{
		{
			Spec: "as prefix",
			Help: "prepend",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Placement) { q.Where = AsPrefix }), Message: noun + " will be prepended"}, nil
			},
		},
		{
			Spec: "as suffix",
			Help: "append",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Placement) { q.Where = AsSuffix }), Message: noun + " will be appended"}, nil
			},
		},
		{
			Spec: "keep hidden",
			Help: "prepend after the leading dot of hidden files",
			Run: func([]string) (Result, error) {
				w := ""
				if p.Where != AsPrefix {
					w = "`keep hidden' is meaningful only with `as prefix'"
				}
				return Result{Rule: set(func(q *Placement) { q.KeepHidden = true }), Message: "hidden property will be preserved", Warning: w}, nil
			},
		},
		{
			Spec: "ignore hidden",
			Help: "prepend before the leading dot of hidden files",
			Run: func([]string) (Result, error) {
				w := ""
				if p.Where != AsPrefix {
					w = "`ignore hidden' is meaningful only with `as prefix'"
				}
				return Result{Rule: set(func(q *Placement) { q.KeepHidden = false }), Message: "hidden property will not be preserved", Warning: w}, nil
			},
		},
		{
			Spec: "skip extension",
			Help: "insert before extensions",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Placement) { q.SkipExt = true }), Message: noun + " will be inserted before extensions", Warning: notForPrefix("skip extension")}, nil
			},
		},
		{
			Spec: "include extension",
			Help: "treat extensions as part of the name",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Placement) { q.SkipExt = false }), Message: "extensions will be treated as part of the name", Warning: notForPrefix("include extension")}, nil
			},
		},
		{
			Spec: "at #",
			Help: "insert after <N> characters",
			Run: func(args []string) (Result, error) {
				n, err := parseCount(args[0], "location")
				if err != nil {
					return Result{Rule: set(func(q *Placement) { q.At = 0 })}, err
				}
				return Result{
					Rule:    set(func(q *Placement) { q.Where, q.At = AtPosition, n }),
					Message: fmt.Sprintf("%s will be inserted after %d character%s", noun, n, plural(n)),
				}, nil
			},
		},
		{
			Spec: "left to right",
			Help: "count from left to right (default)",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Placement) { q.Reverse = false }), Message: "characters will be counted from left to right", Warning: onlyForAt("left to right")}, nil
			},
		},
		{
			Spec: "right to left",
			Help: "count from right to left",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Placement) { q.Reverse = true }), Message: "characters will be counted from right to left", Warning: onlyForAt("right to left")}, nil
			},
		},
		{
			Spec: "after $",
			Help: "insert after every occurrence of <WORD>",
			Run: func(args []string) (Result, error) {
				return Result{
					Rule:    set(func(q *Placement) { q.Where, q.Word = AfterWord, args[0] }),
					Message: fmt.Sprintf("%s will be inserted after every `%s'", noun, args[0]),
				}, nil
			},
		},
		{
			Spec: "before $",
			Help: "insert before every occurrence of <WORD>",
			Run: func(args []string) (Result, error) {
				return Result{
					Rule:    set(func(q *Placement) { q.Where, q.Word = BeforeWord, args[0] }),
					Message: fmt.Sprintf("%s will be inserted before every `%s'", noun, args[0]),
				}, nil
			},
		},
	}
}
