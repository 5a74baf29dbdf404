package rule

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/backmassage/batchren/internal/naming"
)

// Occurrence selects which matches remove and replace affect.
type Occurrence int

const (
	AllOccurrences Occurrence = iota
	FirstOccurrence
	LastOccurrence
)

func (o Occurrence) String() string {
	switch o {
	case FirstOccurrence:
		return "the first occurrence"
	case LastOccurrence:
		return "the last occurrence"
	}
	return "all occurrences"
}

// Match is the search part shared by remove and replace.
type Match struct {
	Find            string
	Occurrence      Occurrence
	CaseInsensitive bool
	SkipExt         bool
}

func defaultMatch() Match {
	return Match{Occurrence: AllOccurrences, SkipExt: true}
}

// substitute replaces the selected matches of m.Find in name with repl. An
// empty Find leaves name unchanged.
func (m Match) substitute(name, repl string) string {
	if m.Find == "" {
		return name
	}
	ext := ""
	if m.SkipExt {
		name, ext = naming.SplitExt(name, naming.NoLimit)
	}
	if !m.CaseInsensitive {
		switch m.Occurrence {
		case FirstOccurrence:
			name = strings.Replace(name, m.Find, repl, 1)
		case LastOccurrence:
			if i := strings.LastIndex(name, m.Find); i >= 0 {
				name = name[:i] + repl + name[i+len(m.Find):]
			}
		default:
			name = strings.ReplaceAll(name, m.Find, repl)
		}
		return name + ext
	}

	quoted := regexp.QuoteMeta(m.Find)
	switch m.Occurrence {
	case FirstOccurrence:
		if loc := regexp.MustCompile("(?i)" + quoted).FindStringIndex(name); loc != nil {
			name = name[:loc[0]] + repl + name[loc[1]:]
		}
	case LastOccurrence:
		// Case folding can change byte lengths, so the last match is found
		// by anchoring at each rune start from the end.
		re := regexp.MustCompile("^(?i:" + quoted + ")")
		for i := len(name); i >= 0; i-- {
			if i < len(name) && !utf8.RuneStart(name[i]) {
				continue
			}
			if loc := re.FindStringIndex(name[i:]); loc != nil {
				name = name[:i] + repl + name[i+loc[1]:]
				break
			}
		}
	default:
		name = regexp.MustCompile("(?i)"+quoted).ReplaceAllLiteralString(name, repl)
	}
	return name + ext
}

func (m Match) describe() string {
	sense := "case sensitively"
	if m.CaseInsensitive {
		sense = "case insensitively"
	}
	return fmt.Sprintf("%s of `%s' %s %s", m.Occurrence, m.Find, sense, extensionScope(m.SkipExt))
}

// matchCommands builds the selector commands shared by remove and replace.
func matchCommands(m Match, with func(Match) Rule) []Command {
	set := func(fn func(*Match)) Rule {
		q := m
		fn(&q)
		return with(q)
	}
	return []Command{
		{
			Spec: "all",
			Help: "affect all occurrences (default)",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Match) { q.Occurrence = AllOccurrences }), Message: "all occurrences will be affected"}, nil
			},
		},
		{
			Spec: "first",
			Help: "affect only the first occurrence",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Match) { q.Occurrence = FirstOccurrence }), Message: "only the first occurrence will be affected"}, nil
			},
		},
		{
			Spec: "last",
			Help: "affect only the last occurrence",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Match) { q.Occurrence = LastOccurrence }), Message: "only the last occurrence will be affected"}, nil
			},
		},
		{
			Spec: "skip extension",
			Help: "keep extensions out of matching (default)",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Match) { q.SkipExt = true }), Message: "extensions will not be affected"}, nil
			},
		},
		{
			Spec: "include extension",
			Help: "treat extensions as part of the name",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Match) { q.SkipExt = false }), Message: "extensions will be treated as part of the name"}, nil
			},
		},
		{
			Spec: "case sensitive",
			Help: "match letter case exactly (default)",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Match) { q.CaseInsensitive = false }), Message: "matching will be case sensitive"}, nil
			},
		},
		{
			Spec: "case insensitive",
			Help: "ignore letter case while matching",
			Run: func([]string) (Result, error) {
				return Result{Rule: set(func(q *Match) { q.CaseInsensitive = true }), Message: "matching will be case insensitive"}, nil
			},
		},
	}
}
