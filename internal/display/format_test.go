package display

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/backmassage/batchren/internal/chain"
	"github.com/backmassage/batchren/internal/config"
	"github.com/backmassage/batchren/internal/naming"
	"github.com/backmassage/batchren/internal/rule"
	"github.com/backmassage/batchren/internal/term"
)

// recorder captures printed lines prefixed by their level.
type recorder struct{ lines []string }

func (r *recorder) Out(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recorder) Warn(format string, args ...interface{}) {
	r.lines = append(r.lines, "W "+fmt.Sprintf(format, args...))
}

func (r *recorder) Error(format string, args ...interface{}) {
	r.lines = append(r.lines, "E "+fmt.Sprintf(format, args...))
}

func init() { term.Configure(config.ColorNever, &bytes.Buffer{}) }

func TestPad(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"right", PadRight("ab", 2, 4), "ab  "},
		{"right wide chars", PadRight("日本", Width("日本"), 5), "日本 "},
		{"right no room", PadRight("abcdef", 6, 3), "abcdef"},
		{"left", PadLeft("7", 1, 3), "  7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestDigitWidth(t *testing.T) {
	for n, want := range map[int]int{0: 1, 9: 1, 10: 2, 999: 3, 1000: 4} {
		if got := DigitWidth(n); got != want {
			t.Errorf("DigitWidth(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestTable(t *testing.T) {
	v := naming.NewValidator(naming.ProfileUnix)
	prev := naming.Batch{naming.NewRecord("d", "a"), naming.NewRecord("d", "bb"), naming.NewRecord("d", "c")}
	next := naming.Batch{naming.NewRecord("d", "x?"), naming.NewRecord("d", "c"), naming.NewRecord("d", "z")}
	reports, err := naming.Check(v, prev, next)
	if err != nil {
		t.Fatal(err)
	}

	var r recorder
	Table(&r, Rows(prev, next, reports))

	sep := naming.Separator
	want := []string{
		"d" + sep + "a  | d" + sep + "x? [!!!]",
		"W " + reports[0].Invalid.Message(),
		"d" + sep + "bb | d" + sep + "c [!!!]",
		"E " + reports[1].Conflict.Message(),
		"d" + sep + "c  | d" + sep + "z",
		"",
	}
	if strings.Join(r.lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("got\n%s\nwant\n%s", strings.Join(r.lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestTableStatus(t *testing.T) {
	rows := []Row{
		{From: naming.NewRecord("d", "a"), To: naming.NewRecord("d", "b"), Status: StatusOK},
		{From: naming.NewRecord("d", "c"), To: naming.NewRecord("d", "dd"), Status: StatusSkipped},
	}
	var r recorder
	Table(&r, rows)
	sep := naming.Separator
	if got, want := r.lines[0], "d"+sep+"a | d"+sep+"b  [ok]"; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
	if got, want := r.lines[1], "d"+sep+"c | d"+sep+"dd [skipped]"; got != want {
		t.Errorf("row 1 = %q, want %q", got, want)
	}
}

func TestTableFailure(t *testing.T) {
	rows := []Row{{
		From:   naming.NewRecord("d", "a"),
		To:     naming.NewRecord("d", "b"),
		Status: StatusFailed,
		Err:    fmt.Errorf("permission denied"),
	}}
	var r recorder
	Table(&r, rows)
	if len(r.lines) != 3 || r.lines[1] != "E permission denied" {
		t.Errorf("lines = %q", r.lines)
	}
}

func TestRuleList(t *testing.T) {
	rules := make([]chain.Summary, 10)
	for i := range rules {
		rules[i] = chain.Summary{Index: i + 1, Kind: rule.KindCase, Description: "d"}
	}
	rules[9].Kind = rule.KindSerialize

	var r recorder
	RuleList(&r, rules)
	if got, want := r.lines[0], " 1: #case      ( d )"; got != want {
		t.Errorf("line 0 = %q, want %q", got, want)
	}
	if got, want := r.lines[9], "10: #serialize ( d )"; got != want {
		t.Errorf("line 9 = %q, want %q", got, want)
	}
}

func TestHelpList(t *testing.T) {
	var r recorder
	HelpList(&r, "Commands are:", []HelpEntry{{"at #", "x"}, {"as prefix", "y"}})
	if got, want := r.lines[1], "  at #         x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := r.lines[2], "  as prefix    y"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
