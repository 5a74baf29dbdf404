package rule

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/backmassage/batchren/internal/naming"
)

func batchOf(files ...string) naming.Batch {
	b := make(naming.Batch, len(files))
	for i, f := range files {
		b[i] = naming.NewRecord("dir", f)
	}
	return b
}

// affect applies r to files and returns the resulting base names.
func affect(r Rule, files ...string) []string {
	return r.Affect(batchOf(files...)).Files()
}

// run executes the command of r whose spec matches exactly.
func run(t *testing.T, r Rule, spec string, args ...string) (Result, error) {
	t.Helper()
	for _, c := range r.Commands() {
		if c.Spec == spec {
			return c.Run(args)
		}
	}
	t.Fatalf("%s has no command %q", r.Kind(), spec)
	return Result{}, nil
}

func mustRun(t *testing.T, r Rule, spec string, args ...string) Rule {
	t.Helper()
	res, err := run(t, r, spec, args...)
	if err != nil {
		t.Fatalf("%s: %v", spec, err)
	}
	if res.Rule == nil {
		t.Fatalf("%s returned no rule", spec)
	}
	return res.Rule
}

func TestEveryRulePreservesLengthAndDirectories(t *testing.T) {
	in := naming.Batch{
		naming.NewRecord("a", "one.txt"),
		naming.NewRecord("b", ".hidden"),
		naming.NewRecord("c", "Two Words [x].tar.gz"),
	}
	for _, e := range Builtin(nil).Entries() {
		out := e.New().Affect(in)
		if len(out) != len(in) {
			t.Errorf("%s: got %d records, want %d", e.Kind, len(out), len(in))
			continue
		}
		for i := range in {
			if out[i].Dir() != in[i].Dir() {
				t.Errorf("%s: record %d dir = %q, want %q", e.Kind, i, out[i].Dir(), in[i].Dir())
			}
		}
	}
}

func TestDefaultsLeaveNamesUnchanged(t *testing.T) {
	files := []string{"one.txt", ".hidden", "Mixed Case.tar.gz"}
	for _, kind := range []Kind{KindCase, KindDelete, KindExtension, KindInsert, KindRemove, KindReplace, KindStrip, KindImport} {
		e, ok := Builtin(nil).Lookup(kind)
		if !ok {
			t.Fatalf("%s not registered", kind)
		}
		if diff := cmp.Diff(files, affect(e.New(), files...)); diff != "" {
			t.Errorf("%s default changed names (-want +got):\n%s", kind, diff)
		}
	}
}

func TestCommandsDoNotMutateReceiver(t *testing.T) {
	r := NewInsert(DefaultInsertOptions())
	next := mustRun(t, r, "insert $", "x")
	if r.Options().Text != "" {
		t.Errorf("receiver text = %q after command", r.Options().Text)
	}
	if got := next.(Insert).Options().Text; got != "x" {
		t.Errorf("new rule text = %q, want x", got)
	}
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 102: "102nd"}
	for n, want := range tests {
		if got := ordinal(n); got != want {
			t.Errorf("ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestParseCount(t *testing.T) {
	if n, err := parseCount(" 7 ", "x"); err != nil || n != 7 {
		t.Errorf("parseCount(7) = %d, %v", n, err)
	}
	for _, bad := range []string{"", "-1", "abc", "1.5"} {
		if _, err := parseCount(bad, "x"); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("parseCount(%q) err = %v, want ErrInvalidNumber", bad, err)
		}
	}
	if n, err := parseInteger("-3", "x"); err != nil || n != -3 {
		t.Errorf("parseInteger(-3) = %d, %v", n, err)
	}
}
