package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/backmassage/batchren/internal/config"
	"github.com/backmassage/batchren/internal/term"
)

func newTestLogger(t *testing.T, cfg config.Config) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	term.Configure(config.ColorNever, &bytes.Buffer{})
	var out, errOut bytes.Buffer
	l, err := NewLogger(&cfg, &out, &errOut)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = l.Close() })
	return l, &out, &errOut
}

func TestConsoleStreams(t *testing.T) {
	l, out, errOut := newTestLogger(t, config.DefaultConfig())
	l.Out("plain %d", 1)
	l.Success("done")
	l.Warn("careful")
	l.Error("broken")
	l.Debug("hidden")

	if got, want := out.String(), "plain 1\ndone\ncareful\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got := errOut.String(); got != "broken\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestDebugWhenVerbose(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Verbose = true
	l, out, _ := newTestLogger(t, cfg)
	l.Debug("x=%d", 3)
	if !strings.Contains(out.String(), "debug: x=3") {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestFileSink(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "batchren.log")
	l, _, _ := newTestLogger(t, cfg)

	l.Info("to file")
	l.Debug("not at info level")
	l.Error("failure")
	l.Record("renamed", zap.String("from", "a"), zap.String("to", "b"))
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var entries []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e map[string]any
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("line %q is not JSON: %v", sc.Text(), err)
		}
		entries = append(entries, e)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %v", len(entries), entries)
	}
	if entries[0]["msg"] != "to file" || entries[0]["level"] != "info" {
		t.Errorf("entry 0 = %v", entries[0])
	}
	if entries[1]["level"] != "error" {
		t.Errorf("entry 1 = %v", entries[1])
	}
	if entries[2]["from"] != "a" || entries[2]["to"] != "b" {
		t.Errorf("entry 2 = %v", entries[2])
	}
	if _, ok := entries[0]["ts"]; !ok {
		t.Error("entries carry no timestamp")
	}
}
