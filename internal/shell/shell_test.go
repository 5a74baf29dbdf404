package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/backmassage/batchren/internal/config"
	"github.com/backmassage/batchren/internal/fsys"
	"github.com/backmassage/batchren/internal/logging"
	"github.com/backmassage/batchren/internal/naming"
	"github.com/backmassage/batchren/internal/term"
)

func init() { term.Configure(config.ColorNever, &bytes.Buffer{}) }

type harness struct {
	s      *Session
	fs     *fsys.Mem
	out    *bytes.Buffer
	errOut *bytes.Buffer
	prompt *bytes.Buffer
}

func newHarness(t *testing.T, dryRun bool, files ...string) *harness {
	t.Helper()
	h := &harness{fs: fsys.NewMem(), out: &bytes.Buffer{}, errOut: &bytes.Buffer{}, prompt: &bytes.Buffer{}}
	batch := make(naming.Batch, len(files))
	for i, f := range files {
		batch[i] = naming.NewRecord("d", f)
		h.fs.Add(batch[i].Full())
	}
	cfg := config.DefaultConfig()
	log, err := logging.NewLogger(&cfg, h.out, h.errOut)
	require.NoError(t, err)
	h.s, err = New(batch, Options{FS: h.fs, Log: log, Prompt: h.prompt, DryRun: dryRun})
	require.NoError(t, err)
	return h
}

func (h *harness) exec(line string) {
	h.s.Exec(context.Background(), line)
}

func full(name string) string {
	return naming.NewRecord("d", name).Full()
}

func TestNewRejectsEmptyBatch(t *testing.T) {
	_, err := New(nil, Options{})
	assert.Error(t, err)
}

func TestEditAppendAndRename(t *testing.T) {
	h := newHarness(t, false, "a.txt", "b.txt")

	h.exec("#case uppercase done")
	assert.Nil(t, h.s.edit)
	assert.Equal(t, 1, h.s.chain.Len())
	assert.Contains(t, h.out.String(), "entering `#case'")
	assert.Contains(t, h.out.String(), full("a.txt")+" | "+full("A.txt"))

	h.exec("rename")
	assert.Equal(t, []string{full("A.txt"), full("B.txt")}, h.fs.Paths())
	assert.Contains(t, h.out.String(), "2 files successfully renamed")
	assert.True(t, h.s.dirty)
	assert.Empty(t, h.errOut.String())
}

func TestDirtySessionRequiresReset(t *testing.T) {
	h := newHarness(t, false, "a.txt")
	h.exec("#case uppercase done rename")
	require.True(t, h.s.dirty)

	h.out.Reset()
	h.exec("#insert")
	assert.Nil(t, h.s.edit)
	h.exec("rename")
	h.exec("drop 1")
	assert.Equal(t, 3, strings.Count(h.out.String(), "you need to `reset'"))
	assert.Equal(t, []string{full("A.txt")}, h.fs.Paths())

	h.exec("reset")
	assert.False(t, h.s.dirty)
	assert.Equal(t, 0, h.s.chain.Len())
	assert.Equal(t, []string{"A.txt"}, h.s.chain.Initial().Files())
	assert.Contains(t, h.out.String(), "file list and rules have been reset")

	h.exec("#insert")
	assert.NotNil(t, h.s.edit)
}

func TestResetWithoutRename(t *testing.T) {
	h := newHarness(t, false, "a")
	h.exec("reset")
	assert.Contains(t, h.errOut.String(), "nothing to reset")
}

func TestParseErrors(t *testing.T) {
	h := newHarness(t, false, "a")

	h.exec("frobnicate")
	assert.Contains(t, h.errOut.String(), "invalid command")

	h.errOut.Reset()
	h.exec("move 1")
	assert.Contains(t, h.errOut.String(), "missing arguments")

	h.errOut.Reset()
	h.exec(`#insert insert "x`)
	assert.Contains(t, h.errOut.String(), "unterminated quote")
	assert.Nil(t, h.s.edit)
}

func TestCommandsFollowContextWithinOneLine(t *testing.T) {
	h := newHarness(t, false, "a.txt")
	h.exec(`#insert insert "x-" done #case uppercase done rules`)
	assert.Nil(t, h.s.edit)
	require.Equal(t, 2, h.s.chain.Len())
	assert.Equal(t, []string{"X-A.txt"}, h.s.chain.Final().Files())
	assert.Contains(t, h.out.String(), "1: #insert")
	assert.Contains(t, h.out.String(), "2: #case")
}

func TestRuleCommandNeedsEditContext(t *testing.T) {
	h := newHarness(t, false, "a")
	h.exec("uppercase")
	assert.Contains(t, h.errOut.String(), "invalid command")
}

func TestCancelDiscardsRule(t *testing.T) {
	h := newHarness(t, false, "a")
	h.exec("#insert insert x cancel")
	assert.Nil(t, h.s.edit)
	assert.Equal(t, 0, h.s.chain.Len())
	assert.Contains(t, h.out.String(), "exiting from `#insert'")

	h.exec("cancel")
	assert.Contains(t, h.out.String(), "no rule being edited")
}

func TestPreviewWhileEditing(t *testing.T) {
	h := newHarness(t, false, "a.txt")
	h.exec("#insert insert x as suffix preview")
	require.NotNil(t, h.s.edit)
	assert.Equal(t, 0, h.s.chain.Len())
	out := h.out.String()
	assert.Contains(t, out, "current rule being edited")
	assert.Contains(t, out, full("a.txt")+" | "+full("ax.txt"))
}

func TestPreviewShowsFindings(t *testing.T) {
	h := newHarness(t, false, "a1", "a2")
	h.exec("#strip digit done")
	assert.Contains(t, h.out.String(), "[!!!]")
	assert.Contains(t, h.errOut.String(), "file names conflict after rename")
}

func TestRenameWhileEditingIsRefused(t *testing.T) {
	h := newHarness(t, false, "a")
	h.exec("#case uppercase rename")
	assert.Contains(t, h.out.String(), "you need to `done' or `cancel'")
	assert.Equal(t, []string{full("a")}, h.fs.Paths())
	assert.False(t, h.s.dirty)
}

func TestRenameSkipsConflicts(t *testing.T) {
	h := newHarness(t, false, "a1", "a2")
	h.exec("#strip digit done rename")
	assert.Equal(t, []string{full("a"), full("a2")}, h.fs.Paths())
	assert.Contains(t, h.out.String(), "[skipped]")
	assert.Contains(t, h.out.String(), "1 files successfully renamed")

	h.exec("reset")
	assert.Equal(t, []string{"a", "a2"}, h.s.chain.Initial().Files())
}

func TestRenameReportsFailures(t *testing.T) {
	h := newHarness(t, false, "a", "b")
	h.fs.FailRename(full("a"), errors.New("permission denied"))
	h.exec("#case uppercase done rename")
	assert.Equal(t, []string{full("B"), full("a")}, h.fs.Paths())
	assert.Contains(t, h.out.String(), "[failed]")
	assert.Contains(t, h.errOut.String(), "permission denied")
	assert.Equal(t, []string{full("a"), full("B")}, h.s.newSet)
}

func TestDryRun(t *testing.T) {
	h := newHarness(t, true, "a.txt")
	h.exec("#case uppercase done rename")
	assert.Equal(t, []string{full("a.txt")}, h.fs.Paths())
	assert.Contains(t, h.out.String(), "1 files would be renamed")
	assert.False(t, h.s.dirty)
}

func TestMoveAndDrop(t *testing.T) {
	h := newHarness(t, false, "a")
	h.exec(`#insert insert 1 done #insert insert 2 done`)
	require.Equal(t, []string{"21a"}, h.s.chain.Final().Files())

	h.exec("move 1 2")
	assert.Equal(t, []string{"12a"}, h.s.chain.Final().Files())

	h.exec("drop 3")
	assert.Contains(t, h.errOut.String(), "invalid rule index")
	h.errOut.Reset()
	h.exec("drop x")
	assert.Contains(t, h.errOut.String(), "invalid rule index")

	h.exec("drop 1")
	assert.Equal(t, []string{"1a"}, h.s.chain.Final().Files())
}

func TestRulesOnEmptyChain(t *testing.T) {
	h := newHarness(t, false, "a")
	h.exec("rules")
	assert.Contains(t, h.out.String(), "no rule in rule chain")
}

func TestInvalidNumberKeepsFallback(t *testing.T) {
	h := newHarness(t, false, "a")
	h.exec("#serialize start x")
	assert.Contains(t, h.errOut.String(), "invalid number")
	require.NotNil(t, h.s.edit)
	h.exec("done")
	assert.Equal(t, []string{"a1"}, h.s.chain.Final().Files())
}

func TestImportReadsThroughFS(t *testing.T) {
	h := newHarness(t, false, "a.txt", "b.txt")
	h.fs.AddText("names.txt", "x\ny\n")
	h.exec("#import import names.txt done")
	assert.Equal(t, []string{"ax.txt", "by.txt"}, h.s.chain.Final().Files())

	h.exec("#import import missing.txt")
	assert.Contains(t, h.errOut.String(), "cannot import `missing.txt'")
}

func TestHelp(t *testing.T) {
	h := newHarness(t, false, "a")
	h.exec("help")
	out := h.out.String()
	assert.Contains(t, out, "Global commands are:")
	assert.Contains(t, out, "move <N> <N>")
	assert.Contains(t, out, "#serialize")

	h.out.Reset()
	h.exec("#insert help")
	out = h.out.String()
	assert.Contains(t, out, "Commands for `#insert' are:")
	assert.Contains(t, out, "insert <TEXT>")
	assert.NotContains(t, out, "Supported rules are:")
}

func TestDescribe(t *testing.T) {
	h := newHarness(t, false, "a")
	h.exec("describe")
	assert.Contains(t, h.out.String(), "no rule being edited; use `rules'")

	h.exec("#insert insert x describe")
	assert.Contains(t, h.out.String(), "current rule being edited")
	assert.Contains(t, h.out.String(), "`x' will be inserted")
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := newHarness(t, false, "a")
	in := strings.NewReader("#case uppercase\ndone\nquit\n#insert\n")
	require.NoError(t, h.s.Run(context.Background(), in))
	assert.True(t, h.s.Done())
	assert.Nil(t, h.s.edit)
	assert.Equal(t, 1, h.s.chain.Len())
	assert.Contains(t, h.prompt.String(), "#case> ")
}

func TestRunEndOfInput(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := newHarness(t, false, "a")
	require.NoError(t, h.s.Run(context.Background(), strings.NewReader("rules")))
	assert.False(t, h.s.Done())
	assert.Contains(t, h.out.String(), "no rule in rule chain")
}

func TestRunCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := newHarness(t, false, "a")
	assert.ErrorIs(t, h.s.Run(ctx, pr), context.Canceled)
}
