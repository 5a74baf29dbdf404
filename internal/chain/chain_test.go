package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/batchren/internal/naming"
	"github.com/backmassage/batchren/internal/rule"
)

func batchOf(files ...string) naming.Batch {
	b := make(naming.Batch, len(files))
	for i, f := range files {
		b[i] = naming.NewRecord("dir", f)
	}
	return b
}

func insert(text string) rule.Rule {
	opts := rule.DefaultInsertOptions()
	opts.Text = text
	return rule.NewInsert(opts)
}

// assertConsistent checks that every stage's result is its rule applied to
// the previous stage's result.
func assertConsistent(t *testing.T, c *Chain) {
	t.Helper()
	prev := c.Initial()
	for i := 1; i <= c.Len(); i++ {
		s, err := c.Stage(i)
		require.NoError(t, err)
		want := s.Rule.Affect(prev)
		assert.Equal(t, want.Files(), s.Result.Files(), "stage %d", i)
		prev = s.Result
	}
	assert.Equal(t, prev.Files(), c.Final().Files())
}

func TestNewRejectsBadBatches(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = New(batchOf("a", "a"))
	assert.ErrorIs(t, err, ErrPrecondition)

	c, err := New(batchOf("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, []string{"a", "b"}, c.Final().Files())
}

func TestAppend(t *testing.T) {
	c, err := New(batchOf("a", "b"))
	require.NoError(t, err)

	require.NoError(t, c.Append("insert", insert("x")))
	require.NoError(t, c.Append("insert", insert("y")))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"yxa", "yxb"}, c.Final().Files())
	assert.Equal(t, []string{"a", "b"}, c.Initial().Files())
	assertConsistent(t, c)

	assert.ErrorIs(t, c.Append("nil", nil), ErrPrecondition)
}

func TestMoveRerunsOrderSensitiveRules(t *testing.T) {
	c, err := New(batchOf("a.txt"))
	require.NoError(t, err)
	require.NoError(t, c.Append("insert", insert("1")))
	require.NoError(t, c.Append("insert", insert("2")))
	require.NoError(t, c.Append("case", rule.NewCase(rule.CaseOptions{Mode: rule.CaseUpper})))

	before := c.Final().Files()
	require.NoError(t, c.Move(2, 1))

	assert.NotEqual(t, before, c.Final().Files())
	assert.Equal(t, []string{"12A.txt"}, c.Final().Files())
	assertConsistent(t, c)

	s, err := c.Stage(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2a.txt"}, s.Result.Files())
}

func TestMoveForward(t *testing.T) {
	c, err := New(batchOf("a"))
	require.NoError(t, err)
	for _, s := range []string{"1", "2", "3"} {
		require.NoError(t, c.Append("insert", insert(s)))
	}
	require.NoError(t, c.Move(1, 3))
	assert.Equal(t, []string{"132a"}, c.Final().Files())
	assertConsistent(t, c)

	require.NoError(t, c.Move(2, 2))
	assert.Equal(t, []string{"132a"}, c.Final().Files())
}

func TestMoveAndDropRange(t *testing.T) {
	c, err := New(batchOf("a"))
	require.NoError(t, err)
	require.NoError(t, c.Append("insert", insert("x")))

	assert.ErrorIs(t, c.Move(0, 1), ErrRange)
	assert.ErrorIs(t, c.Move(1, 2), ErrRange)
	assert.ErrorIs(t, c.Drop(0), ErrRange)
	assert.ErrorIs(t, c.Drop(2), ErrRange)
	assert.Equal(t, 1, c.Len())
}

func TestDrop(t *testing.T) {
	c, err := New(batchOf("a"))
	require.NoError(t, err)
	for _, s := range []string{"1", "2", "3"} {
		require.NoError(t, c.Append("insert", insert(s)))
	}

	require.NoError(t, c.Drop(2))
	assert.Equal(t, []string{"31a"}, c.Final().Files())
	assertConsistent(t, c)

	require.NoError(t, c.Drop(2))
	assert.Equal(t, []string{"1a"}, c.Final().Files())
	assertConsistent(t, c)
}

func TestPeekDoesNotMutate(t *testing.T) {
	c, err := New(batchOf("a"))
	require.NoError(t, err)
	require.NoError(t, c.Append("insert", insert("x")))

	got, err := c.Peek(insert("y"))
	require.NoError(t, err)
	assert.Equal(t, []string{"yxa"}, got.Files())
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []string{"xa"}, c.Final().Files())
}

func TestSetInitialDropsRules(t *testing.T) {
	c, err := New(batchOf("a"))
	require.NoError(t, err)
	require.NoError(t, c.Append("insert", insert("x")))

	require.NoError(t, c.SetInitial(batchOf("b", "c")))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, []string{"b", "c"}, c.Final().Files())

	assert.ErrorIs(t, c.SetInitial(naming.Batch{}), ErrPrecondition)
	assert.Equal(t, []string{"b", "c"}, c.Final().Files())
}

func TestRules(t *testing.T) {
	c, err := New(batchOf("a"))
	require.NoError(t, err)
	require.NoError(t, c.Append("insert", insert("x")))
	require.NoError(t, c.Append("case", rule.NewCase(rule.DefaultCaseOptions())))

	got := c.Rules()
	require.Len(t, got, 2)
	assert.Equal(t, Summary{Index: 1, ID: "insert", Kind: rule.KindInsert, Description: insert("x").Describe()}, got[0])
	assert.Equal(t, rule.KindCase, got[1].Kind)
}

// shrink drops the last record, which no rule may do.
type shrink struct{ rule.Rule }

func (shrink) Kind() rule.Kind { return "shrink" }

func (shrink) Affect(b naming.Batch) naming.Batch { return b[:len(b)-1] }

func TestBrokenRuleIsRejected(t *testing.T) {
	c, err := New(batchOf("a", "b"))
	require.NoError(t, err)
	require.NoError(t, c.Append("insert", insert("x")))

	assert.ErrorIs(t, c.Append("shrink", shrink{}), ErrPrecondition)
	assert.Equal(t, 1, c.Len())
	assertConsistent(t, c)

	_, err = c.Peek(shrink{})
	assert.ErrorIs(t, err, ErrPrecondition)
}
