// Package chain holds the ordered rule pipeline of a rename session.
//
// Stage 0 is the identity stage owning the initial batch. Each later stage
// owns one rule and the batch that rule produced from its predecessor's
// result. Any mutation re-runs every stage from the first affected index
// onward, so the final batch always equals the rules applied in order to the
// initial batch.
package chain

import (
	"fmt"

	"github.com/backmassage/batchren/internal/naming"
	"github.com/backmassage/batchren/internal/rule"
)

// Stage is one step of the chain. Rule is nil for the identity stage.
type Stage struct {
	ID     string
	Rule   rule.Rule
	Result naming.Batch
}

// Summary describes one rule stage for listing.
type Summary struct {
	Index       int
	ID          string
	Kind        rule.Kind
	Description string
}

// Chain is the ordered rule pipeline. The zero value is not usable; call New.
type Chain struct {
	stages []Stage
}

// New returns a chain whose identity stage owns batch.
func New(batch naming.Batch) (*Chain, error) {
	if err := checkInitial(batch); err != nil {
		return nil, err
	}
	return &Chain{stages: []Stage{{Result: batch.Clone()}}}, nil
}

func checkInitial(batch naming.Batch) error {
	if len(batch) == 0 {
		return fmt.Errorf("empty batch: %w", ErrPrecondition)
	}
	seen := make(map[string]struct{}, len(batch))
	for _, r := range batch {
		if _, dup := seen[r.Full()]; dup {
			return fmt.Errorf("duplicate file %s: %w", r.Full(), ErrPrecondition)
		}
		seen[r.Full()] = struct{}{}
	}
	return nil
}

// Len returns the number of rule stages, excluding the identity stage.
func (c *Chain) Len() int { return len(c.stages) - 1 }

// Initial returns the batch owned by the identity stage.
func (c *Chain) Initial() naming.Batch { return c.stages[0].Result.Clone() }

// Final returns the batch produced by the last stage.
func (c *Chain) Final() naming.Batch { return c.stages[len(c.stages)-1].Result.Clone() }

// Stage returns rule stage i, counted from 1.
func (c *Chain) Stage(i int) (Stage, error) {
	if i < 1 || i > c.Len() {
		return Stage{}, fmt.Errorf("stage %d of %d: %w", i, c.Len(), ErrRange)
	}
	s := c.stages[i]
	s.Result = s.Result.Clone()
	return s, nil
}

// SetInitial replaces the identity stage's batch and drops every rule.
func (c *Chain) SetInitial(batch naming.Batch) error {
	if err := checkInitial(batch); err != nil {
		return err
	}
	c.stages = []Stage{{Result: batch.Clone()}}
	return nil
}

// Append adds r as the last stage.
func (c *Chain) Append(id string, r rule.Rule) error {
	if r == nil {
		return fmt.Errorf("nil rule: %w", ErrPrecondition)
	}
	c.stages = append(c.stages, Stage{ID: id, Rule: r})
	return c.rerun(len(c.stages) - 1)
}

// Move relocates rule stage from to position to, both counted from 1.
func (c *Chain) Move(from, to int) error {
	n := c.Len()
	if from < 1 || from > n || to < 1 || to > n {
		return fmt.Errorf("move %d to %d of %d: %w", from, to, n, ErrRange)
	}
	if from == to {
		return nil
	}
	s := c.stages[from]
	c.stages = append(c.stages[:from], c.stages[from+1:]...)
	c.stages = append(c.stages[:to], append([]Stage{s}, c.stages[to:]...)...)
	return c.rerun(min(from, to))
}

// Drop removes rule stage i, counted from 1.
func (c *Chain) Drop(i int) error {
	if i < 1 || i > c.Len() {
		return fmt.Errorf("drop %d of %d: %w", i, c.Len(), ErrRange)
	}
	c.stages = append(c.stages[:i], c.stages[i+1:]...)
	return c.rerun(i)
}

// Peek applies r to the final batch without adding it to the chain.
func (c *Chain) Peek(r rule.Rule) (naming.Batch, error) {
	if r == nil {
		return nil, fmt.Errorf("nil rule: %w", ErrPrecondition)
	}
	in := c.stages[len(c.stages)-1].Result
	out := r.Affect(in.Clone())
	if err := verify(r, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Rules summarizes every rule stage in order.
func (c *Chain) Rules() []Summary {
	out := make([]Summary, 0, c.Len())
	for i, s := range c.stages[1:] {
		out = append(out, Summary{
			Index:       i + 1,
			ID:          s.ID,
			Kind:        s.Rule.Kind(),
			Description: s.Rule.Describe(),
		})
	}
	return out
}

// rerun recomputes every stage from idx onward. On failure the offending
// stage is removed so the chain stays consistent.
func (c *Chain) rerun(idx int) error {
	for i := idx; i < len(c.stages); i++ {
		in := c.stages[i-1].Result
		out := c.stages[i].Rule.Affect(in.Clone())
		if err := verify(c.stages[i].Rule, in, out); err != nil {
			c.stages = append(c.stages[:i], c.stages[i+1:]...)
			if rerr := c.rerun(i); rerr != nil {
				return rerr
			}
			return fmt.Errorf("stage %d: %w", i, err)
		}
		c.stages[i].Result = out
	}
	return nil
}

func verify(r rule.Rule, in, out naming.Batch) error {
	if len(in) != len(out) {
		return fmt.Errorf("%s produced %d records from %d: %w", r.Kind(), len(out), len(in), ErrPrecondition)
	}
	for i := range in {
		if in[i].Dir() != out[i].Dir() {
			return fmt.Errorf("%s moved record %d out of %s: %w", r.Kind(), i, in[i].Dir(), ErrPrecondition)
		}
	}
	return nil
}
