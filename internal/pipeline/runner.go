package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/backmassage/batchren/internal/fsys"
	"github.com/backmassage/batchren/internal/logging"
	"github.com/backmassage/batchren/internal/naming"
)

// Outcome is how the rename of one record ended.
type Outcome string

const (
	Renamed   Outcome = "renamed"   // Renamed, or would be in a dry run.
	Unchanged Outcome = "unchanged" // Target equals source; the filesystem is not touched.
	Skipped   Outcome = "skipped"   // Blocked by a finding or by cancellation.
	Failed    Outcome = "failed"    // The filesystem refused the rename.
)

// Result is the outcome of one record.
type Result struct {
	From, To naming.Record
	Report   naming.Report
	Outcome  Outcome
	Err      error
}

// Summary is the outcome of a commit.
type Summary struct {
	Results []Result
	Stats   RunStats
	DryRun  bool
	// Err combines every per-record failure.
	Err error
}

// NewSet returns the path each record ends up at: the target when renamed
// and the source otherwise.
func (s Summary) NewSet() []string {
	out := make([]string, len(s.Results))
	for i, r := range s.Results {
		if r.Outcome == Renamed {
			out[i] = r.To.Full()
		} else {
			out[i] = r.From.Full()
		}
	}
	return out
}

// Commit renames prev[i] to next[i] for every i, in order. Each target is
// validated right before its rename against the paths as they stand at
// that point: the new paths of records already renamed and the original
// paths of the rest. Invalid and conflicting targets are skipped; refrained
// and reserved ones only warn. A failure never stops the batch.
func Commit(ctx context.Context, fs fsys.FS, v *naming.Validator, prev, next naming.Batch, dryRun bool, log *logging.Logger) (Summary, error) {
	if len(prev) != len(next) {
		return Summary{}, fmt.Errorf("commit: %d sources for %d targets", len(prev), len(next))
	}

	sum := Summary{Results: make([]Result, len(prev)), DryRun: dryRun}
	current := prev.Fulls()

	for i := range prev {
		res := Result{From: prev[i], To: next[i], Report: naming.Report{Index: i}}

		switch {
		case ctx.Err() != nil:
			res.Outcome, res.Err = Skipped, ctx.Err()
		case prev[i].Full() == next[i].Full():
			res.Outcome = Unchanged
		default:
			res.Report.Invalid = v.Classify(next[i].File())
			res.Report.Conflict = v.Conflict(siblings(current, i), next[i].Full())
			switch {
			case res.Report.Blocked():
				res.Outcome = Skipped
			case dryRun:
				res.Outcome = Renamed
			default:
				if err := fs.Rename(prev[i].Full(), next[i].Full()); err != nil {
					res.Outcome, res.Err = Failed, err
					sum.Err = multierr.Append(sum.Err, fmt.Errorf("%s: %w", prev[i].Full(), err))
				} else {
					res.Outcome = Renamed
				}
			}
		}

		if res.Outcome == Renamed {
			current[i] = next[i].Full()
		}
		sum.Stats.add(res.Outcome)
		sum.Results[i] = res
		logResult(log, res, dryRun)
	}

	if err := ctx.Err(); err != nil {
		sum.Err = multierr.Append(sum.Err, err)
	}
	return sum, sum.Err
}

// siblings returns every current path except record i's own.
func siblings(current []string, i int) []string {
	out := make([]string, 0, len(current)-1)
	out = append(out, current[:i]...)
	return append(out, current[i+1:]...)
}

func logResult(log *logging.Logger, r Result, dryRun bool) {
	if r.Outcome == Unchanged {
		return
	}
	log.Debug("%s: %s -> %s", r.Outcome, r.From.Full(), r.To.Full())
	fields := []zap.Field{
		zap.String("from", r.From.Full()),
		zap.String("to", r.To.Full()),
		zap.String("outcome", string(r.Outcome)),
		zap.Bool("dry_run", dryRun),
	}
	if r.Err != nil {
		fields = append(fields, zap.Error(r.Err))
	}
	if f := r.Report.Invalid; f != nil {
		fields = append(fields, zap.String("finding", f.Message()))
	}
	if f := r.Report.Conflict; f != nil {
		fields = append(fields, zap.String("conflict", f.Message()))
	}
	log.Record("rename", fields...)
}
