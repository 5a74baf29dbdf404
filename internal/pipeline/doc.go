// Package pipeline builds the initial file list of a rename session and
// commits a planned rename to the filesystem.
//
// Types:
//   - RunStats (Total, Renamed, Unchanged, Skipped, Failed)
//   - Outcome, Result, Summary: per-record and batch results of a commit
//
// Functions:
//   - Discover(cfg, fs) → batch, missing names
//     Read names (from FILE arguments or a -f list), sort them by the
//     configured mode, clean and split each into dir/base, drop ".", "..",
//     missing files and duplicates.
//   - Commit(ctx, fs, validator, prev, next, dryRun, log) → Summary
//     Rename records one at a time in batch order, re-validating each
//     target against the paths that exist at that moment. Failures are
//     per-record and never stop the batch.
package pipeline
