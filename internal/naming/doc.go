// Package naming holds the per-file data a rename batch is built from and
// the checks every proposed name must pass before a rename is committed.
//
// Types:
//   - Record: directory, base name and the derived full path / display form
//   - Batch: the ordered records one pipeline stage owns
//   - Validator: per-profile name classification (invalid, reserved,
//     refrained) and conflict detection
//   - Report: the findings for one record of a proposed rename
//
// Functions:
//   - SplitExt(name, limit) → stem, extension
//   - Siblings(prev, next, i) → paths record i must not collide with
//   - Check(validator, prev, next) → one Report per record
package naming
