package naming

import "fmt"

// Report is the validation outcome for one record of a proposed rename.
type Report struct {
	Index    int
	Invalid  *Finding // First finding from Classify on the target base name.
	Conflict *Finding // Non-nil when the target collides with a sibling path.
}

// Blocked reports whether the record must not be renamed.
func (r Report) Blocked() bool {
	return r.Invalid.Blocks() || r.Conflict.Blocks()
}

// Siblings returns the paths record i's target must not collide with when
// renames run sequentially in batch order: the targets of records already
// processed (next[:i]) and the sources of records not yet processed
// (prev[i+1:]). Record i itself is excluded on both sides.
func Siblings(prev, next Batch, i int) []string {
	out := make([]string, 0, len(prev)-1)
	for j := 0; j < i; j++ {
		out = append(out, next[j].Full())
	}
	for j := i + 1; j < len(prev); j++ {
		out = append(out, prev[j].Full())
	}
	return out
}

// Check validates every target name of next against v, composing the
// sibling set per record with [Siblings]. prev and next must be the same
// length; prev holds the names on disk, next the proposed ones.
func Check(v *Validator, prev, next Batch) ([]Report, error) {
	if len(prev) != len(next) {
		return nil, fmt.Errorf("batch length mismatch: %d names on disk, %d proposed", len(prev), len(next))
	}
	reports := make([]Report, len(next))
	for i := range next {
		reports[i] = Report{
			Index:    i,
			Invalid:  v.Classify(next[i].File()),
			Conflict: v.Conflict(Siblings(prev, next, i), next[i].Full()),
		}
	}
	return reports, nil
}
