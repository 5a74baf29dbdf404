package pipeline

// RunStats tracks aggregate counters across a commit.
type RunStats struct {
	Total     int
	Renamed   int
	Unchanged int
	Skipped   int
	Failed    int
}

// add counts one record by outcome.
func (s *RunStats) add(o Outcome) {
	s.Total++
	switch o {
	case Renamed:
		s.Renamed++
	case Unchanged:
		s.Unchanged++
	case Skipped:
		s.Skipped++
	case Failed:
		s.Failed++
	}
}
