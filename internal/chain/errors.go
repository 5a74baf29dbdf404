package chain

import "errors"

var (
	// ErrPrecondition reports an unacceptable input: an empty or duplicated
	// initial batch, a nil rule, or a rule that changed the record count or
	// a record's directory.
	ErrPrecondition = errors.New("precondition failed")
	// ErrRange reports a stage index outside the chain.
	ErrRange = errors.New("index out of range")
)
