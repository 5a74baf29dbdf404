package command

import "errors"

var (
	ErrUnknownCommand    = errors.New("invalid command")
	ErrAmbiguousCommand  = errors.New("ambiguous command")
	ErrMissingArgument   = errors.New("missing arguments")
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrDuplicateSpec     = errors.New("duplicate command")
)
