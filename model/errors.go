package model

import (
	"errors"
	"fmt"
)

// ErrProtocolViolation marks input that does not match the judge protocol.
// The judge cannot re-send a line, so callers treat it as fatal.
var ErrProtocolViolation = errors.New("protocol violation")

// ParseError describes the first token (or token count) that failed to parse.
type ParseError struct {
	Field string // e.g. "unit.health", "base.mana"
	Token string // offending token, empty for arity errors
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %q: %v", e.Field, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrProtocolViolation.
func (e *ParseError) Is(target error) bool { return target == ErrProtocolViolation }

func arityError(kind string, got, want int) error {
	return &ParseError{
		Field: kind,
		Err:   fmt.Errorf("got %d tokens, want %d", got, want),
	}
}
