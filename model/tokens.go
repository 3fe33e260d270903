package model

import (
	"errors"
	"math"
	"strconv"
)

// parseUint parses a non-negative wire integer.
func parseUint(field, tok string) (int, error) {
	v, err := strconv.ParseUint(tok, 10, 31)
	if err != nil {
		return 0, &ParseError{Field: field, Token: tok, Err: err}
	}
	return int(v), nil
}

// parseInt parses a signed wire integer such as a velocity component.
func parseInt(field, tok string) (int, error) {
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, &ParseError{Field: field, Token: tok, Err: err}
	}
	return int(v), nil
}

// unknownCode stands in for classification codes that do not fit in an int.
// It is nonzero and no mapping knows it, so it lands on the default tag.
const unknownCode = -1

// parseCode parses a classification code. Any well-formed integer is
// accepted, however large; only malformed tokens are errors.
func parseCode(field, tok string) (int, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return unknownCode, nil
	}
	if err != nil {
		return 0, &ParseError{Field: field, Token: tok, Err: err}
	}
	if v < math.MinInt || v > math.MaxInt {
		return unknownCode, nil
	}
	return int(v), nil
}

// ParseCount reads a line holding a single non-negative integer, such as the
// entity count or heroes per player.
func ParseCount(field string, tokens []string) (int, error) {
	if len(tokens) != 1 {
		return 0, arityError(field, len(tokens), 1)
	}
	return parseUint(field, tokens[0])
}
