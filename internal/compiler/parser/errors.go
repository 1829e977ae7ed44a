package parser

import "fmt"

// ParseError is a single recoverable parse failure. The parser never
// panics; it accumulates ParseErrors and keeps going.
type ParseError struct {
	Message string
}

func (e ParseError) Error() string { return e.Message }

func newExpectedTokenError(expected, got fmt.Stringer) ParseError {
	return ParseError{Message: fmt.Sprintf("Expected next token to be %s, got %s instead.", expected, got)}
}

func newNoPrefixParseFnError(kind fmt.Stringer) ParseError {
	return ParseError{Message: fmt.Sprintf("No prefix parse function for %s found.", kind)}
}
