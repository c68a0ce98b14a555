package parser

import "fmt"

// ParseError is a fatal, positioned failure to split a script. Splitting is
// deterministic, so the same input always fails the same way.
type ParseError struct {
	Pos Position
	Msg string
}

func newParseError(pos Position, format string, a ...any) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, a...)}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}
