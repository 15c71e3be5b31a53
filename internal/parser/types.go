package parser

import "minipy/token"

// TabWidth is the indentation width a tab character counts for.
const TabWidth = 4

type ScanError struct {
	Message  string
	Position token.Position // line, column, offset
	Length   int            // how many bytes the offending text covers
}

// ParseError is the single syntax diagnostic of a rejected parse.
type ParseError struct {
	Message  string
	Position token.Position
	Kind     token.Kind // kind of the offending token, EOF at end of input
	Text     string     // display text of the offending token
	Context  string     // construct being parsed, e.g. "function definition"
	AtEOF    bool
}

func (e *ParseError) Error() string {
	return e.Message
}

// IndentError records a dedent to a width that matches no open block.
type IndentError struct {
	Message  string
	Position token.Position
	Width    int
}

func (e *IndentError) Error() string {
	return e.Message
}
