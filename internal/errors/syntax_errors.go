package errors

import (
	"fmt"
	"strings"

	"minipy/internal/parser"
	"minipy/token"
)

// ErrorBuilder provides a fluent interface for creating diagnostics with suggestions
type ErrorBuilder struct {
	err CompilerError
}

func NewError(code, message string, pos token.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion that shows the text to write instead
func (b *ErrorBuilder) WithReplacement(message, replacement string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// FromScanError converts a lexical error.
func FromScanError(se parser.ScanError) CompilerError {
	return NewError(ErrorIllegalCharacter, se.Message, se.Position).
		WithLength(se.Length).
		WithHelp("remove the character, or put it inside a string literal").
		Build()
}

// FromParseError converts the syntax error of a rejected parse.
func FromParseError(pe parser.ParseError) CompilerError {
	switch {
	case pe.Context == "indentation":
		return NewError(ErrorInconsistentDedent, pe.Message, pe.Position).
			WithNote("a dedent must return to the width of an enclosing block").
			WithHelp("tabs count as four spaces; make the indentation match an outer level").
			Build()

	case pe.AtEOF:
		builder := NewError(ErrorUnexpectedEOF, pe.Message, pe.Position).
			WithSuggestion("close any open '(' and end the last statement with a line break")
		if pe.Context == "function definition" {
			builder = builder.WithHelp(functionShapeHelp)
		}
		return builder.Build()
	}

	builder := NewError(ErrorUnexpectedToken, pe.Message, pe.Position).
		WithLength(max(1, len(pe.Text)))
	if pe.Kind == token.NEWLINE || pe.Kind == token.INDENT || pe.Kind == token.DEDENT {
		builder = builder.WithLength(1)
	}

	switch {
	case pe.Context == "function definition":
		builder = builder.
			WithReplacement("write the definition with exactly two parameters", "def name(a, b):\n    ...").
			WithHelp(functionShapeHelp)
	case pe.Kind == token.IF:
		builder = builder.WithNote("'if' is reserved but conditional statements are not supported")
	case pe.Kind == token.INDENT:
		builder = builder.WithNote("only a function body may be indented")
	case pe.Kind.IsKeyword() && pe.Kind != token.IF:
		builder = builder.WithNote(fmt.Sprintf("'%s' is a reserved word", pe.Text))
	}
	return builder.Build()
}

// FromIndentError converts an inconsistent dedent reported by the indentation filter.
func FromIndentError(ie parser.IndentError) CompilerError {
	return FromParseError(parser.ParseError{
		Message:  ie.Message,
		Position: ie.Position,
		Kind:     token.DEDENT,
		Context:  "indentation",
	})
}

const functionShapeHelp = "function definitions take exactly two parameters: def name(a, b): followed by an indented body"

// Collect converts all diagnostics of a parse, lexical errors first.
func Collect(scanErrors []parser.ScanError, parseErrors []parser.ParseError) []CompilerError {
	out := make([]CompilerError, 0, len(scanErrors)+len(parseErrors))
	for _, se := range scanErrors {
		out = append(out, FromScanError(se))
	}
	for _, pe := range parseErrors {
		out = append(out, FromParseError(pe))
	}
	return out
}

// Summary joins plain messages, one per line, for log output.
func Summary(errs []CompilerError) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}
