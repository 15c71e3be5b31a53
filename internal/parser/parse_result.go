package parser

import "minipy/internal/ast"

type Status int

const (
	Accepted Status = iota
	Rejected
)

func (s Status) String() string {
	if s == Accepted {
		return "accepted"
	}
	return "rejected"
}

// ParseResult is the outcome of one parse attempt. Program is set only when
// Status is Accepted.
type ParseResult struct {
	Status      Status
	Program     *ast.Program
	ParseErrors []ParseError
	ScanErrors  []ScanError
}

// Parse is ParseSource as a single result value. A source with lexical errors
// is rejected even if the remaining tokens form a valid program.
func Parse(path string, source string) *ParseResult {
	program, parseErrors, scanErrors := ParseSource(path, source)

	result := &ParseResult{
		Status:      Accepted,
		Program:     program,
		ParseErrors: parseErrors,
		ScanErrors:  scanErrors,
	}
	if program == nil || len(scanErrors) > 0 {
		result.Status = Rejected
		result.Program = nil
	}
	return result
}

// Accepted reports whether the source was lexically and syntactically valid.
func (pr *ParseResult) Accepted() bool {
	return pr.Status == Accepted
}

// FirstError returns the syntax error that stopped the parse, if any.
func (pr *ParseResult) FirstError() *ParseError {
	if len(pr.ParseErrors) == 0 {
		return nil
	}
	return &pr.ParseErrors[0]
}

// StoppedAtEOF reports whether the parse was rejected because input ran out,
// as opposed to stopping at an unexpected token.
func (pr *ParseResult) StoppedAtEOF() bool {
	err := pr.FirstError()
	return err != nil && err.AtEOF
}
