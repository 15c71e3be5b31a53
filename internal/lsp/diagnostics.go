package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"minipy/internal/errors"
	"minipy/internal/parser"
	"minipy/token"
)

// ConvertParseErrors transforms syntax errors into LSP diagnostics. The range
// covers the offending token; end-of-input errors get an empty range.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		length := len(parseErr.Text)
		if parseErr.AtEOF {
			length = 0
		} else if parseErr.Kind == token.NEWLINE || parseErr.Kind == token.INDENT || parseErr.Kind == token.DEDENT || length == 0 {
			length = 1
		}
		diagnostics = append(diagnostics, toDiagnostic(errors.FromParseError(parseErr), length, "minipy-parser"))
	}

	return diagnostics
}

// ConvertScanErrors transforms illegal-character errors into LSP diagnostics.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		length := scanErr.Length
		if length == 0 {
			length = 1
		}
		diagnostics = append(diagnostics, toDiagnostic(errors.FromScanError(scanErr), length, "minipy-scanner"))
	}

	return diagnostics
}

func toDiagnostic(err errors.CompilerError, length int, source string) protocol.Diagnostic {
	line := uint32(max(0, err.Position.Line-1))   // Convert to 0-based indexing
	char := uint32(max(0, err.Position.Column-1)) // Convert to 0-based indexing

	message := err.Message
	if err.HelpText != "" {
		message += "\nhelp: " + err.HelpText
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: char},
			End:   protocol.Position{Line: line, Character: char + uint32(length)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: err.Code},
		Source:   ptrString(source),
		Message:  message,
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
