package errors

// Error codes for the minipy front end.
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Lexer and parser errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0101: Character that starts no token
	ErrorIllegalCharacter = "E0101"

	// E0102: Token the grammar cannot accept at this point
	ErrorUnexpectedToken = "E0102"

	// E0103: Input ended inside a statement or block
	ErrorUnexpectedEOF = "E0103"

	// E0104: Dedent to a width no enclosing block uses
	ErrorInconsistentDedent = "E0104"
)

// codeDescriptions backs Describe, used by `minipy-cli explain`.
var codeDescriptions = map[string]string{
	ErrorIllegalCharacter:   "a character that cannot start any token; it is skipped and reported",
	ErrorUnexpectedToken:    "a token the grammar does not accept at this position",
	ErrorUnexpectedEOF:      "the input ended before the current statement or block was complete",
	ErrorInconsistentDedent: "a line is indented less than its block but not to the width of any enclosing block",
}

// Describe returns a one-line explanation of an error code.
func Describe(code string) (string, bool) {
	d, ok := codeDescriptions[code]
	return d, ok
}

// Codes lists every error code in ascending order.
func Codes() []string {
	return []string{
		ErrorIllegalCharacter,
		ErrorUnexpectedToken,
		ErrorUnexpectedEOF,
		ErrorInconsistentDedent,
	}
}
