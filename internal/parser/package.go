package parser

import (
	"minipy/internal/ast"
	"minipy/token"
)

// Tokenize returns the primitive tokens of source, without INDENT/DEDENT and
// without the trailing EOF, along with every lexical error.
func Tokenize(source string) ([]token.Token, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()
	return tokens, scanner.Errors()
}

// TokenizeIndented returns the token stream the parser consumes, with
// INDENT/DEDENT interleaved. The trailing EOF is not included.
func TokenizeIndented(source string) ([]token.Token, []ScanError, []IndentError) {
	scanner := NewScanner(source)
	filter := NewIndentFilter(source, scanner)

	var tokens []token.Token
	for {
		tok := filter.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, scanner.Errors(), filter.IndentErrors()
}

// ParseSource runs a fresh scanner, indentation filter and parser over
// source. The program is nil unless parsing succeeded; at most one syntax
// error is returned. Lexical errors cover the whole input even when parsing
// stopped early.
func ParseSource(path string, source string) (*ast.Program, []ParseError, []ScanError) {
	scanner := NewNamedScanner(path, source)
	filter := NewIndentFilter(source, scanner)

	parser := NewParser(path, filter)
	program := parser.ParseProgram()

	for scanner.Next().Kind != token.EOF {
	}

	return program, parser.errors, scanner.errors
}
