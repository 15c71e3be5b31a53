package parser

import (
	"fmt"
	"os"

	"minipy/internal/ast"
	"minipy/token"
)

// Parser is a recursive-descent parser over an indentation-filtered token
// stream. It stops at the first syntax error; there is no recovery.
type Parser struct {
	filename string
	filter   *IndentFilter
	buf      []token.Token // lookahead, filled on demand
	prev     token.Token
	errors   []ParseError
}

func NewParser(filename string, filter *IndentFilter) *Parser {
	return &Parser{
		filename: filename,
		filter:   filter,
	}
}

// ParseProgram parses one or more statement lines up to end of input. It
// returns nil if a syntax error was found; the error is then available in
// the parser's error list.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.peek()

	stmts, err := p.parseStmtLines(token.EOF, "program")
	if err == nil {
		err = p.checkIndentation()
	}
	if err == nil {
		_, err = p.expect(token.EOF, "program")
	}
	if err != nil {
		p.report(err)
		return nil
	}

	pos := p.makePos(start)
	if len(stmts) > 0 {
		pos = stmts[0].NodePos()
	}
	return &ast.Program{
		Pos:        pos,
		EndPos:     p.makePos(p.prev),
		Statements: stmts,
	}
}

func (p *Parser) Errors() []ParseError {
	return p.errors
}

func (p *Parser) report(err error) {
	if perr, ok := err.(*ParseError); ok {
		p.errors = append(p.errors, *perr)
		return
	}
	p.errors = append(p.errors, ParseError{Message: err.Error()})
}

func ParseFile(path string) (*ast.Program, []ParseError, []ScanError, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	program, parseErrors, scanErrors := ParseSource(path, string(source))
	return program, parseErrors, scanErrors, nil
}
