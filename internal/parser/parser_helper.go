package parser

import (
	"fmt"

	"minipy/internal/ast"
	"minipy/token"
)

func (p *Parser) fill(n int) {
	for len(p.buf) < n {
		p.buf = append(p.buf, p.filter.Next())
	}
}

func (p *Parser) peek() token.Token {
	p.fill(1)
	return p.buf[0]
}

func (p *Parser) peekAt(n int) token.Token {
	p.fill(n + 1)
	return p.buf[n]
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.buf = p.buf[1:]
	}
	p.prev = tok
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind token.Kind, context string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(p.peek(), context)
}

// expectSeq consumes the given kinds in order.
func (p *Parser) expectSeq(context string, kinds ...token.Kind) ([]token.Token, error) {
	toks := make([]token.Token, 0, len(kinds))
	for _, kind := range kinds {
		tok, err := p.expect(kind, context)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func (p *Parser) unexpected(tok token.Token, context string) *ParseError {
	if tok.Kind == token.EOF {
		return &ParseError{
			Message:  "unexpected end of input",
			Position: tok.Pos,
			Kind:     token.EOF,
			Context:  context,
			AtEOF:    true,
		}
	}
	return &ParseError{
		Message:  fmt.Sprintf("unexpected token '%s' (%s) at line %d", tok.Display(), tok.Kind, tok.Line()),
		Position: tok.Pos,
		Kind:     tok.Kind,
		Text:     tok.Display(),
		Context:  context,
	}
}

// checkIndentation turns the first inconsistent dedent into a syntax error.
func (p *Parser) checkIndentation() error {
	errs := p.filter.IndentErrors()
	if len(errs) == 0 {
		return nil
	}
	return &ParseError{
		Message:  errs[0].Message,
		Position: errs[0].Position,
		Kind:     token.DEDENT,
		Text:     fmt.Sprint(errs[0].Width),
		Context:  "indentation",
	}
}

func (p *Parser) makePos(tok token.Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Pos.Offset,
		Line:     tok.Pos.Line,
		Column:   tok.Pos.Column,
	}
}

func (p *Parser) makeEndPos(tok token.Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Pos.Offset + len(tok.Text),
		Line:     tok.Pos.Line,
		Column:   tok.Pos.Column + len(tok.Text),
	}
}

func (p *Parser) makeIdent(tok token.Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Text,
	}
}
