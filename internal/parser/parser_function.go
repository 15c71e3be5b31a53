package parser

import (
	"minipy/internal/ast"
	"minipy/token"
)

// parseStmtLines parses one or more statement lines, stopping before end.
// Blank lines are consumed but produce no statement.
func (p *Parser) parseStmtLines(end token.Kind, context string) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for lines := 0; ; lines++ {
		if err := p.checkIndentation(); err != nil {
			return nil, err
		}
		if lines > 0 && p.check(end) {
			return stmts, nil
		}

		stmt, err := p.parseStmtLine(context)
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
}

func (p *Parser) parseStmtLine(context string) (ast.Stmt, error) {
	switch p.peek().Kind {
	case token.NEWLINE:
		p.advance()
		return nil, nil
	case token.DEF:
		return p.parseFunctionDef()
	}

	stmt, err := p.parseSimpleStmt(context)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.NEWLINE, context); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseFunctionDef parses
//
//	def NAME ( NAME , NAME ) : NEWLINE INDENT stmt_line+ DEDENT
//
// Extra NEWLINEs before the INDENT come from comment-only lines.
func (p *Parser) parseFunctionDef() (ast.Stmt, error) {
	const context = "function definition"

	header, err := p.expectSeq(context,
		token.DEF, token.NAME, token.LPAREN,
		token.NAME, token.COMMA, token.NAME,
		token.RPAREN, token.COLON, token.NEWLINE,
	)
	if err != nil {
		return nil, err
	}
	for p.check(token.NEWLINE) {
		p.advance()
	}
	if err := p.checkIndentation(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.INDENT, context); err != nil {
		return nil, err
	}

	body, err := p.parseStmtLines(token.DEDENT, context)
	if err != nil {
		return nil, err
	}
	dedent, err := p.expect(token.DEDENT, context)
	if err != nil {
		return nil, err
	}

	end := p.makePos(dedent)
	if len(body) > 0 {
		end = body[len(body)-1].NodeEndPos()
	}
	return &ast.FunctionDef{
		Pos:    p.makePos(header[0]),
		EndPos: end,
		Name:   p.makeIdent(header[1]),
		Params: [2]ast.Ident{p.makeIdent(header[3]), p.makeIdent(header[5])},
		Body:   body,
	}, nil
}

var assignOperators = map[token.Kind]ast.AssignType{
	token.EQUAL:   ast.ASSIGN,
	token.PLUSEQ:  ast.PLUS_ASSIGN,
	token.MINUSEQ: ast.MINUS_ASSIGN,
}

func (p *Parser) parseSimpleStmt(context string) (ast.Stmt, error) {
	if p.check(token.NAME) {
		if op, ok := assignOperators[p.peekAt(1).Kind]; ok {
			return p.parseAssignStmt(op, context)
		}
	}

	value, err := p.parseExpr(context)
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{
		Pos:    value.NodePos(),
		EndPos: value.NodeEndPos(),
		Value:  value,
	}, nil
}

func (p *Parser) parseAssignStmt(op ast.AssignType, context string) (ast.Stmt, error) {
	target := p.advance()
	p.advance() // operator

	value, err := p.parseExpr(context)
	if err != nil {
		return nil, err
	}
	return &ast.AssignStmt{
		Pos:      p.makePos(target),
		EndPos:   value.NodeEndPos(),
		Target:   p.makeIdent(target),
		Operator: op,
		Value:    value,
	}, nil
}
