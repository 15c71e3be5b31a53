package parser

import (
	"math/big"

	"minipy/internal/ast"
	"minipy/token"
)

const (
	precOr         = 1
	precAnd        = 2
	precNot        = 3
	precComparison = 4
	precArith      = 5
	precTerm       = 6
)

type binaryOperator struct {
	prec int
	op   ast.BinaryOp
}

var binaryPrecedence = map[token.Kind]binaryOperator{
	token.OR:     {precOr, ast.OR},
	token.AND:    {precAnd, ast.AND},
	token.EQEQ:   {precComparison, ast.EQ},
	token.NEQ:    {precComparison, ast.NEQ},
	token.LT:     {precComparison, ast.LT},
	token.GT:     {precComparison, ast.GT},
	token.PLUS:   {precArith, ast.ADD},
	token.MINUS:  {precArith, ast.SUB},
	token.TIMES:  {precTerm, ast.MUL},
	token.DIVIDE: {precTerm, ast.DIV},
}

func (p *Parser) parseExpr(context string) (ast.Expr, error) {
	return p.parsePrattExpr(precOr, context)
}

// parsePrattExpr parses a binary expression whose operators bind at least as
// tightly as minPrec. All levels are left-associative except comparison,
// which does not chain: "a < b < c" is rejected at the second operator.
func (p *Parser) parsePrattExpr(minPrec int, context string) (ast.Expr, error) {
	expr, err := p.parsePrefixExpr(minPrec, context)
	if err != nil {
		return nil, err
	}

	compared := false
	for {
		tok := p.peek()
		bin, ok := binaryPrecedence[tok.Kind]
		if !ok || bin.prec < minPrec {
			break
		}
		if bin.prec == precComparison {
			if compared {
				return nil, p.unexpected(tok, context)
			}
			compared = true
		}

		p.advance()
		right, err := p.parsePrattExpr(bin.prec+1, context)
		if err != nil {
			return nil, err
		}

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     bin.op,
			Left:   expr,
			Right:  right,
		}
	}

	return expr, nil
}

// parsePrefixExpr handles 'not', which sits between 'and' and comparison and
// so is only allowed where an operand of 'and' (or looser) is expected.
func (p *Parser) parsePrefixExpr(minPrec int, context string) (ast.Expr, error) {
	if p.check(token.NOT) && minPrec <= precNot {
		op := p.advance()
		value, err := p.parsePrattExpr(precNot, context)
		if err != nil {
			return nil, err
		}
		return &ast.NotExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Value:  value,
		}, nil
	}

	return p.parseUnaryExpr(context)
}

func (p *Parser) parseUnaryExpr(context string) (ast.Expr, error) {
	if p.check(token.MINUS) {
		op := p.advance()
		value, err := p.parseUnaryExpr(context)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryMinusExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Value:  value,
		}, nil
	}

	return p.parsePrimaryExpr(context)
}

func (p *Parser) parsePrimaryExpr(context string) (ast.Expr, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.INT, token.FLOAT, token.STRING:
		p.advance()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  literalValue(tok),
		}, nil

	case token.NAME:
		p.advance()
		if p.check(token.LPAREN) {
			return p.parseCallExpr(tok, false, context)
		}
		return &ast.NameExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Text,
		}, nil

	case token.PRINT, token.LEN, token.ROUND:
		p.advance()
		if !p.check(token.LPAREN) {
			return nil, p.unexpected(p.peek(), context)
		}
		return p.parseCallExpr(tok, true, context)

	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpr(context)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, context); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, p.unexpected(tok, context)
}

func (p *Parser) parseCallExpr(callee token.Token, builtin bool, context string) (ast.Expr, error) {
	p.advance() // '('

	args, err := p.parseExprList(token.RPAREN, context)
	if err != nil {
		return nil, err
	}
	rparen, err := p.expect(token.RPAREN, context)
	if err != nil {
		return nil, err
	}

	return &ast.CallExpr{
		Pos:     p.makePos(callee),
		EndPos:  p.makeEndPos(rparen),
		Callee:  callee.Text,
		Builtin: builtin,
		Args:    args,
	}, nil
}

// parseExprList parses a possibly empty comma-separated list ending before end.
func (p *Parser) parseExprList(end token.Kind, context string) ([]ast.Expr, error) {
	var exprs []ast.Expr
	if p.check(end) {
		return exprs, nil
	}

	for {
		expr, err := p.parseExpr(context)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)

		if !p.match(token.COMMA) {
			return exprs, nil
		}
	}
}

func literalValue(tok token.Token) ast.LiteralValue {
	switch v := tok.Value.(type) {
	case *big.Int:
		return ast.IntValue{Value: v}
	case float64:
		return ast.FloatValue(v)
	case string:
		return ast.StringValue(v)
	}
	return ast.StringValue(tok.Text)
}
