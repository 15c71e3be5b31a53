package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Expression is the single-line expression language, one struct per
// precedence level from loosest to tightest.
type Expression struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Or     *OrExpr `@@`
}

type OrExpr struct {
	Left  *AndExpr   `@@`
	Right []*AndExpr `( "or" @@ )*`
}

type AndExpr struct {
	Left  *NotExpr   `@@`
	Right []*NotExpr `( "and" @@ )*`
}

// NotExpr is a prefix 'not' or a comparison.
type NotExpr struct {
	Not        *NotExpr    `  "not" @@`
	Comparison *Comparison `| @@`
}

// Comparison does not chain: at most one operator.
type Comparison struct {
	Left *Arith     `@@`
	Op   *CompareOp `@@?`
}

type CompareOp struct {
	Operator string `@("==" | "!=" | "<" | ">")`
	Right    *Arith `@@`
}

type Arith struct {
	Left *Term      `@@`
	Rest []*ArithOp `@@*`
}

type ArithOp struct {
	Operator string `@("+" | "-")`
	Term     *Term  `@@`
}

type Term struct {
	Left *Factor   `@@`
	Rest []*TermOp `@@*`
}

type TermOp struct {
	Operator string  `@("*" | "/")`
	Factor   *Factor `@@`
}

type Factor struct {
	Neg  *Factor `  "-" @@`
	Atom *Atom   `| @@`
}

type Atom struct {
	Pos   lexer.Position
	Call  *Call       `  @@`
	Float *string     `| @Float`
	Int   *string     `| @Int`
	Str   *string     `| @String`
	Name  *string     `| @Name`
	Group *Expression `| "(" @@ ")"`
}

// Call covers user functions and the builtins print, len and round, which
// lex as names.
type Call struct {
	Callee string        `@Name "("`
	Args   []*Expression `[ @@ { "," @@ } ] ")"`
}
