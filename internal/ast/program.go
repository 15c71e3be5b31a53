package ast

import "math/big"

// Program is the root of a successfully parsed source unit.
// Example: "x = 1\ndef add(a, b):\n    a + b\n"
type Program struct {
	Pos        Position
	EndPos     Position
	Statements []Stmt
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents a plain name in a declaration position
// Example: "add", "a", "b" in "def add(a, b):"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// FunctionDef always has exactly two parameters.
// Example: "def add(a, b):\n    a + b\n"
type FunctionDef struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params [2]Ident
	Body   []Stmt
}

// AssignStmt binds a simple name.
// Example: "total += price * 2"
type AssignStmt struct {
	Pos      Position
	EndPos   Position
	Target   Ident
	Operator AssignType
	Value    Expr
}

// ExprStmt is an expression evaluated for its effect.
// Example: "print(total)"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// LiteralExpr holds an integer, float or string literal.
// Example: "42", "3.5", "'hi'"
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Value  LiteralValue
}

// LiteralValue is one of IntValue, FloatValue or StringValue.
type LiteralValue interface {
	isLiteralValue()
	String() string
}

type IntValue struct {
	Value *big.Int
}

type FloatValue float64

// StringValue is the literal text without its quotes. Escapes are not decoded.
type StringValue string

func (IntValue) isLiteralValue()    {}
func (FloatValue) isLiteralValue()  {}
func (StringValue) isLiteralValue() {}

// NameExpr is a reference to a name.
// Example: "total"
type NameExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// UnaryMinusExpr negates its operand.
// Example: "-x"
type UnaryMinusExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// NotExpr is logical negation.
// Example: "not done"
type NotExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// BinaryExpr covers logical, comparison and arithmetic operators.
// Example: "a + b * c", "x == 1 and y"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     BinaryOp
	Left   Expr
	Right  Expr
}

// CallExpr calls a user function or one of the builtins print, len and round.
// Example: "print(a, b)", "add(1, 2)"
type CallExpr struct {
	Pos     Position
	EndPos  Position
	Callee  string
	Builtin bool
	Args    []Expr
}
