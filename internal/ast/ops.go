package ast

import "strconv"

type BinaryOp int

const (
	ILLEGAL_OP BinaryOp = iota
	OR
	AND
	ADD
	SUB
	MUL
	DIV
	EQ
	NEQ
	LT
	GT
)

var binaryOpSymbols = [...]string{
	ILLEGAL_OP: "?",
	OR:         "or",
	AND:        "and",
	ADD:        "+",
	SUB:        "-",
	MUL:        "*",
	DIV:        "/",
	EQ:         "==",
	NEQ:        "!=",
	LT:         "<",
	GT:         ">",
}

// String returns the operator as written in source.
func (op BinaryOp) String() string {
	if op >= 0 && int(op) < len(binaryOpSymbols) {
		return binaryOpSymbols[op]
	}
	return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
}

// Category groups operators by grammar level: "or", "and", "comparison",
// "arith" (+, -) and "term" (*, /).
func (op BinaryOp) Category() string {
	switch op {
	case OR:
		return "or"
	case AND:
		return "and"
	case EQ, NEQ, LT, GT:
		return "comparison"
	case ADD, SUB:
		return "arith"
	case MUL, DIV:
		return "term"
	default:
		return "illegal"
	}
}
