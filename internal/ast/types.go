package ast

import "strconv"

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// Root
	PROGRAM

	// Names
	IDENT

	// Statements
	FUNCTION_DEF
	ASSIGN_STMT
	EXPR_STMT

	// Expressions
	LITERAL_EXPR
	NAME_EXPR
	UNARY_MINUS_EXPR
	NOT_EXPR
	BINARY_EXPR
	CALL_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:          "ILLEGAL",
	PROGRAM:          "PROGRAM",
	IDENT:            "IDENT",
	FUNCTION_DEF:     "FUNCTION_DEF",
	ASSIGN_STMT:      "ASSIGN_STMT",
	EXPR_STMT:        "EXPR_STMT",
	LITERAL_EXPR:     "LITERAL_EXPR",
	NAME_EXPR:        "NAME_EXPR",
	UNARY_MINUS_EXPR: "UNARY_MINUS_EXPR",
	NOT_EXPR:         "NOT_EXPR",
	BINARY_EXPR:      "BINARY_EXPR",
	CALL_EXPR:        "CALL_EXPR",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "NodeType(" + strconv.Itoa(int(t)) + ")"
}
