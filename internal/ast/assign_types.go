package ast

import "strconv"

type AssignType int

const (
	// Special / error
	ILLEGAL_ASSIGN AssignType = iota
	ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
)

var assignTypeNames = [...]string{
	ILLEGAL_ASSIGN: "ILLEGAL_ASSIGN",
	ASSIGN:         "ASSIGN",
	PLUS_ASSIGN:    "PLUS_ASSIGN",
	MINUS_ASSIGN:   "MINUS_ASSIGN",
}

func (a AssignType) String() string {
	if a >= 0 && int(a) < len(assignTypeNames) {
		return assignTypeNames[a]
	}
	return "AssignType(" + strconv.Itoa(int(a)) + ")"
}

// Symbol returns the operator as written in source.
func (a AssignType) Symbol() string {
	switch a {
	case ASSIGN:
		return "="
	case PLUS_ASSIGN:
		return "+="
	case MINUS_ASSIGN:
		return "-="
	default:
		return "?="
	}
}
