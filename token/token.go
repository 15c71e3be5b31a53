// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// Identifiers + literals
	NAME   // add, foobar, x, y ...
	INT    // 1234567890
	FLOAT  // 3.14, 1.0e10
	STRING // "hello", 'world'

	// Operators
	PLUS
	MINUS
	TIMES
	DIVIDE
	EQUAL
	PLUSEQ
	MINUSEQ
	EQEQ
	NEQ
	LT
	GT

	// Delimiters
	LPAREN
	RPAREN
	COMMA
	COLON

	// Layout
	NEWLINE
	INDENT
	DEDENT

	// Keywords
	DEF
	IF
	PRINT
	LEN
	ROUND
	AND
	OR
	NOT
)

var kindNames = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	NAME:    "NAME",
	INT:     "INT",
	FLOAT:   "FLOAT",
	STRING:  "STRING",
	PLUS:    "PLUS",
	MINUS:   "MINUS",
	TIMES:   "TIMES",
	DIVIDE:  "DIVIDE",
	EQUAL:   "EQUAL",
	PLUSEQ:  "PLUSEQ",
	MINUSEQ: "MINUSEQ",
	EQEQ:    "EQEQ",
	NEQ:     "NEQ",
	LT:      "LT",
	GT:      "GT",
	LPAREN:  "LPAREN",
	RPAREN:  "RPAREN",
	COMMA:   "COMMA",
	COLON:   "COLON",
	NEWLINE: "NEWLINE",
	INDENT:  "INDENT",
	DEDENT:  "DEDENT",
	DEF:     "DEF",
	IF:      "IF",
	PRINT:   "PRINT",
	LEN:     "LEN",
	ROUND:   "ROUND",
	AND:     "AND",
	OR:      "OR",
	NOT:     "NOT",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= DEF && k <= NOT
}

// IsBuiltin reports whether k names a builtin function that may appear as a callee.
func (k Kind) IsBuiltin() bool {
	switch k {
	case PRINT, LEN, ROUND:
		return true
	default:
		return false
	}
}

var keywords = map[string]Kind{
	"def":   DEF,
	"if":    IF,
	"print": PRINT,
	"len":   LEN,
	"round": ROUND,
	"and":   AND,
	"or":    OR,
	"not":   NOT,
}

// Keywords returns the reserved words in a stable order.
func Keywords() []string {
	return []string{"def", "if", "print", "len", "round", "and", "or", "not"}
}

func LookupIdent(ident string) Kind {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return NAME
}

var operators = map[string]Kind{
	"+":  PLUS,
	"-":  MINUS,
	"*":  TIMES,
	"/":  DIVIDE,
	"=":  EQUAL,
	"+=": PLUSEQ,
	"-=": MINUSEQ,
	"==": EQEQ,
	"!=": NEQ,
	"<":  LT,
	">":  GT,
	"(":  LPAREN,
	")":  RPAREN,
	",":  COMMA,
	":":  COLON,
}

// LookupOperator maps operator and punctuation text to its kind.
func LookupOperator(text string) (Kind, bool) {
	k, ok := operators[text]
	return k, ok
}

type Position struct {
	Filename string
	Offset   int // 0-based absolute index in input
	Line     int // 1-based
	Column   int // 1-based
}

// Token is immutable once produced. Text is the exact source slice; Value holds
// the primitive value: *big.Int for INT, float64 for FLOAT, the unquoted string
// for STRING, the indentation width for INDENT/DEDENT and Text otherwise.
type Token struct {
	Kind  Kind
	Text  string
	Value any
	Pos   Position
}

func (t Token) Line() int {
	return t.Pos.Line
}

// Display renders the token the way diagnostics quote it.
func (t Token) Display() string {
	switch t.Kind {
	case NEWLINE:
		return strings.Repeat(`\n`, strings.Count(t.Text, "\n"))
	case INDENT, DEDENT:
		if w, ok := t.Value.(int); ok {
			return strconv.Itoa(w)
		}
	case STRING:
		if s, ok := t.Value.(string); ok {
			return s
		}
	case INT:
		if n, ok := t.Value.(*big.Int); ok {
			return n.String()
		}
	case FLOAT:
		if f, ok := t.Value.(float64); ok {
			return formatFloat(f)
		}
	}
	return t.Text
}

// formatFloat keeps a fractional part or exponent, so 1.50 reads 1.5 and
// 2.0 stays 2.0.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Display() + ")@" + strconv.Itoa(t.Pos.Line)
}
