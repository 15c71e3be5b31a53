package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"minipy/grammar"
	"minipy/internal/ast"
)

// The declarative grammar and the precedence parser must build the same
// shape for every expression both accept.
func TestPrecedenceParserAgreesWithGrammar(t *testing.T) {
	exprs := []string{
		"1 + 2 * 3",
		"1 * 2 + 3",
		"a - b - c + d",
		"a / b / c * d",
		"-a - -b",
		"-(a + b) * c",
		"a or b or c",
		"a and b or c and d",
		"a or not b and c",
		"not a < b",
		"not not a or b",
		"a + b == c * d",
		"a != b and c > d",
		"(a or b) and c",
		"f(a + 1, g(b, c) * 2)",
		"print(len('abc'), round(x))",
		"((a))",
	}

	for _, src := range exprs {
		t.Run(src, func(t *testing.T) {
			expr, err := grammar.ParseExpr(src)
			require.NoError(t, err, grammar.FormatError(src, err))

			program := parseOK(t, src+"\n")
			require.Len(t, program.Statements, 1)
			stmt, ok := program.Statements[0].(*ast.ExprStmt)
			require.True(t, ok)

			assert.Equal(t, expr.String(), stmt.Value.String())
		})
	}
}

func TestPrecedenceParserAndGrammarRejectTogether(t *testing.T) {
	for _, src := range []string{"a < b < c", "1 +", "(a", "f(a,)", "a not b"} {
		t.Run(src, func(t *testing.T) {
			_, err := grammar.ParseExpr(src)
			assert.Error(t, err)

			program, parseErrors, _ := ParseSource("test.py", src+"\n")
			assert.Nil(t, program)
			assert.NotEmpty(t, parseErrors)
		})
	}
}
