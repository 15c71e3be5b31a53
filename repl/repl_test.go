package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestStartSingleLine(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("x = 1\n"), &out)

	assert.Contains(t, out.String(), "AST:\n[('assign', 'x', '=', ('literal', 1))]")
}

func TestStartBlock(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("def add(a, b):\n    a + b\n\nadd(1, 2)\n"), &out)

	s := out.String()
	assert.Contains(t, s, CONT_PROMPT)
	assert.Contains(t, s, "('func_def', 'add', ['a', 'b'], ")
	assert.Contains(t, s, "('call', 'add', ")
	assert.Equal(t, 2, strings.Count(s, "AST:"))
}

func TestStartReportsErrors(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("x = (1\ny = 2\n"), &out)

	s := out.String()
	assert.Contains(t, s, "error[E0102]: unexpected token")
	assert.Contains(t, s, "AST:")
}
