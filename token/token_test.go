package token

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: FLOAT, Text: "1.50", Value: 1.5}, "1.5"},
		{Token{Kind: FLOAT, Text: "2.0", Value: 2.0}, "2.0"},
		{Token{Kind: FLOAT, Text: "1.0e100", Value: 1e100}, "1e+100"},
		{Token{Kind: FLOAT, Text: "9.9e999", Value: math.Inf(1)}, "inf"},
		{Token{Kind: INT, Text: "007", Value: big.NewInt(7)}, "7"},
		{Token{Kind: STRING, Text: "'hi'", Value: "hi"}, "hi"},
		{Token{Kind: NEWLINE, Text: "\n\r\n", Value: "\n\r\n"}, `\n\n`},
		{Token{Kind: DEDENT, Value: 4}, "4"},
		{Token{Kind: NAME, Text: "x", Value: "x"}, "x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tok.Display())
	}
}

func TestLookup(t *testing.T) {
	assert.Equal(t, DEF, LookupIdent("def"))
	assert.Equal(t, NAME, LookupIdent("define"))
	assert.True(t, PRINT.IsBuiltin())
	assert.True(t, IF.IsKeyword())
	assert.False(t, NAME.IsKeyword())

	kind, ok := LookupOperator("+=")
	assert.True(t, ok)
	assert.Equal(t, PLUSEQ, kind)
	_, ok = LookupOperator("@")
	assert.False(t, ok)

	assert.Equal(t, "FLOAT(1.5)@3", Token{Kind: FLOAT, Text: "1.50", Value: 1.5, Pos: Position{Line: 3}}.String())
}
