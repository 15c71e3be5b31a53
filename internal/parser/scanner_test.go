package parser

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"minipy/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func TestKeywordsAndNames(t *testing.T) {
	input := "def if print len round and or not customName _x1"
	expected := []token.Kind{
		token.DEF, token.IF, token.PRINT, token.LEN, token.ROUND,
		token.AND, token.OR, token.NOT, token.NAME, token.NAME,
	}

	tokens, errs := Tokenize(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Kind != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Kind)
		}
	}
}

func TestNumbers(t *testing.T) {
	tokens, errs := Tokenize("42 3.14 1.5e3 2.0E-2 123456789012345678901234567890")
	require.Empty(t, errs)
	require.Len(t, tokens, 5)

	assert.Equal(t, token.INT, tokens[0].Kind)
	assert.Equal(t, big.NewInt(42), tokens[0].Value)

	assert.Equal(t, token.FLOAT, tokens[1].Kind)
	assert.Equal(t, 3.14, tokens[1].Value)
	assert.Equal(t, token.FLOAT, tokens[2].Kind)
	assert.Equal(t, 1500.0, tokens[2].Value)
	assert.Equal(t, token.FLOAT, tokens[3].Kind)
	assert.Equal(t, 0.02, tokens[3].Value)

	assert.Equal(t, token.INT, tokens[4].Kind)
	assert.Equal(t, "123456789012345678901234567890", tokens[4].Value.(*big.Int).String())
}

func TestStrings(t *testing.T) {
	tokens, errs := Tokenize(`"hello" 'wo\'rld' "a\nb"`)
	require.Empty(t, errs)
	require.Len(t, tokens, 3)

	for _, tok := range tokens {
		assert.Equal(t, token.STRING, tok.Kind)
	}
	assert.Equal(t, "hello", tokens[0].Value)
	assert.Equal(t, `wo\'rld`, tokens[1].Value, "escapes are kept as written")
	assert.Equal(t, `a\nb`, tokens[2].Value)
	assert.Equal(t, `"hello"`, tokens[0].Text)
}

func TestOperatorsAndPunctuation(t *testing.T) {
	tokens, errs := Tokenize("+ - * / = += -= == != < > ( ) , :")
	require.Empty(t, errs)

	assert.Equal(t, []token.Kind{
		token.PLUS, token.MINUS, token.TIMES, token.DIVIDE, token.EQUAL,
		token.PLUSEQ, token.MINUSEQ, token.EQEQ, token.NEQ, token.LT, token.GT,
		token.LPAREN, token.RPAREN, token.COMMA, token.COLON,
	}, kinds(tokens))
}

func TestAdjacentOperators(t *testing.T) {
	tokens, errs := Tokenize("x+=-1")
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{token.NAME, token.PLUSEQ, token.MINUS, token.INT}, kinds(tokens))
}

func TestNewlineRunsCollapse(t *testing.T) {
	tokens, errs := Tokenize("a\n\n\nb\n")
	require.Empty(t, errs)
	require.Equal(t, []token.Kind{token.NAME, token.NEWLINE, token.NAME, token.NEWLINE}, kinds(tokens))

	assert.Equal(t, `\n\n\n`, tokens[1].Display())
	assert.Equal(t, 1, tokens[1].Line())
	assert.Equal(t, 4, tokens[2].Line(), "line counter advances by every line break")
}

func TestCRLFIsOneLineBreak(t *testing.T) {
	tokens, errs := Tokenize("a\r\nb\r\n")
	require.Empty(t, errs)
	require.Equal(t, []token.Kind{token.NAME, token.NEWLINE, token.NAME, token.NEWLINE}, kinds(tokens))
	assert.Equal(t, 2, tokens[2].Line())
}

func TestCommentsAndWhitespaceAreDropped(t *testing.T) {
	tokens, errs := Tokenize("x = 1  # set x\n\t y # again")
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{token.NAME, token.EQUAL, token.INT, token.NEWLINE, token.NAME}, kinds(tokens))
}

func TestIllegalCharacterRecovery(t *testing.T) {
	tokens, errs := Tokenize("x = 1 @ 2\n")

	require.Len(t, errs, 1)
	assert.Equal(t, "illegal character '@' at line 1", errs[0].Message)
	assert.Equal(t, 1, errs[0].Position.Line)
	assert.Equal(t, 7, errs[0].Position.Column)
	assert.Equal(t, 1, errs[0].Length)

	assert.Equal(t, []token.Kind{token.NAME, token.EQUAL, token.INT, token.INT, token.NEWLINE}, kinds(tokens))
}

func TestIllegalCharactersAreReportedInOrder(t *testing.T) {
	_, errs := Tokenize("a ! b\n$\n")

	require.Len(t, errs, 2)
	assert.Equal(t, "illegal character '!' at line 1", errs[0].Message)
	assert.Equal(t, "illegal character '$' at line 2", errs[1].Message)
}

func TestTokenizeIsIdempotent(t *testing.T) {
	source := "def f(a, b):\n    x = 1 ? 2\n    print(x)\n"

	tokens1, errs1 := Tokenize(source)
	tokens2, errs2 := Tokenize(source)

	assert.Equal(t, tokens1, tokens2)
	assert.Equal(t, errs1, errs2)
	assert.Len(t, errs1, 1)
}

func TestScannerIsLazyAndEOFIsSticky(t *testing.T) {
	scanner := NewScanner("a b")

	assert.Equal(t, token.NAME, scanner.Next().Kind)
	assert.Equal(t, token.NAME, scanner.Next().Kind)
	assert.Equal(t, token.EOF, scanner.Next().Kind)
	assert.Equal(t, token.EOF, scanner.Next().Kind)
	assert.Empty(t, scanner.Errors())
}

func TestNamedScannerPositions(t *testing.T) {
	scanner := NewNamedScanner("prog.py", "x = 10\n  y")
	tokens := scanner.ScanTokens()
	require.Len(t, tokens, 5)

	assert.Equal(t, token.Position{Filename: "prog.py", Offset: 4, Line: 1, Column: 5}, tokens[2].Pos)
	assert.Equal(t, token.Position{Filename: "prog.py", Offset: 9, Line: 2, Column: 3}, tokens[4].Pos)
}
