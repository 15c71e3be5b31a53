package lsp

import (
	"unicode/utf8"

	"minipy/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens classifies primitive tokens. Function names and
// parameters are recognised from the shape of a def header; a name directly
// followed by '(' is a call.
func collectSemanticTokens(tokens []token.Token) []SemanticToken {
	var out []SemanticToken

	inHeader := false
	for i, tok := range tokens {
		var next token.Kind
		if i+1 < len(tokens) {
			next = tokens[i+1].Kind
		}

		switch {
		case tok.Kind == token.DEF:
			inHeader = true
			out = append(out, makeToken(tok, "keyword"))
		case tok.Kind == token.COLON || tok.Kind == token.NEWLINE:
			inHeader = false
		case tok.Kind.IsBuiltin():
			out = append(out, makeToken(tok, "function", "defaultLibrary"))
		case tok.Kind.IsKeyword():
			out = append(out, makeToken(tok, "keyword"))
		case tok.Kind == token.NAME && inHeader && i > 0 && tokens[i-1].Kind == token.DEF:
			out = append(out, makeToken(tok, "function", "declaration"))
		case tok.Kind == token.NAME && inHeader:
			out = append(out, makeToken(tok, "parameter", "declaration"))
		case tok.Kind == token.NAME && next == token.LPAREN:
			out = append(out, makeToken(tok, "function"))
		case tok.Kind == token.NAME:
			out = append(out, makeToken(tok, "variable"))
		case tok.Kind == token.INT || tok.Kind == token.FLOAT:
			out = append(out, makeToken(tok, "number"))
		case tok.Kind == token.STRING:
			out = append(out, makeToken(tok, "string"))
		case isOperator(tok.Kind):
			out = append(out, makeToken(tok, "operator"))
		}
	}

	return out
}

func isOperator(k token.Kind) bool {
	return k >= token.PLUS && k <= token.GT
}

func makeToken(tok token.Token, tokenType string, modifiers ...string) SemanticToken {
	mask := 0
	for _, m := range modifiers {
		mask |= 1 << indexOf(m, SemanticTokenModifiers)
	}

	return SemanticToken{
		Line:           uint32(tok.Pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(tok.Pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(utf8.RuneCountInString(tok.Text)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: mask,
	}
}

// encodeSemanticTokens produces the LSP wire format: relative line and
// start offsets, five integers per token.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, t := range tokens {
		deltaLine := t.Line - prevLine
		deltaStart := t.StartChar
		if deltaLine == 0 {
			deltaStart = t.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, t.Length, uint32(t.TokenType), uint32(t.TokenModifiers))

		prevLine = t.Line
		prevStart = t.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
