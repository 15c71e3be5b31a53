package parser

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
	"minipy/grammar"
	"minipy/token"
)

// ruleNames maps participle token types back to the rule names in grammar.Lexer.
var ruleNames = func() map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string)
	for name, tt := range grammar.Lexer.Symbols() {
		names[tt] = name
	}
	return names
}()

// Scanner produces primitive tokens on demand. Whitespace and comments are
// dropped; illegal characters are recorded and skipped one at a time. A
// Scanner covers a single pass: create a new one to start over.
type Scanner struct {
	source   string
	filename string
	lex      lexer.Lexer
	last     token.Position
	done     bool
	eof      token.Token
	errors   []ScanError
}

func NewScanner(source string) *Scanner {
	return NewNamedScanner("", source)
}

func NewNamedScanner(filename, source string) *Scanner {
	s := &Scanner{
		source:   source,
		filename: filename,
		last:     token.Position{Filename: filename, Line: 1, Column: 1},
	}

	lex, err := grammar.Lexer.LexString(filename, source)
	if err != nil {
		s.reportError(fmt.Sprintf("cannot tokenize input: %v", err), s.last, 0)
		s.finish(s.last)
		return s
	}
	s.lex = lex
	return s
}

// Next returns the next primitive token. After the input is exhausted it
// keeps returning the same EOF token.
func (s *Scanner) Next() token.Token {
	for !s.done {
		raw, err := s.lex.Next()
		if err != nil {
			s.reportError(fmt.Sprintf("cannot tokenize input: %v", err), s.last, 0)
			s.finish(s.last)
			break
		}

		pos := s.makePos(raw.Pos)
		s.last = pos
		if raw.EOF() {
			s.finish(pos)
			break
		}

		switch ruleNames[raw.Type] {
		case grammar.RuleWhitespace, grammar.RuleComment:
			continue
		case grammar.RuleIllegal:
			s.reportError(fmt.Sprintf("illegal character '%s' at line %d", raw.Value, pos.Line), pos, len(raw.Value))
			continue
		case grammar.RuleNewline:
			return token.Token{Kind: token.NEWLINE, Text: raw.Value, Value: raw.Value, Pos: pos}
		case grammar.RuleFloat:
			return s.scanFloat(raw.Value, pos)
		case grammar.RuleInt:
			return s.scanInt(raw.Value, pos)
		case grammar.RuleString:
			// Only the surrounding quotes are removed; escapes stay as written.
			return token.Token{Kind: token.STRING, Text: raw.Value, Value: raw.Value[1 : len(raw.Value)-1], Pos: pos}
		case grammar.RuleName:
			return token.Token{Kind: token.LookupIdent(raw.Value), Text: raw.Value, Value: raw.Value, Pos: pos}
		case grammar.RuleOperator, grammar.RulePunctuation:
			kind, ok := token.LookupOperator(raw.Value)
			if !ok {
				s.reportError(fmt.Sprintf("illegal character '%s' at line %d", raw.Value, pos.Line), pos, len(raw.Value))
				continue
			}
			return token.Token{Kind: kind, Text: raw.Value, Value: raw.Value, Pos: pos}
		default:
			s.reportError(fmt.Sprintf("illegal character '%s' at line %d", raw.Value, pos.Line), pos, len(raw.Value))
		}
	}
	return s.eof
}

// Errors returns the lexical errors seen so far, in source order.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}

// ScanTokens drains the scanner. The trailing EOF token is not included.
func (s *Scanner) ScanTokens() []token.Token {
	var tokens []token.Token
	for {
		tok := s.Next()
		if tok.Kind == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (s *Scanner) scanInt(text string, pos token.Position) token.Token {
	value, ok := new(big.Int).SetString(text, 10)
	if !ok {
		value = new(big.Int)
	}
	return token.Token{Kind: token.INT, Text: text, Value: value, Pos: pos}
}

func (s *Scanner) scanFloat(text string, pos token.Position) token.Token {
	// Out of range literals saturate to ±Inf; ParseFloat still returns the value.
	value, _ := strconv.ParseFloat(text, 64)
	return token.Token{Kind: token.FLOAT, Text: text, Value: value, Pos: pos}
}

func (s *Scanner) finish(pos token.Position) {
	s.done = true
	s.eof = token.Token{Kind: token.EOF, Pos: pos}
}

func (s *Scanner) reportError(message string, pos token.Position, length int) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: pos,
		Length:   length,
	})
}

func (s *Scanner) makePos(p lexer.Position) token.Position {
	return token.Position{
		Filename: p.Filename,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Column,
	}
}
