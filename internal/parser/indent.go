package parser

import (
	"fmt"
	"strings"

	"minipy/token"
)

type IndentStop int

const (
	StopCode    IndentStop = iota // first code character of a line
	StopComment                   // a '#' comment; the line decides nothing
	StopEOF                       // end of input
)

func (s IndentStop) String() string {
	switch s {
	case StopCode:
		return "code"
	case StopComment:
		return "comment"
	case StopEOF:
		return "eof"
	default:
		return fmt.Sprintf("IndentStop(%d)", int(s))
	}
}

// IndentScan is the result of measuring the leading whitespace of a line.
// Offset is where the measurement stopped.
type IndentScan struct {
	Width  int
	Offset int
	Stop   IndentStop
}

// MeasureIndent scans source from offset, counting spaces as 1 and tabs as
// TabWidth. A line break resets the width, so blank lines are skipped.
func MeasureIndent(source string, offset int) IndentScan {
	width := 0
	for i := offset; i < len(source); i++ {
		switch source[i] {
		case ' ':
			width++
		case '\t':
			width += TabWidth
		case '\n':
			width = 0
		case '\r':
			if i+1 < len(source) && source[i+1] == '\n' {
				continue
			}
			return IndentScan{Width: width, Offset: i, Stop: StopCode}
		case '#':
			return IndentScan{Width: width, Offset: i, Stop: StopComment}
		default:
			return IndentScan{Width: width, Offset: i, Stop: StopCode}
		}
	}
	return IndentScan{Width: width, Offset: len(source), Stop: StopEOF}
}

// TokenSource is anything that hands out tokens one at a time and keeps
// returning EOF once exhausted.
type TokenSource interface {
	Next() token.Token
}

// IndentFilter interleaves INDENT and DEDENT tokens into a primitive token
// stream. After every NEWLINE it measures the next code line and compares the
// width against its stack of open blocks. At end of input all open blocks are
// closed.
type IndentFilter struct {
	source  string
	tokens  TokenSource
	stack   []int
	pending []token.Token
	decided int // offset of the last line whose indentation was applied
	done    bool
	eof     token.Token
	errors  []IndentError
}

func NewIndentFilter(source string, tokens TokenSource) *IndentFilter {
	return &IndentFilter{
		source:  source,
		tokens:  tokens,
		stack:   []int{0},
		decided: -1,
	}
}

func (f *IndentFilter) Next() token.Token {
	if len(f.pending) > 0 {
		tok := f.pending[0]
		f.pending = f.pending[1:]
		return tok
	}
	if f.done {
		return f.eof
	}

	tok := f.tokens.Next()
	switch tok.Kind {
	case token.NEWLINE:
		f.afterNewline(tok)
	case token.EOF:
		f.done = true
		f.eof = tok
		f.flush(tok)
		return f.Next()
	}
	return tok
}

// IndentErrors returns the inconsistent dedents seen so far.
func (f *IndentFilter) IndentErrors() []IndentError {
	return f.errors
}

// Depth is the number of blocks currently open.
func (f *IndentFilter) Depth() int {
	return len(f.stack) - 1
}

func (f *IndentFilter) top() int {
	return f.stack[len(f.stack)-1]
}

func (f *IndentFilter) afterNewline(nl token.Token) {
	scan := MeasureIndent(f.source, nl.Pos.Offset+len(nl.Text))
	if scan.Stop != StopCode || scan.Offset == f.decided {
		return
	}
	f.decided = scan.Offset

	w := scan.Width
	switch {
	case w > f.top():
		f.stack = append(f.stack, w)
		f.pending = append(f.pending, f.synthetic(token.INDENT, w, nl.Pos))

	case w < f.top():
		for len(f.stack) > 1 && f.top() > w {
			f.stack = f.stack[:len(f.stack)-1]
			f.pending = append(f.pending, f.synthetic(token.DEDENT, f.top(), nl.Pos))
		}
		if f.top() != w {
			pos := f.positionOf(scan.Offset, nl.Pos.Filename)
			f.errors = append(f.errors, IndentError{
				Message:  fmt.Sprintf("unindent does not match any outer indentation level at line %d", pos.Line),
				Position: pos,
				Width:    w,
			})
		}
	}
}

func (f *IndentFilter) flush(eof token.Token) {
	for len(f.stack) > 1 {
		f.stack = f.stack[:len(f.stack)-1]
		f.pending = append(f.pending, f.synthetic(token.DEDENT, f.top(), eof.Pos))
	}
	f.pending = append(f.pending, eof)
}

func (f *IndentFilter) synthetic(kind token.Kind, width int, pos token.Position) token.Token {
	return token.Token{Kind: kind, Value: width, Pos: pos}
}

// positionOf converts a byte offset in the source into a line and column.
func (f *IndentFilter) positionOf(offset int, filename string) token.Position {
	before := f.source[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return token.Position{
		Filename: filename,
		Offset:   offset,
		Line:     strings.Count(before, "\n") + 1,
		Column:   offset - lineStart + 1,
	}
}
