package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var exprParser = participle.MustBuild[Expression](
	participle.Lexer(Lexer),
	participle.Elide(RuleWhitespace, RuleComment),
	participle.UseLookahead(3),
)

// ParseExpr parses one expression. Trailing line breaks are ignored.
func ParseExpr(src string) (*Expression, error) {
	src = strings.TrimRight(src, "\r\n")
	expr, err := exprParser.ParseString("", src)
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// FormatError renders a caret-style message for an error from ParseExpr.
func FormatError(src string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return color.RedString("unexpected error: %s", err)
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return color.RedString("syntax error at unknown location: %s", err)
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	var b strings.Builder
	b.WriteString(color.RedString("syntax error at line %d, column %d:", pos.Line, pos.Column))
	b.WriteString("\n" + line + "\n")
	b.WriteString(color.HiRedString(caret))
	b.WriteString(fmt.Sprintf("\n→ %s\n", pe.Message()))
	return b.String()
}
