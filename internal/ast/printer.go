package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const indentUnit = "    "

func (p *Program) String() string {
	var b strings.Builder
	for _, stmt := range p.Statements {
		b.WriteString(stmt.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (f *FunctionDef) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("def %s(%s, %s):", f.Name.Value, f.Params[0].Value, f.Params[1].Value))
	for _, stmt := range f.Body {
		b.WriteString("\n" + indentUnit + strings.ReplaceAll(stmt.String(), "\n", "\n"+indentUnit))
	}

	return b.String()
}

func (a *AssignStmt) String() string {
	return fmt.Sprintf("%s %s %s", a.Target.Value, a.Operator.Symbol(), a.Value.String())
}

func (e *ExprStmt) String() string {
	return e.Value.String()
}

func (l *LiteralExpr) String() string {
	return l.Value.String()
}

func (v IntValue) String() string {
	if v.Value == nil {
		return "0"
	}
	return v.Value.String()
}

func (v FloatValue) String() string {
	return formatFloat(float64(v))
}

// String writes the literal back as source. The value is the raw text from
// between the quotes, so only the quote character has to be chosen.
func (v StringValue) String() string {
	if hasBareQuote(string(v), '\'') {
		return `"` + string(v) + `"`
	}
	return "'" + string(v) + "'"
}

// hasBareQuote reports whether s holds q outside an escape sequence.
func hasBareQuote(s string, q byte) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case q:
			return true
		}
	}
	return false
}

func (n *NameExpr) String() string {
	return n.Name
}

func (u *UnaryMinusExpr) String() string {
	return fmt.Sprintf("(-%s)", u.Value.String())
}

func (n *NotExpr) String() string {
	return fmt.Sprintf("(not %s)", n.Value.String())
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (c *CallExpr) String() string {
	var b strings.Builder

	b.WriteString(c.Callee)
	b.WriteByte('(')
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')

	return b.String()
}

// formatFloat always keeps a fractional part or exponent so the value reads
// back as a float.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// quote wraps s in single quotes unless it contains a single quote and no
// double quote. Backslashes are doubled.
func quote(s string) string {
	q := "'"
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		q = `"`
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	if q == "'" {
		s = strings.ReplaceAll(s, "'", `\'`)
	}
	return q + s + q
}
