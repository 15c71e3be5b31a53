package ast

import (
	"fmt"
	"strings"
)

// Dump renders a node as nested tagged tuples, for example
//
//	('arith', '+', ('literal', 1), ('term', '*', ('literal', 2), ('literal', 3)))
//
// A Program renders as the list of its statements.
func Dump(node Node) string {
	var b strings.Builder
	dump(&b, node)
	return b.String()
}

func dump(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *Program:
		dumpStmts(b, n.Statements)
	case *FunctionDef:
		fmt.Fprintf(b, "('func_def', %s, [%s, %s], ", quote(n.Name.Value), quote(n.Params[0].Value), quote(n.Params[1].Value))
		dumpStmts(b, n.Body)
		b.WriteByte(')')
	case *AssignStmt:
		fmt.Fprintf(b, "('assign', %s, %s, ", quote(n.Target.Value), quote(n.Operator.Symbol()))
		dump(b, n.Value)
		b.WriteByte(')')
	case *ExprStmt:
		dump(b, n.Value)
	case *LiteralExpr:
		if sv, ok := n.Value.(StringValue); ok {
			fmt.Fprintf(b, "('literal', %s)", quote(string(sv)))
		} else {
			fmt.Fprintf(b, "('literal', %s)", n.Value.String())
		}
	case *NameExpr:
		b.WriteString(quote(n.Name))
	case *Ident:
		b.WriteString(quote(n.Value))
	case *UnaryMinusExpr:
		b.WriteString("('unary_minus', ")
		dump(b, n.Value)
		b.WriteByte(')')
	case *NotExpr:
		b.WriteString("('not', ")
		dump(b, n.Value)
		b.WriteByte(')')
	case *BinaryExpr:
		switch n.Op {
		case OR, AND:
			fmt.Fprintf(b, "(%s, ", quote(n.Op.Category()))
		default:
			fmt.Fprintf(b, "(%s, %s, ", quote(n.Op.Category()), quote(n.Op.String()))
		}
		dump(b, n.Left)
		b.WriteString(", ")
		dump(b, n.Right)
		b.WriteByte(')')
	case *CallExpr:
		fmt.Fprintf(b, "('call', %s, [", quote(n.Callee))
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			dump(b, arg)
		}
		b.WriteString("])")
	case nil:
		b.WriteString("None")
	default:
		fmt.Fprintf(b, "<%s>", node.NodeType())
	}
}

func dumpStmts(b *strings.Builder, stmts []Stmt) {
	b.WriteByte('[')
	for i, stmt := range stmts {
		if i > 0 {
			b.WriteString(", ")
		}
		dump(b, stmt)
	}
	b.WriteByte(']')
}
