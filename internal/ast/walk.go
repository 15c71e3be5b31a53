package ast

// Inspect traverses the tree depth-first in source order, calling fn for each
// node. If fn returns false the children of that node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Statements {
			Inspect(stmt, fn)
		}

	case *FunctionDef:
		Inspect(&n.Name, fn)
		Inspect(&n.Params[0], fn)
		Inspect(&n.Params[1], fn)
		for _, stmt := range n.Body {
			Inspect(stmt, fn)
		}

	case *AssignStmt:
		Inspect(&n.Target, fn)
		Inspect(n.Value, fn)

	case *ExprStmt:
		Inspect(n.Value, fn)

	case *UnaryMinusExpr:
		Inspect(n.Value, fn)

	case *NotExpr:
		Inspect(n.Value, fn)

	case *BinaryExpr:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)

	case *CallExpr:
		for _, arg := range n.Args {
			Inspect(arg, fn)
		}
	}
}
