package ast

type Expr interface {
	Node
	isExpr()
}

func (*LiteralExpr) isExpr() {}

func (*NameExpr) isExpr() {}

func (*UnaryMinusExpr) isExpr() {}

func (*NotExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*CallExpr) isExpr() {}

type Stmt interface {
	Node
	isStmt()
}

func (*FunctionDef) isStmt() {}

func (*AssignStmt) isStmt() {}

func (*ExprStmt) isStmt() {}
