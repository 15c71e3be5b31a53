package ast

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders a tree as a YAML document.
func MarshalYAML(node Node) ([]byte, error) {
	return yaml.Marshal(EncodeYAML(node))
}

// EncodeYAML converts a node into a yaml.Node mapping with a "kind" key followed
// by the node's fields in declaration order.
func EncodeYAML(node Node) *yaml.Node {
	switch n := node.(type) {
	case *Program:
		return mapping(
			"kind", str("program"),
			"statements", stmtSeq(n.Statements),
		)
	case *FunctionDef:
		return mapping(
			"kind", str("func_def"),
			"line", integer(n.Pos.Line),
			"name", str(n.Name.Value),
			"params", sequence(str(n.Params[0].Value), str(n.Params[1].Value)),
			"body", stmtSeq(n.Body),
		)
	case *AssignStmt:
		return mapping(
			"kind", str("assign"),
			"line", integer(n.Pos.Line),
			"target", str(n.Target.Value),
			"operator", str(n.Operator.Symbol()),
			"value", EncodeYAML(n.Value),
		)
	case *ExprStmt:
		return mapping(
			"kind", str("expr_stmt"),
			"line", integer(n.Pos.Line),
			"value", EncodeYAML(n.Value),
		)
	case *LiteralExpr:
		return mapping(
			"kind", str("literal"),
			"value", literal(n.Value),
		)
	case *NameExpr:
		return mapping(
			"kind", str("name"),
			"name", str(n.Name),
		)
	case *UnaryMinusExpr:
		return mapping(
			"kind", str("unary_minus"),
			"value", EncodeYAML(n.Value),
		)
	case *NotExpr:
		return mapping(
			"kind", str("not"),
			"value", EncodeYAML(n.Value),
		)
	case *BinaryExpr:
		return mapping(
			"kind", str(n.Op.Category()),
			"op", str(n.Op.String()),
			"left", EncodeYAML(n.Left),
			"right", EncodeYAML(n.Right),
		)
	case *CallExpr:
		args := make([]*yaml.Node, 0, len(n.Args))
		for _, arg := range n.Args {
			args = append(args, EncodeYAML(arg))
		}
		return mapping(
			"kind", str("call"),
			"callee", str(n.Callee),
			"builtin", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(n.Builtin)},
			"args", sequence(args...),
		)
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func mapping(pairs ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Content = append(m.Content, str(pairs[i].(string)), pairs[i+1].(*yaml.Node))
	}
	return m
}

func sequence(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

func stmtSeq(stmts []Stmt) *yaml.Node {
	items := make([]*yaml.Node, 0, len(stmts))
	for _, stmt := range stmts {
		items = append(items, EncodeYAML(stmt))
	}
	return sequence(items...)
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func integer(i int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i)}
}

func literal(v LiteralValue) *yaml.Node {
	switch lv := v.(type) {
	case IntValue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: lv.String()}
	case FloatValue:
		f := float64(lv)
		value := lv.String()
		switch {
		case math.IsInf(f, 1):
			value = ".inf"
		case math.IsInf(f, -1):
			value = "-.inf"
		case math.IsNaN(f):
			value = ".nan"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: value}
	case StringValue:
		return str(string(lv))
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
