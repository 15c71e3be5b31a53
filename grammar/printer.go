package grammar

import (
	"strings"
)

// String renders the expression with every operation parenthesized, the same
// way the syntax tree prints.
func (e *Expression) String() string {
	return e.Or.String()
}

func (o *OrExpr) String() string {
	s := o.Left.String()
	for _, r := range o.Right {
		s = "(" + s + " or " + r.String() + ")"
	}
	return s
}

func (a *AndExpr) String() string {
	s := a.Left.String()
	for _, r := range a.Right {
		s = "(" + s + " and " + r.String() + ")"
	}
	return s
}

func (n *NotExpr) String() string {
	if n.Not != nil {
		return "(not " + n.Not.String() + ")"
	}
	return n.Comparison.String()
}

func (c *Comparison) String() string {
	if c.Op == nil {
		return c.Left.String()
	}
	return "(" + c.Left.String() + " " + c.Op.Operator + " " + c.Op.Right.String() + ")"
}

func (a *Arith) String() string {
	s := a.Left.String()
	for _, op := range a.Rest {
		s = "(" + s + " " + op.Operator + " " + op.Term.String() + ")"
	}
	return s
}

func (t *Term) String() string {
	s := t.Left.String()
	for _, op := range t.Rest {
		s = "(" + s + " " + op.Operator + " " + op.Factor.String() + ")"
	}
	return s
}

func (f *Factor) String() string {
	if f.Neg != nil {
		return "(-" + f.Neg.String() + ")"
	}
	return f.Atom.String()
}

func (a *Atom) String() string {
	switch {
	case a.Call != nil:
		return a.Call.String()
	case a.Float != nil:
		return *a.Float
	case a.Int != nil:
		return *a.Int
	case a.Str != nil:
		return *a.Str
	case a.Name != nil:
		return *a.Name
	case a.Group != nil:
		return a.Group.String()
	}
	return ""
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	return c.Callee + "(" + strings.Join(args, ", ") + ")"
}
