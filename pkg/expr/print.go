package expr

import (
	"fmt"
	"strconv"
	"strings"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String methods

func (c *Const) String() string {
	return formatFloat(c.Val)
}

func (id *Ident) String() string {
	return id.Name
}

func (p *Plus) String() string {
	return "(" + joinStrings(p.Terms, " + ") + ")"
}

func (m *Mult) String() string {
	return "(" + joinStrings(m.Factors, " * ") + ")"
}

func (m *Minus) String() string {
	return fmt.Sprintf("(%s - %s)", m.Left.String(), m.Right.String())
}

func (d *Div) String() string {
	return fmt.Sprintf("(%s/%s)", d.Left.String(), d.Right.String())
}

func (u *UnaryFn) String() string {
	return fmt.Sprintf("%s(%s)", u.Fn, u.Arg.String())
}

func joinStrings(children []Expr, sep string) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.String()
	}
	return strings.Join(parts, sep)
}

// LaTeX methods

func (c *Const) LaTeX() string {
	return formatFloat(c.Val)
}

func (id *Ident) LaTeX() string {
	return id.Name
}

func (p *Plus) LaTeX() string {
	return joinLaTeX(p.Terms, " + ")
}

func (m *Mult) LaTeX() string {
	return joinLaTeX(m.Factors, " \\cdot ")
}

func (m *Minus) LaTeX() string {
	return fmt.Sprintf("({%s} - {%s})", m.Left.LaTeX(), m.Right.LaTeX())
}

func (d *Div) LaTeX() string {
	return fmt.Sprintf("\\frac{%s}{%s}", d.Left.LaTeX(), d.Right.LaTeX())
}

func (u *UnaryFn) LaTeX() string {
	arg := u.Arg.LaTeX()
	switch u.Fn {
	case FnSqrt:
		return fmt.Sprintf("\\sqrt{%s}", arg)
	case FnLog:
		return fmt.Sprintf("\\ln{(%s)}", arg)
	case FnExp:
		return fmt.Sprintf("e^{%s}", arg)
	case FnAtan:
		return fmt.Sprintf("\\arctan{(%s)}", arg)
	default:
		return fmt.Sprintf("\\%s{(%s)}", u.Fn, arg)
	}
}

func joinLaTeX(children []Expr, sep string) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = "{" + c.LaTeX() + "}"
	}
	return "(" + strings.Join(parts, sep) + ")"
}
