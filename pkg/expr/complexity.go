package expr

import "math"

func (c *Const) NodeCount() int   { return 1 }
func (id *Ident) NodeCount() int  { return 1 }
func (p *Plus) NodeCount() int    { return 1 + sumNodeCount(p.Terms) }
func (m *Mult) NodeCount() int    { return 1 + sumNodeCount(m.Factors) }
func (m *Minus) NodeCount() int   { return 1 + m.Left.NodeCount() + m.Right.NodeCount() }
func (d *Div) NodeCount() int     { return 1 + d.Left.NodeCount() + d.Right.NodeCount() }
func (u *UnaryFn) NodeCount() int { return 1 + u.Arg.NodeCount() }

func sumNodeCount(children []Expr) int {
	n := 0
	for _, c := range children {
		n += c.NodeCount()
	}
	return n
}

func (c *Const) Depth() int   { return 0 }
func (id *Ident) Depth() int  { return 0 }
func (p *Plus) Depth() int    { return 1 + maxDepth(p.Terms...) }
func (m *Mult) Depth() int    { return 1 + maxDepth(m.Factors...) }
func (m *Minus) Depth() int   { return 1 + maxDepth(m.Left, m.Right) }
func (d *Div) Depth() int     { return 1 + maxDepth(d.Left, d.Right) }
func (u *UnaryFn) Depth() int { return 1 + u.Arg.Depth() }

func maxDepth(children ...Expr) int {
	d := 0
	for _, c := range children {
		if cd := c.Depth(); cd > d {
			d = cd
		}
	}
	return d
}

// WeightedComplexity returns a complexity score with heavier weight for
// operations that are more "expensive" (division, transcendental functions).
func WeightedComplexity(node Expr) float64 {
	switch n := node.(type) {
	case *Ident:
		return 1.0
	case *Const:
		v := math.Abs(n.Val)
		if v <= 10 || math.IsInf(v, 0) || math.IsNaN(v) {
			return 1.0
		}
		return 1.0 + math.Log10(v)
	case *Plus:
		return float64(len(n.Terms)-1) + sumComplexity(n.Terms)
	case *Mult:
		return 1.5*float64(len(n.Factors)-1) + sumComplexity(n.Factors)
	case *Minus:
		return 1.0 + WeightedComplexity(n.Left) + WeightedComplexity(n.Right)
	case *Div:
		return 1.5 + WeightedComplexity(n.Left) + WeightedComplexity(n.Right)
	case *UnaryFn:
		return funcWeight(n.Fn) + WeightedComplexity(n.Arg)
	default:
		return 1.0
	}
}

func sumComplexity(children []Expr) float64 {
	w := 0.0
	for _, c := range children {
		w += WeightedComplexity(c)
	}
	return w
}

func funcWeight(fn Func) float64 {
	switch fn {
	case FnSqrt:
		return 2.0
	case FnSin, FnCos, FnLog, FnExp:
		return 3.0
	case FnAtan, FnTanh, FnSinh, FnCosh:
		return 3.5
	default:
		return 2.0
	}
}
