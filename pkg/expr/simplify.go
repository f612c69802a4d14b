package expr

// Simplify folds constant subtrees of node into single constants.
func Simplify(node Expr) Expr {
	return node.Simplify()
}

func (c *Const) Simplify() Expr {
	return c.Clone()
}

func (id *Ident) Simplify() Expr {
	return id.Clone()
}

// Simplify collapses every constant term into one accumulated Const placed
// after the remaining terms.
func (p *Plus) Simplify() Expr {
	terms := foldConstantChildren(p.Terms, 0, func(a, b float64) float64 { return a + b })
	return &Plus{Terms: terms}
}

// Simplify collapses every constant factor into one accumulated Const placed
// after the remaining factors.
func (m *Mult) Simplify() Expr {
	factors := foldConstantChildren(m.Factors, 1, func(a, b float64) float64 { return a * b })
	return &Mult{Factors: factors}
}

func (m *Minus) Simplify() Expr {
	folded := &Minus{Left: m.Left.Simplify(), Right: m.Right.Simplify()}
	return foldIfConstant(folded, folded.Left, folded.Right)
}

func (d *Div) Simplify() Expr {
	folded := &Div{Left: d.Left.Simplify(), Right: d.Right.Simplify()}
	return foldIfConstant(folded, folded.Left, folded.Right)
}

func (u *UnaryFn) Simplify() Expr {
	folded := &UnaryFn{Fn: u.Fn, Arg: u.Arg.Simplify()}
	return foldIfConstant(folded, folded.Arg)
}

func foldConstantChildren(children []Expr, identity float64, combine func(a, b float64) float64) []Expr {
	out := make([]Expr, 0, len(children))
	acc := identity
	sawConst := false
	for _, c := range children {
		s := c.Simplify()
		if k, ok := s.(*Const); ok {
			acc = combine(acc, k.Val)
			sawConst = true
			continue
		}
		out = append(out, s)
	}
	if sawConst {
		out = append(out, &Const{Val: acc})
	}
	return out
}

// foldIfConstant replaces node with its value when every child is a Const
// and the node evaluates cleanly. A failing node (e.g. 1/0) is kept as is so
// the failure still surfaces from Eval.
func foldIfConstant(node Expr, children ...Expr) Expr {
	for _, c := range children {
		if _, ok := c.(*Const); !ok {
			return node
		}
	}
	v, err := node.Eval(nil)
	if err != nil {
		return node
	}
	return &Const{Val: v}
}
