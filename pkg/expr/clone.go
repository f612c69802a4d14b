package expr

func (c *Const) Clone() Expr {
	return &Const{Val: c.Val}
}

func (id *Ident) Clone() Expr {
	return &Ident{Name: id.Name}
}

func (p *Plus) Clone() Expr {
	return &Plus{Terms: cloneAll(p.Terms)}
}

func (m *Mult) Clone() Expr {
	return &Mult{Factors: cloneAll(m.Factors)}
}

func (m *Minus) Clone() Expr {
	return &Minus{
		Left:  m.Left.Clone(),
		Right: m.Right.Clone(),
	}
}

func (d *Div) Clone() Expr {
	return &Div{
		Left:  d.Left.Clone(),
		Right: d.Right.Clone(),
	}
}

func (u *UnaryFn) Clone() Expr {
	return &UnaryFn{
		Fn:  u.Fn,
		Arg: u.Arg.Clone(),
	}
}

func cloneAll(children []Expr) []Expr {
	out := make([]Expr, len(children))
	for i, c := range children {
		out[i] = c.Clone()
	}
	return out
}
