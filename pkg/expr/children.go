package expr

import "fmt"

func checkIndex(kind string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("expr: child index %d out of range for %s with %d children", i, kind, n))
	}
}

func (c *Const) IsLeaf() bool   { return true }
func (id *Ident) IsLeaf() bool  { return true }
func (p *Plus) IsLeaf() bool    { return false }
func (m *Mult) IsLeaf() bool    { return false }
func (m *Minus) IsLeaf() bool   { return false }
func (d *Div) IsLeaf() bool     { return false }
func (u *UnaryFn) IsLeaf() bool { return false }

func (c *Const) NumChildren() int   { return 0 }
func (id *Ident) NumChildren() int  { return 0 }
func (p *Plus) NumChildren() int    { return len(p.Terms) }
func (m *Mult) NumChildren() int    { return len(m.Factors) }
func (m *Minus) NumChildren() int   { return 2 }
func (d *Div) NumChildren() int     { return 2 }
func (u *UnaryFn) NumChildren() int { return 1 }

func (c *Const) Child(i int) Expr {
	checkIndex("Const", i, 0)
	return nil
}

func (id *Ident) Child(i int) Expr {
	checkIndex("Ident", i, 0)
	return nil
}

func (p *Plus) Child(i int) Expr {
	checkIndex("Plus", i, len(p.Terms))
	return p.Terms[i]
}

func (m *Mult) Child(i int) Expr {
	checkIndex("Mult", i, len(m.Factors))
	return m.Factors[i]
}

func (m *Minus) Child(i int) Expr {
	checkIndex("Minus", i, 2)
	if i == 0 {
		return m.Left
	}
	return m.Right
}

func (d *Div) Child(i int) Expr {
	checkIndex("Div", i, 2)
	if i == 0 {
		return d.Left
	}
	return d.Right
}

func (u *UnaryFn) Child(i int) Expr {
	checkIndex("UnaryFn", i, 1)
	return u.Arg
}

func (c *Const) SetChild(i int, e Expr)  { checkIndex("Const", i, 0) }
func (id *Ident) SetChild(i int, e Expr) { checkIndex("Ident", i, 0) }

func (p *Plus) SetChild(i int, e Expr) {
	checkIndex("Plus", i, len(p.Terms))
	p.Terms[i] = e
}

func (m *Mult) SetChild(i int, e Expr) {
	checkIndex("Mult", i, len(m.Factors))
	m.Factors[i] = e
}

func (m *Minus) SetChild(i int, e Expr) {
	checkIndex("Minus", i, 2)
	if i == 0 {
		m.Left = e
	} else {
		m.Right = e
	}
}

func (d *Div) SetChild(i int, e Expr) {
	checkIndex("Div", i, 2)
	if i == 0 {
		d.Left = e
	} else {
		d.Right = e
	}
}

func (u *UnaryFn) SetChild(i int, e Expr) {
	checkIndex("UnaryFn", i, 1)
	u.Arg = e
}
