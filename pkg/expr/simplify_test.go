package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplify_PlusFoldsConstants(t *testing.T) {
	e := &Plus{Terms: []Expr{num(2), num(3), x()}}
	s, ok := Simplify(e).(*Plus)
	require.True(t, ok)
	require.Len(t, s.Terms, 2)

	assert.Equal(t, "x", s.Terms[0].String())
	c, ok := s.Terms[1].(*Const)
	require.True(t, ok)
	assert.Equal(t, 5.0, c.Val)
}

func TestSimplify_MultFoldsConstants(t *testing.T) {
	e := &Mult{Factors: []Expr{num(2), x(), num(-0.5), x()}}
	s := Simplify(e)
	assert.Equal(t, "(x * x * -1)", s.String())
}

func TestSimplify_NoConstantsLeavesShape(t *testing.T) {
	e := &Plus{Terms: []Expr{x(), &Mult{Factors: []Expr{x(), x()}}}}
	s := Simplify(e)
	assert.Equal(t, e.String(), s.String())
	assert.NotSame(t, Expr(e), s)
}

func TestSimplify_AllConstantNary(t *testing.T) {
	s := Simplify(&Plus{Terms: []Expr{num(1), num(2)}})
	p, ok := s.(*Plus)
	require.True(t, ok)
	require.Len(t, p.Terms, 1)
	assert.Equal(t, "(3)", p.String())
}

func TestSimplify_BinaryAndUnary(t *testing.T) {
	assert.Equal(t, "4", Simplify(&Minus{Left: num(6), Right: num(2)}).String())
	assert.Equal(t, "0.25", Simplify(&Div{Left: num(1), Right: num(4)}).String())
	assert.Equal(t, "3", Simplify(&UnaryFn{Fn: FnSqrt, Arg: num(9)}).String())

	// nested: sin(x) / (8 - 2) -> (sin(x)/6)
	e := &Div{
		Left:  &UnaryFn{Fn: FnSin, Arg: x()},
		Right: &Minus{Left: num(8), Right: num(2)},
	}
	assert.Equal(t, "(sin(x)/6)", Simplify(e).String())
}

func TestSimplify_PreservesValue(t *testing.T) {
	e := &Plus{Terms: []Expr{
		&Mult{Factors: []Expr{num(2), x(), num(3)}},
		&UnaryFn{Fn: FnExp, Arg: &Minus{Left: num(1), Right: num(2)}},
		num(4),
	}}
	env := Env{"x": 1.7}
	want, err := e.Eval(env)
	require.NoError(t, err)
	got, err := Simplify(e).Eval(env)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

func TestSimplify_InvalidConstantSubtreeStaysUnfolded(t *testing.T) {
	e := &Div{Left: num(1), Right: num(0)}
	s := Simplify(e)
	assert.IsType(t, &Div{}, s)
	_, err := s.Eval(nil)
	assert.Error(t, err)

	l := Simplify(&UnaryFn{Fn: FnLog, Arg: &Minus{Left: num(1), Right: num(3)}})
	u, ok := l.(*UnaryFn)
	require.True(t, ok)
	assert.Equal(t, -2.0, u.Arg.(*Const).Val)

	// Plus/Mult fold by plain arithmetic and never fail
	big := Simplify(&Mult{Factors: []Expr{num(1e300), num(1e300)}})
	assert.True(t, math.IsInf(big.(*Mult).Factors[0].(*Const).Val, 1))
}

func TestSimplify_DoesNotAliasInput(t *testing.T) {
	e := &Minus{Left: x(), Right: &Ident{Name: "y"}}
	s := Simplify(e).(*Minus)
	s.SetChild(0, num(1))
	assert.Equal(t, "(x - y)", e.String())
}
