package common

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRational(t *testing.T) {
	assert := assert.New(t)

	half := NewRational(1, 2)
	third := NewRational(1, 3)
	twoThirds := NewRational(2, 3)

	sum := half.Add(third)
	assert.Equal("5/6", sum.String())
	assert.True(NewRational(5, 6).Equal(sum))
	assert.Equal(int64(5), sum.Num().Int64())
	assert.Equal(int64(6), sum.Denom().Int64())

	difference := half.Sub(third)
	assert.Equal("1/6", difference.String())
	assert.True(NewRational(1, 6).Equal(difference))

	product := half.Mul(third)
	assert.Equal("1/6", product.String())

	quotient, err := half.Div(third)
	assert.Nil(err)
	assert.Equal("3/2", quotient.String())
	assert.True(NewRational(3, 2).Equal(quotient))

	negation := half.Neg()
	assert.Equal("-1/2", negation.String())
	assert.True(NewRational(-1, 2).Equal(negation))
	assert.Equal("1/2", half.String())

	assert.Equal("2", NewRational(2, 1).String())
	assert.Equal("-1/2", NewRational(-2, 4).String())
	assert.Equal(-1, half.Cmp(twoThirds))
	assert.Equal(1, twoThirds.Cmp(half))
	assert.Equal(0, half.Cmp(NewRational(2, 4)))
	assert.True(half.Within(third, twoThirds))
	assert.False(NewRational(3, 4).Within(third, twoThirds))
	assert.True(third.Within(third, twoThirds))

	assert.True(NewRational(2000000000, 4000000000).Equal(half))
	n, _ := new(big.Int).SetString("912016490186296920119201192141970416029", 10)
	d, _ := new(big.Int).SetString("1824032980372593840238402384283940832058", 10)
	large, err := NewRationalFromBig(n, d)
	assert.Nil(err)
	assert.True(large.Equal(half))
	assert.Equal("1/2", large.String())
}

func TestRationalUnreduced(t *testing.T) {
	assert := assert.New(t)

	sum := NewRational(1, 4).Add(NewRational(1, 4))
	assert.Equal(int64(8), sum.Num().Int64())
	assert.Equal(int64(16), sum.Denom().Int64())
	assert.Equal("1/2", sum.String())

	r := sum.Reduce()
	assert.Equal(int64(1), r.Num().Int64())
	assert.Equal(int64(2), r.Denom().Int64())
	assert.Equal(int64(8), sum.Num().Int64())

	assert.Equal("3", NewRational(6, 2).String())
	assert.Equal("-3", NewRational(6, -2).String())
	assert.Equal("-1/2", NewRational(1, -2).String())
	assert.Equal("1/2", NewRational(-1, -2).String())
	assert.Equal("0", NewRational(0, 7).String())
	assert.Equal("0", Rational{}.String())
	assert.True(Rational{}.Equal(ZeroRat))
	assert.Equal(0, Rational{}.Cmp(NewRational(0, -3)))
}

func TestRationalNegativeDenominator(t *testing.T) {
	assert := assert.New(t)

	a := NewRational(1, -2)
	b := NewRational(1, 3)
	assert.Equal(-1, a.Cmp(b))
	assert.Equal(1, b.Cmp(a))
	assert.Equal(0, a.Cmp(NewRational(-1, 2)))
	assert.Equal(-1, NewRational(-1, -2).Neg().Cmp(NewRational(1, -3)))
	assert.Equal(-1, a.Sign())
	assert.Equal(1, NewRational(-1, -2).Sign())
	assert.Equal("1/2", a.Abs().String())
	assert.True(a.Equal(NewRational(-2, 4)))
}

func TestRationalProperties(t *testing.T) {
	assert := assert.New(t)

	values := []Rational{
		NewRational(1, 2),
		NewRational(-3, 7),
		NewRational(5, -9),
		NewRational(117, 1098),
		NewRational(-40, -6),
		NewRational(0, 5),
		NewRational(123456789, 1000),
	}
	for _, a := range values {
		for _, b := range values {
			assert.True(a.Add(b).Equal(b.Add(a)), "%s + %s", a, b)
			assert.True(a.Mul(b).Equal(b.Mul(a)), "%s * %s", a, b)
			assert.Equal(a.Cmp(b), -b.Cmp(a), "%s <=> %s", a, b)
			assert.True(a.Sub(b).Add(b).Equal(a), "%s - %s + %s", a, b, b)
		}
		assert.True(a.Neg().Neg().Equal(a))
		assert.True(a.Add(a.Neg()).IsZero())
		if a.IsZero() {
			continue
		}
		inv, err := OneRat.Div(a)
		assert.Nil(err)
		assert.Equal("1", a.Mul(inv).String())
		inv2, err := a.Inv()
		assert.Nil(err)
		assert.True(inv.Equal(inv2))
	}
}

func TestRationalDivisionByZero(t *testing.T) {
	assert := assert.New(t)

	_, err := NewRational(1, 2).Div(NewRational(0, 3))
	assert.True(errors.Is(err, ErrInvalidRational))
	_, err = NewRational(1, 2).Div(Rational{})
	assert.True(errors.Is(err, ErrInvalidRational))
	_, err = ZeroRat.Inv()
	assert.True(errors.Is(err, ErrInvalidRational))

	_, err = TryRational(1, 0)
	assert.True(errors.Is(err, ErrInvalidRational))
	_, err = NewRationalFromBig(big.NewInt(1), new(big.Int))
	assert.True(errors.Is(err, ErrInvalidRational))
	_, err = NewRationalFromBig(nil, big.NewInt(1))
	assert.True(errors.Is(err, ErrInvalidRational))
	assert.Panics(func() { NewRational(1, 0) })
}

func TestRationalEqualFloat64(t *testing.T) {
	assert := assert.New(t)

	assert.True(NewRational(2, 4).EqualFloat64(NewRational(1, 2)))
	assert.False(NewRational(1, 3).EqualFloat64(NewRational(1, 2)))

	n := new(big.Int).Lsh(big.NewInt(1), 60)
	a, err := NewRationalFromBig(n, big.NewInt(3))
	require.Nil(t, err)
	b, err := NewRationalFromBig(new(big.Int).Add(n, big.NewInt(3)), big.NewInt(3))
	require.Nil(t, err)
	assert.False(a.Equal(b))
	assert.True(a.EqualFloat64(b))
	assert.Equal(-1, a.Cmp(b))
}

func TestRationalFloat64(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0.5, NewRational(1, 2).Float64())
	assert.Equal(-0.25, NewRational(1, -4).Float64())
	assert.Equal(0.0, Rational{}.Float64())
	assert.True(NewRational(10, 5).IsInteger())
	assert.False(NewRational(10, 4).IsInteger())
}

func TestGCD(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int64(9), GCD(big.NewInt(117), big.NewInt(1098)).Int64())
	assert.Equal(int64(7), GCD(big.NewInt(7), big.NewInt(0)).Int64())
	assert.Equal(int64(7), GCD(big.NewInt(0), big.NewInt(7)).Int64())
	assert.Equal(int64(1), GCD(big.NewInt(13), big.NewInt(122)).Int64())

	x, y := big.NewInt(12), big.NewInt(18)
	assert.Equal(int64(6), GCD(x, y).Int64())
	assert.Equal(int64(12), x.Int64())
	assert.Equal(int64(18), y.Int64())
}
