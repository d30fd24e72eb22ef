package common

import (
	"fmt"
	"math/big"
)

var (
	ZeroRat Rational
	OneRat  Rational

	bigOne = big.NewInt(1)
)

func init() {
	ZeroRat = NewRational(0, 1)
	OneRat = NewRational(1, 1)
}

// Rational is an exact fraction of two arbitrary-precision integers.
//
// A Rational is immutable and may hold an unreduced numerator and denominator,
// including a negative denominator. Reduction only happens on demand, in
// String, Equal and Reduce. The zero value reads as 0/1.
type Rational struct {
	n big.Int
	d big.Int
}

// TryRational returns n/d, or ErrInvalidRational when d is zero.
func TryRational(n, d int64) (v Rational, err error) {
	if d == 0 {
		return v, fmt.Errorf("TryRational(%d, %d) %w", n, d, ErrInvalidRational)
	}
	v.n.SetInt64(n)
	v.d.SetInt64(d)
	return v, nil
}

// NewRational is like TryRational but panics on a zero denominator.
func NewRational(n, d int64) Rational {
	v, err := TryRational(n, d)
	if err != nil {
		panic(err)
	}
	return v
}

func NewRationalFromBig(n, d *big.Int) (v Rational, err error) {
	if n == nil || d == nil || d.Sign() == 0 {
		return v, fmt.Errorf("NewRationalFromBig(%v, %v) %w", n, d, ErrInvalidRational)
	}
	v.n.Set(n)
	v.d.Set(d)
	return v, nil
}

func (r Rational) num() *big.Int {
	return &r.n
}

func (r Rational) den() *big.Int {
	if r.d.Sign() == 0 {
		return bigOne
	}
	return &r.d
}

// Num returns a copy of the stored numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.num())
}

// Denom returns a copy of the stored denominator, 1 for the zero value.
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.den())
}

func (r Rational) Add(x Rational) (v Rational) {
	var a, b big.Int
	a.Mul(r.num(), x.den())
	b.Mul(x.num(), r.den())
	v.n.Add(&a, &b)
	v.d.Mul(r.den(), x.den())
	return
}

func (r Rational) Sub(x Rational) (v Rational) {
	var a, b big.Int
	a.Mul(r.num(), x.den())
	b.Mul(x.num(), r.den())
	v.n.Sub(&a, &b)
	v.d.Mul(r.den(), x.den())
	return
}

func (r Rational) Mul(x Rational) (v Rational) {
	v.n.Mul(r.num(), x.num())
	v.d.Mul(r.den(), x.den())
	return
}

// Div returns r/x, or ErrInvalidRational when x is zero.
func (r Rational) Div(x Rational) (v Rational, err error) {
	if x.num().Sign() == 0 {
		return v, fmt.Errorf("Div(%s, %s) %w", r, x, ErrInvalidRational)
	}
	v.n.Mul(r.num(), x.den())
	v.d.Mul(r.den(), x.num())
	return v, nil
}

func (r Rational) Neg() (v Rational) {
	v.n.Neg(r.num())
	v.d.Set(r.den())
	return
}

// Inv returns d/n, or ErrInvalidRational when r is zero.
func (r Rational) Inv() (v Rational, err error) {
	if r.num().Sign() == 0 {
		return v, fmt.Errorf("Inv(%s) %w", r, ErrInvalidRational)
	}
	v.n.Set(r.den())
	v.d.Set(r.num())
	return v, nil
}

func (r Rational) Abs() (v Rational) {
	v.n.Abs(r.num())
	v.d.Abs(r.den())
	return
}

func (r Rational) Sign() int {
	return r.num().Sign() * r.den().Sign()
}

func (r Rational) IsZero() bool {
	return r.num().Sign() == 0
}

func (r Rational) IsInteger() bool {
	return new(big.Int).Rem(r.num(), r.den()).Sign() == 0
}

// Cmp compares r and x by cross-multiplication and returns -1, 0 or +1.
// The result is flipped when exactly one of the denominators is negative.
func (r Rational) Cmp(x Rational) int {
	var a, b big.Int
	a.Mul(r.num(), x.den())
	b.Mul(x.num(), r.den())
	c := a.Cmp(&b)
	if r.den().Sign() != x.den().Sign() {
		return -c
	}
	return c
}

// Within reports whether lo <= r <= hi.
func (r Rational) Within(lo, hi Rational) bool {
	return lo.Cmp(r) <= 0 && r.Cmp(hi) <= 0
}

// Reduce divides numerator and denominator by their greatest common divisor
// and moves the sign to the numerator.
func (r Rational) Reduce() (v Rational) {
	n, d := r.num(), r.den()
	g := GCD(new(big.Int).Abs(n), new(big.Int).Abs(d))
	v.n.Quo(n, g)
	v.d.Quo(d, g)
	if v.d.Sign() < 0 {
		v.n.Neg(&v.n)
		v.d.Neg(&v.d)
	}
	return
}

// Equal reports whether r and x denote the same number, regardless of
// how either is stored.
func (r Rational) Equal(x Rational) bool {
	a, b := r.Reduce(), x.Reduce()
	return a.n.Cmp(&b.n) == 0 && a.d.Cmp(&b.d) == 0
}

// EqualFloat64 compares the reduced forms of r and x as float64 ratios.
// Distinct fractions that round to the same float64 compare equal.
func (r Rational) EqualFloat64(x Rational) bool {
	a, b := r.Reduce(), x.Reduce()
	return a.ratio() == b.ratio()
}

func (r Rational) ratio() float64 {
	n, _ := new(big.Float).SetInt(r.num()).Float64()
	d, _ := new(big.Float).SetInt(r.den()).Float64()
	return n / d
}

// Float64 returns the float64 nearest to r.
func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(r.num(), r.den()).Float64()
	return f
}

// String renders the canonical form: the integer when the fraction divides
// evenly, otherwise the reduced "n/d" with a positive denominator.
func (r Rational) String() string {
	n, d := r.num(), r.den()
	if d.Cmp(bigOne) == 0 {
		return n.String()
	}
	if new(big.Int).Rem(n, d).Sign() == 0 {
		return new(big.Int).Quo(n, d).String()
	}
	v := r.Reduce()
	return v.n.String() + "/" + v.d.String()
}

// GCD returns the greatest common divisor of x and y by Euclid's algorithm,
// with GCD(x, 0) = x. The sign follows the truncated remainders, callers
// wanting a positive divisor pass absolute values.
func GCD(x, y *big.Int) *big.Int {
	a, b := new(big.Int).Set(x), new(big.Int).Set(y)
	for b.Sign() != 0 {
		a, b = b, a.Rem(a, b)
	}
	return a
}
