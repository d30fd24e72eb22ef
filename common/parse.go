package common

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRational reads "n" as n/1 and "n/d" as given, without reduction.
func ParseRational(s string) (v Rational, err error) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		n, err := parseInteger(s, parts[0])
		if err != nil {
			return v, err
		}
		v.n.Set(n)
		v.d.SetInt64(1)
		return v, nil
	case 2:
		n, err := parseInteger(s, parts[0])
		if err != nil {
			return v, err
		}
		d, err := parseInteger(s, parts[1])
		if err != nil {
			return v, err
		}
		if d.Sign() == 0 {
			return v, fmt.Errorf("ParseRational(%s) %w", s, ErrInvalidRational)
		}
		v.n.Set(n)
		v.d.Set(d)
		return v, nil
	default:
		return v, fmt.Errorf("ParseRational(%s) tokens %d %w", s, len(parts), ErrParse)
	}
}

func parseInteger(s, token string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(token, 10)
	if !ok {
		return nil, fmt.Errorf("ParseRational(%s) integer %q %w", s, token, ErrParse)
	}
	return i, nil
}

// NewRationalFromDecimal converts a decimal literal such as "0.125" or
// "-3.5e2" into the exact fraction it denotes.
func NewRationalFromDecimal(s string) (v Rational, err error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return v, fmt.Errorf("NewRationalFromDecimal(%s) %s %w", s, err.Error(), ErrParse)
	}
	r := d.Rat()
	v.n.Set(r.Num())
	v.d.Set(r.Denom())
	return v, nil
}

// Decimal divides r to the given number of decimal places, rounding half
// away from zero.
func (r Rational) Decimal(places int32) decimal.Decimal {
	n := decimal.NewFromBigInt(r.num(), 0)
	d := decimal.NewFromBigInt(r.den(), 0)
	return n.DivRound(d, places)
}

func (r Rational) StringFixed(places int32) string {
	return r.Decimal(places).StringFixed(places)
}
