package rpc

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
)

func (impl *R) binaryOperation(method string, params []interface{}) (map[string]interface{}, error) {
	if len(params) != 2 {
		return nil, errors.New("invalid params count")
	}
	a, err := parseParam(params[0])
	if err != nil {
		return nil, err
	}
	b, err := parseParam(params[1])
	if err != nil {
		return nil, err
	}

	var v common.Rational
	switch method {
	case "add":
		v = a.Add(b)
	case "sub":
		v = a.Sub(b)
	case "mul":
		v = a.Mul(b)
	case "div":
		v, err = a.Div(b)
		if err != nil {
			return nil, err
		}
	}
	return impl.renderRational(v), nil
}

func (impl *R) negate(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	a, err := parseParam(params[0])
	if err != nil {
		return nil, err
	}
	return impl.renderRational(a.Neg()), nil
}

func (impl *R) canonicalize(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	a, err := parseParam(params[0])
	if err != nil {
		return nil, err
	}
	return impl.renderRational(a), nil
}

func (impl *R) toDecimal(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 2 {
		return nil, errors.New("invalid params count")
	}
	a, err := parseParam(params[0])
	if err != nil {
		return nil, err
	}
	places, err := strconv.ParseInt(fmt.Sprint(params[1]), 10, 32)
	if err != nil || places < 0 {
		return nil, fmt.Errorf("invalid decimal places %v", params[1])
	}
	return map[string]interface{}{
		"result":  impl.canonical(a),
		"decimal": a.StringFixed(int32(places)),
	}, nil
}

func (impl *R) compare(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 2 {
		return nil, errors.New("invalid params count")
	}
	a, err := parseParam(params[0])
	if err != nil {
		return nil, err
	}
	b, err := parseParam(params[1])
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"cmp": a.Cmp(b)}, nil
}

func (impl *R) equal(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 2 {
		return nil, errors.New("invalid params count")
	}
	a, err := parseParam(params[0])
	if err != nil {
		return nil, err
	}
	b, err := parseParam(params[1])
	if err != nil {
		return nil, err
	}
	equal := a.Equal(b)
	if impl.Custom.Node.Equality == config.EqualityFloat {
		equal = a.EqualFloat64(b)
	}
	return map[string]interface{}{
		"equal":    equal,
		"equality": impl.Custom.Node.Equality,
	}, nil
}

func (impl *R) renderRational(v common.Rational) map[string]interface{} {
	return map[string]interface{}{
		"result":      impl.canonical(v),
		"numerator":   v.Num().String(),
		"denominator": v.Denom().String(),
	}
}

// canonical memoizes String by the unreduced representation.
func (impl *R) canonical(v common.Rational) string {
	key := []byte(v.Num().String() + "/" + v.Denom().String())
	if val, ok := impl.cache.HasGet(nil, key); ok {
		return string(val)
	}
	s := v.String()
	logger.Debugf("canonical cache miss %s => %s\n", key, s)
	impl.cache.Set(key, []byte(s))
	return s
}

func parseParam(p interface{}) (common.Rational, error) {
	s := fmt.Sprint(p)
	if len(s) > config.MaxOperandBytes {
		return common.ZeroRat, fmt.Errorf("operand too large %d", len(s))
	}
	return common.ParseRational(s)
}
