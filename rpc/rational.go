package rpc

import (
	"errors"
	"fmt"

	"github.com/MixinNetwork/rational/common"
)

func (impl *R) setRational(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 2 {
		return nil, errors.New("invalid params count")
	}
	name := fmt.Sprint(params[0])
	v, err := parseParam(params[1])
	if err != nil {
		return nil, err
	}
	err = impl.Store.WriteRational(name, v)
	if err != nil {
		return nil, err
	}
	return impl.renderNamed(name, v), nil
}

func (impl *R) getRational(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	name := fmt.Sprint(params[0])
	v, found, err := impl.Store.ReadRational(name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("rational %s not found", name)
	}
	return impl.renderNamed(name, v), nil
}

func (impl *R) removeRational(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	name := fmt.Sprint(params[0])
	err := impl.Store.RemoveRational(name)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"name": name}, nil
}

func (impl *R) listRationals(params []interface{}) ([]map[string]interface{}, error) {
	if len(params) != 0 {
		return nil, errors.New("invalid params count")
	}
	list, err := impl.Store.ListRationals()
	if err != nil {
		return nil, err
	}
	rationals := make([]map[string]interface{}, len(list))
	for i, nr := range list {
		rationals[i] = impl.renderNamed(nr.Name, nr.Value)
	}
	return rationals, nil
}

func (impl *R) renderNamed(name string, v common.Rational) map[string]interface{} {
	r := impl.renderRational(v)
	r["name"] = name
	return r
}
