package storage

import (
	"github.com/MixinNetwork/rational/common"
)

type Store interface {
	Close() error

	StateGet(key string, val interface{}) (bool, error)
	StateSet(key string, val interface{}) error

	WriteRational(name string, r common.Rational) error
	ReadRational(name string) (common.Rational, bool, error)
	RemoveRational(name string) error
	ListRationals() ([]*NamedRational, error)
}
