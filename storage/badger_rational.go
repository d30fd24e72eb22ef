package storage

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/MixinNetwork/rational/common"
	"github.com/dgraph-io/badger/v3"
)

const rationalPrefix = "RATIONAL"

var (
	ErrInvalidName = errors.New("invalid rational name")

	namePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,64}$`)
)

type NamedRational struct {
	Name  string          `json:"name" msgpack:"N"`
	Value common.Rational `json:"value" msgpack:"V"`
}

func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w %q", ErrInvalidName, name)
	}
	return nil
}

// WriteRational stores r under name exactly as given, without reduction.
func (s *BadgerStore) WriteRational(name string, r common.Rational) error {
	err := ValidateName(name)
	if err != nil {
		return err
	}
	_, err = r.MarshalMsgpack()
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		val := common.CompressMsgpackMarshalPanic(r)
		return txn.Set(rationalKey(name), val)
	})
}

func (s *BadgerStore) ReadRational(name string) (common.Rational, bool, error) {
	err := ValidateName(name)
	if err != nil {
		return common.ZeroRat, false, err
	}
	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(rationalKey(name))
	if err == badger.ErrKeyNotFound {
		return common.ZeroRat, false, nil
	} else if err != nil {
		return common.ZeroRat, false, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return common.ZeroRat, false, err
	}
	var r common.Rational
	err = common.DecompressMsgpackUnmarshal(val, &r)
	return r, true, err
}

func (s *BadgerStore) RemoveRational(name string) error {
	err := ValidateName(name)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(rationalKey(name))
	})
}

func (s *BadgerStore) ListRationals() ([]*NamedRational, error) {
	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	prefix := []byte(rationalPrefix)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	var list []*NamedRational
	for it.Seek(prefix); it.Valid(); it.Next() {
		item := it.Item()
		key := item.KeyCopy(nil)
		val, err := item.ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		nr := &NamedRational{Name: string(key[len(prefix):])}
		err = common.DecompressMsgpackUnmarshal(val, &nr.Value)
		if err != nil {
			return nil, err
		}
		list = append(list, nr)
	}
	return list, nil
}

func rationalKey(name string) []byte {
	return []byte(rationalPrefix + name)
}
