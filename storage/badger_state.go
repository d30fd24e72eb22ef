package storage

import (
	"github.com/MixinNetwork/rational/common"
	"github.com/dgraph-io/badger/v3"
)

const statePrefix = "STATE"

func (s *BadgerStore) StateGet(key string, val interface{}) (bool, error) {
	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get([]byte(statePrefix + key))
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return true, err
	}
	ival, err := item.ValueCopy(nil)
	if err != nil {
		return true, err
	}
	payload := common.Decompress(ival)
	if payload == nil {
		payload = ival
	}
	return true, common.MsgpackUnmarshal(payload, val)
}

func (s *BadgerStore) StateSet(key string, val interface{}) error {
	return s.db.Update(func(txn *badger.Txn) error {
		ival := common.Compress(common.MsgpackMarshalPanic(val))
		return txn.Set([]byte(statePrefix+key), ival)
	})
}
