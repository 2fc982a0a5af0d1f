package engine_util

import (
	"github.com/Connor1996/badger"
	"github.com/golang/protobuf/proto"
)

func GetValue(db *badger.DB, key []byte) (val []byte, err error) {
	err = db.View(func(txn *badger.Txn) error {
		item, err1 := txn.Get(key)
		if err1 != nil {
			return err1
		}
		val, err1 = item.ValueCopy(val)
		return err1
	})
	return
}

// GetMeta does a point lookup for key and unmarshals the stored value into
// msg. Returns badger.ErrKeyNotFound when no record exists.
func GetMeta(db *badger.DB, key []byte, msg proto.Message) error {
	var val []byte
	err := db.View(func(txn *badger.Txn) error {
		item, err1 := txn.Get(key)
		if err1 != nil {
			return err1
		}
		val, err1 = item.Value()
		return err1
	})
	if err != nil {
		return err
	}
	return proto.Unmarshal(val, msg)
}

func GetMetaFromTxn(txn *badger.Txn, key []byte, msg proto.Message) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	val, err := item.Value()
	if err != nil {
		return err
	}
	return proto.Unmarshal(val, msg)
}

func PutMeta(db *badger.DB, key []byte, msg proto.Message) error {
	val, err := proto.Marshal(msg)
	if err != nil {
		return err
	}
	return db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
}

func DeleteKey(db *badger.DB, key []byte) error {
	return db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}
