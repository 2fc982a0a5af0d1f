package engine_util

import (
	"io/ioutil"
	"testing"

	"github.com/Connor1996/badger"
	"github.com/stretchr/testify/require"
	"github.com/tabletkv/tabletkv/config"
	"github.com/tabletkv/tabletkv/proto/pkg/txnpb"
)

func newTestEngines(t *testing.T) *Engines {
	dir, err := ioutil.TempDir("", "test_engine_util")
	require.Nil(t, err)
	conf := config.DefaultConf.Engine
	conf.DBPath = dir
	conf.SyncWrite = false
	db := CreateDB("kv", &conf)
	return NewEngines(db, dir)
}

func TestEngineUtil(t *testing.T) {
	engines := newTestEngines(t)
	defer engines.Destroy()
	db := engines.Kv

	batch := new(WriteBatch)
	batch.Set([]byte("a"), []byte("a1"))
	batch.Set([]byte("b"), []byte("b1"))
	batch.Set([]byte("c"), []byte("c1"))
	batch.Delete([]byte("c"))
	require.Nil(t, engines.WriteKV(batch))

	val, err := GetValue(db, []byte("a"))
	require.Nil(t, err)
	require.Equal(t, []byte("a1"), val)
	val, err = GetValue(db, []byte("b"))
	require.Nil(t, err)
	require.Equal(t, []byte("b1"), val)
	_, err = GetValue(db, []byte("c"))
	require.Equal(t, badger.ErrKeyNotFound, err)

	batch.Reset()
	require.Equal(t, 0, batch.Len())
}

func TestWriteBatchSafePoint(t *testing.T) {
	engines := newTestEngines(t)
	defer engines.Destroy()

	batch := new(WriteBatch)
	batch.Set([]byte("a"), []byte("a1"))
	batch.SetSafePoint()
	batch.Set([]byte("b"), []byte("b1"))
	batch.RollbackToSafePoint()
	require.Nil(t, batch.WriteToDB(engines.Kv))

	_, err := GetValue(engines.Kv, []byte("a"))
	require.Nil(t, err)
	_, err = GetValue(engines.Kv, []byte("b"))
	require.Equal(t, badger.ErrKeyNotFound, err)
}

func TestMetaRoundTrip(t *testing.T) {
	engines := newTestEngines(t)
	defer engines.Destroy()
	db := engines.Kv

	meta := &txnpb.TxnMeta{
		TransactionId: []byte("0123456789abcdef"),
		StatusTablet:  "status-tablet-1",
		Priority:      3,
	}
	key := []byte("m")
	require.Nil(t, PutMeta(db, key, meta))

	got := new(txnpb.TxnMeta)
	require.Nil(t, GetMeta(db, key, got))
	require.Equal(t, meta.TransactionId, got.TransactionId)
	require.Equal(t, meta.StatusTablet, got.StatusTablet)
	require.Equal(t, meta.Priority, got.Priority)

	require.Nil(t, db.View(func(txn *badger.Txn) error {
		inTxn := new(txnpb.TxnMeta)
		if err := GetMetaFromTxn(txn, key, inTxn); err != nil {
			return err
		}
		require.Equal(t, meta.StatusTablet, inTxn.StatusTablet)
		return nil
	}))

	require.Nil(t, DeleteKey(db, key))
	err := GetMeta(db, key, got)
	require.Equal(t, badger.ErrKeyNotFound, err)

	// Staging through a batch behaves like PutMeta.
	batch := new(WriteBatch)
	require.Nil(t, batch.SetMeta(key, meta))
	require.Equal(t, 1, batch.Len())
	batch.MustWriteToDB(db)
	require.Nil(t, GetMeta(db, key, got))
	require.Equal(t, meta.Priority, got.Priority)
}
