// Package bbolt implements store.Store on a single bbolt file.
package bbolt

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/ostafen/interval/store"
	"go.etcd.io/bbolt"
)

const (
	dbFileName = "intervals.db"
	rootBucket = "intervals"
)

type boltStore struct {
	db *bbolt.DB
}

// Open opens, or creates, the store kept in dir.
func Open(dir string) (store.Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(filepath.Join(dir, dbFileName), 0o666, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "opening bbolt store in %s", dir)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(rootBucket))
		return err
	})
	if err != nil {
		return nil, errors.CombineErrors(err, db.Close())
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Begin(update bool) (store.Tx, error) {
	tx, err := s.db.Begin(update)
	if err != nil {
		return nil, err
	}
	return &boltTx{tx: tx, bucket: tx.Bucket([]byte(rootBucket))}, nil
}

func (s *boltStore) Close() error {
	return s.db.Close()
}

type boltTx struct {
	tx     *bbolt.Tx
	bucket *bbolt.Bucket
}

func (tx *boltTx) Set(key, value []byte) error {
	return tx.bucket.Put(key, value)
}

func (tx *boltTx) Get(key []byte) ([]byte, error) {
	return tx.bucket.Get(key), nil
}

func (tx *boltTx) Delete(key []byte) error {
	return tx.bucket.Delete(key)
}

func (tx *boltTx) Cursor(forward bool) (store.Cursor, error) {
	return &boltCursor{cursor: tx.bucket.Cursor(), forward: forward}, nil
}

func (tx *boltTx) Commit() error {
	return tx.tx.Commit()
}

func (tx *boltTx) Rollback() error {
	err := tx.tx.Rollback()
	if errors.Is(err, bbolt.ErrTxClosed) {
		return nil
	}
	return err
}

type boltCursor struct {
	cursor  *bbolt.Cursor
	forward bool

	key, value []byte
}

func (c *boltCursor) Seek(seek []byte) error {
	c.key, c.value = c.cursor.Seek(seek)

	// a backward cursor starts from the last key not greater than seek
	if !c.forward && (c.key == nil || !bytes.Equal(c.key, seek)) {
		if c.key == nil {
			c.key, c.value = c.cursor.Last()
		} else {
			c.key, c.value = c.cursor.Prev()
		}
	}
	return nil
}

func (c *boltCursor) Next() {
	if c.forward {
		c.key, c.value = c.cursor.Next()
	} else {
		c.key, c.value = c.cursor.Prev()
	}
}

func (c *boltCursor) Valid() bool {
	return c.key != nil
}

func (c *boltCursor) Item() (store.Item, error) {
	return store.Item{Key: c.key, Value: c.value}, nil
}

func (c *boltCursor) Close() error {
	return nil
}
