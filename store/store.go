// Package store defines the ordered key/value storage the catalog persists intervals into.
package store

import (
	"bytes"

	"github.com/cockroachdb/errors"
)

// ErrStopIteration can be returned by an iteration callback to end the scan without an error.
var ErrStopIteration = errors.New("iteration stopped")

type Store interface {
	Begin(update bool) (Tx, error)
	Close() error
}

// Tx is a transaction over the store. Keys are ordered bytewise.
// Get returns a nil value when the key does not exist.
type Tx interface {
	Set(key, value []byte) error
	Get(key []byte) ([]byte, error)
	Delete(key []byte) error
	Cursor(forward bool) (Cursor, error)
	Commit() error
	Rollback() error
}

type Cursor interface {
	Seek(key []byte) error
	Next()
	Valid() bool
	Item() (Item, error)
	Close() error
}

type Item struct {
	Key, Value []byte
}

// View runs fn in a read-only transaction.
func View(s Store, fn func(tx Tx) error) error {
	tx, err := s.Begin(false)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	return fn(tx)
}

// Update runs fn in a read-write transaction, committing it when fn succeeds.
func Update(s Store, fn func(tx Tx) error) error {
	tx, err := s.Begin(true)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		return errors.CombineErrors(err, tx.Rollback())
	}
	return tx.Commit()
}

// IteratePrefix calls consumer, in key order, for each item whose key starts with prefix.
func IteratePrefix(tx Tx, prefix []byte, consumer func(item Item) error) error {
	cursor, err := tx.Cursor(true)
	if err != nil {
		return err
	}
	defer cursor.Close()

	if err := cursor.Seek(prefix); err != nil {
		return err
	}

	for ; cursor.Valid(); cursor.Next() {
		item, err := cursor.Item()
		if err != nil {
			return err
		}

		if !bytes.HasPrefix(item.Key, prefix) {
			return nil
		}

		err = consumer(item)

		// do not propagate iteration stop error
		if errors.Is(err, ErrStopIteration) {
			return nil
		}

		if err != nil {
			return err
		}
	}
	return nil
}
