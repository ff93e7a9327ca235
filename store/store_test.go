package store_test

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/inconshreveable/log15"
	"github.com/ostafen/interval/store"
	"github.com/ostafen/interval/store/badger"
	"github.com/ostafen/interval/store/bbolt"
	"github.com/stretchr/testify/require"
)

func runStoreTest(t *testing.T, test func(t *testing.T, s store.Store)) {
	logger := log.New()
	logger.SetHandler(log.DiscardHandler())

	backends := map[string]func(dir string) (store.Store, error){
		"bbolt": bbolt.Open,
		"badger": func(dir string) (store.Store, error) {
			return badger.Open(dir, badger.WithLogger(logger))
		},
		"badger-memory": func(string) (store.Store, error) {
			return badger.OpenInMemory(badger.WithLogger(logger))
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			s, err := open(t.TempDir())
			require.NoError(t, err)
			defer func() {
				require.NoError(t, s.Close())
			}()
			test(t, s)
		})
	}
}

func TestSetGetDelete(t *testing.T) {
	runStoreTest(t, func(t *testing.T, s store.Store) {
		err := store.Update(s, func(tx store.Tx) error {
			return tx.Set([]byte("key"), []byte("value"))
		})
		require.NoError(t, err)

		err = store.View(s, func(tx store.Tx) error {
			value, err := tx.Get([]byte("key"))
			require.NoError(t, err)
			require.Equal(t, []byte("value"), value)

			value, err = tx.Get([]byte("missing"))
			require.NoError(t, err)
			require.Nil(t, value)
			return nil
		})
		require.NoError(t, err)

		err = store.Update(s, func(tx store.Tx) error {
			return tx.Delete([]byte("key"))
		})
		require.NoError(t, err)

		err = store.View(s, func(tx store.Tx) error {
			value, err := tx.Get([]byte("key"))
			require.NoError(t, err)
			require.Nil(t, value)
			return nil
		})
		require.NoError(t, err)
	})
}

func TestUpdateRollsBackOnError(t *testing.T) {
	runStoreTest(t, func(t *testing.T, s store.Store) {
		failure := fmt.Errorf("failure")
		err := store.Update(s, func(tx store.Tx) error {
			require.NoError(t, tx.Set([]byte("key"), []byte("value")))
			return failure
		})
		require.ErrorIs(t, err, failure)

		err = store.View(s, func(tx store.Tx) error {
			value, err := tx.Get([]byte("key"))
			require.NoError(t, err)
			require.Nil(t, value)
			return nil
		})
		require.NoError(t, err)
	})
}

func TestIteratePrefix(t *testing.T) {
	runStoreTest(t, func(t *testing.T, s store.Store) {
		n := 100
		err := store.Update(s, func(tx store.Tx) error {
			for i := 0; i < n; i++ {
				if err := tx.Set([]byte(fmt.Sprintf("a:%03d", i)), []byte(gofakeit.Word())); err != nil {
					return err
				}
				if err := tx.Set([]byte(fmt.Sprintf("b:%03d", i)), []byte(gofakeit.Word())); err != nil {
					return err
				}
			}
			return nil
		})
		require.NoError(t, err)

		err = store.View(s, func(tx store.Tx) error {
			var keys []string
			err := store.IteratePrefix(tx, []byte("b:"), func(item store.Item) error {
				keys = append(keys, string(item.Key))
				return nil
			})
			require.NoError(t, err)
			require.Len(t, keys, n)
			for i, key := range keys {
				require.Equal(t, fmt.Sprintf("b:%03d", i), key)
			}

			count := 0
			err = store.IteratePrefix(tx, []byte("a:"), func(item store.Item) error {
				count++
				if count == 10 {
					return store.ErrStopIteration
				}
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, 10, count)

			return store.IteratePrefix(tx, []byte("c:"), func(item store.Item) error {
				t.Fatalf("unexpected key %s", item.Key)
				return nil
			})
		})
		require.NoError(t, err)
	})
}

func TestReverseCursor(t *testing.T) {
	runStoreTest(t, func(t *testing.T, s store.Store) {
		err := store.Update(s, func(tx store.Tx) error {
			for _, k := range []string{"a", "c", "e"} {
				if err := tx.Set([]byte(k), []byte(k)); err != nil {
					return err
				}
			}
			return nil
		})
		require.NoError(t, err)

		err = store.View(s, func(tx store.Tx) error {
			cursor, err := tx.Cursor(false)
			require.NoError(t, err)
			defer cursor.Close()

			require.NoError(t, cursor.Seek([]byte("d")))

			var keys []string
			for ; cursor.Valid(); cursor.Next() {
				item, err := cursor.Item()
				require.NoError(t, err)
				keys = append(keys, string(item.Key))
			}
			require.Equal(t, []string{"c", "a"}, keys)
			return nil
		})
		require.NoError(t, err)
	})
}
