// Package catalog keeps a persistent registry of named intervals.
//
// Each record is stored under its name. A second keyspace indexes the records by
// the order of their intervals, so that listing and range lookups do not need to sort.
package catalog

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofrs/uuid/v5"
	"github.com/ostafen/interval"
	"github.com/ostafen/interval/internal/keycode"
	"github.com/ostafen/interval/store"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	recordPrefix = "record"
	orderPrefix  = "order"
)

var (
	ErrNotFound    = errors.New("no such interval")
	ErrInvalidName = errors.New("interval name cannot be empty")
)

// Record is a named interval as kept in the catalog.
type Record struct {
	ID        uuid.UUID                  `msgpack:"id" json:"id"`
	Name      string                     `msgpack:"name" json:"name"`
	Interval  interval.Interval[float64] `msgpack:"interval" json:"interval"`
	CreatedAt time.Time                  `msgpack:"created_at" json:"created_at"`
	UpdatedAt time.Time                  `msgpack:"updated_at" json:"updated_at"`
}

type Catalog struct {
	store  store.Store
	config *Config
}

// Open returns a catalog persisted in s. Closing the catalog closes s.
func Open(s store.Store, opts ...Option) (*Catalog, error) {
	config, err := defaultConfig().applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Catalog{store: s, config: config}, nil
}

func (c *Catalog) Close() error {
	return c.store.Close()
}

func recordKey(name string) ([]byte, error) {
	return keycode.Append(nil, recordPrefix, name)
}

func orderKey(i interval.Interval[float64], name string) ([]byte, error) {
	key, err := keycode.Append(nil, orderPrefix)
	if err != nil {
		return nil, err
	}

	sortKey, err := i.SortKey()
	if err != nil {
		return nil, err
	}
	return keycode.Append(append(key, sortKey...), name)
}

// Put stores i under name, replacing the interval previously registered with the same name.
func (c *Catalog) Put(name string, i interval.Interval[float64]) (*Record, error) {
	if name == "" {
		return nil, ErrInvalidName
	}

	var record *Record
	err := store.Update(c.store, func(tx store.Tx) error {
		existing, err := getRecord(tx, name)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		now := time.Now()
		if existing != nil {
			if err := deleteOrderKey(tx, existing); err != nil {
				return err
			}
			record = existing
		} else {
			id, err := uuid.NewV4()
			if err != nil {
				return err
			}
			record = &Record{ID: id, Name: name, CreatedAt: now}
		}
		record.Interval = i
		record.UpdatedAt = now

		return putRecord(tx, record)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "storing interval %q", name)
	}

	c.config.Logger.Debug("Interval stored", "name", name, "interval", i, "id", record.ID)
	return record, nil
}

func (c *Catalog) Get(name string) (*Record, error) {
	var record *Record
	err := store.View(c.store, func(tx store.Tx) error {
		var err error
		record, err = getRecord(tx, name)
		return err
	})
	return record, err
}

// Delete removes the interval registered under name.
func (c *Catalog) Delete(name string) error {
	err := store.Update(c.store, func(tx store.Tx) error {
		record, err := getRecord(tx, name)
		if err != nil {
			return err
		}

		if err := deleteOrderKey(tx, record); err != nil {
			return err
		}

		key, err := recordKey(name)
		if err != nil {
			return err
		}
		return tx.Delete(key)
	})
	if err != nil {
		return err
	}

	c.config.Logger.Debug("Interval deleted", "name", name)
	return nil
}

// List returns every record, sorted by interval and then by name.
func (c *Catalog) List() ([]*Record, error) {
	var records []*Record
	err := c.forEach(func(r *Record) error {
		records = append(records, r)
		return nil
	})
	return records, err
}

// Containing returns the records whose interval contains x, sorted as List does.
func (c *Catalog) Containing(x float64) ([]*Record, error) {
	var records []*Record
	err := c.forEach(func(r *Record) error {
		if r.Interval.IsEmpty() {
			return nil
		}

		// records are sorted by minimum, none of the following ones can reach x
		if r.Interval.Minimum() > x {
			return store.ErrStopIteration
		}

		if r.Interval.Contains(x) {
			records = append(records, r)
		}
		return nil
	})
	return records, err
}

// Intersecting returns the non-empty records which intersect i, sorted as List does.
// Intervals touching i at a value included by either of them are reported as well.
func (c *Catalog) Intersecting(i interval.Interval[float64]) ([]*Record, error) {
	if i.IsEmpty() {
		return nil, nil
	}

	var records []*Record
	err := c.forEach(func(r *Record) error {
		if r.Interval.IsEmpty() {
			return nil
		}

		details := r.Interval.Classify(i)
		if details.IsFullyAbove() {
			return store.ErrStopIteration
		}

		if details.IsIntersecting() {
			records = append(records, r)
		}
		return nil
	})
	return records, err
}

func (c *Catalog) forEach(consumer func(r *Record) error) error {
	prefix, err := keycode.Append(nil, orderPrefix)
	if err != nil {
		return err
	}

	return store.View(c.store, func(tx store.Tx) error {
		return store.IteratePrefix(tx, prefix, func(item store.Item) error {
			record, err := getRecord(tx, string(item.Value))
			if err != nil {
				return errors.Wrapf(err, "reading record indexed by %x", item.Key)
			}
			return consumer(record)
		})
	})
}

func getRecord(tx store.Tx, name string) (*Record, error) {
	key, err := recordKey(name)
	if err != nil {
		return nil, err
	}

	data, err := tx.Get(key)
	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}

	record := &Record{}
	if err := msgpack.Unmarshal(data, record); err != nil {
		return nil, errors.Wrapf(err, "decoding record %q", name)
	}
	return record, nil
}

func putRecord(tx store.Tx, record *Record) error {
	data, err := msgpack.Marshal(record)
	if err != nil {
		return err
	}

	key, err := recordKey(record.Name)
	if err != nil {
		return err
	}

	if err := tx.Set(key, data); err != nil {
		return err
	}

	idxKey, err := orderKey(record.Interval, record.Name)
	if err != nil {
		return err
	}
	return tx.Set(idxKey, []byte(record.Name))
}

func deleteOrderKey(tx store.Tx, record *Record) error {
	key, err := orderKey(record.Interval, record.Name)
	if err != nil {
		return err
	}
	return tx.Delete(key)
}

func (r *Record) String() string {
	return r.Name + " " + r.Interval.String()
}
