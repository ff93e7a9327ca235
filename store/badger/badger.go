// Package badger implements store.Store on badger, on disk or in memory.
package badger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v4"
	log "github.com/inconshreveable/log15"
	"github.com/ostafen/interval/store"
)

const (
	GCReclaimIntervalDefault = time.Minute * 5
	GCDiscardRatioDefault    = 0.5
)

// Config contains the parameters of the badger store.
type Config struct {
	GCReclaimInterval time.Duration
	GCDiscardRatio    float64
	Logger            log.Logger
}

func defaultConfig() *Config {
	return &Config{
		GCReclaimInterval: GCReclaimIntervalDefault,
		GCDiscardRatio:    GCDiscardRatioDefault,
		Logger:            log.Root(),
	}
}

// Option is a function that takes a config struct and modifies it
type Option func(c *Config) error

// WithGCReclaimInterval sets how often the value log garbage collection runs.
func WithGCReclaimInterval(d time.Duration) Option {
	return func(c *Config) error {
		if d <= 0 {
			return errors.Newf("gc interval must be positive, got %s", d)
		}
		c.GCReclaimInterval = d
		return nil
	}
}

// WithGCDiscardRatio sets the fraction of stale data a value log file needs to be rewritten.
func WithGCDiscardRatio(ratio float64) Option {
	return func(c *Config) error {
		if ratio <= 0 || ratio >= 1 {
			return errors.Newf("gc discard ratio must be in (0, 1), got %v", ratio)
		}
		c.GCDiscardRatio = ratio
		return nil
	}
}

func WithLogger(logger log.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

type badgerStore struct {
	db     *badger.DB
	config *Config

	chWg   sync.WaitGroup
	chQuit chan struct{}
}

// Open opens, or creates, the store kept in dir.
func Open(dir string, opts ...Option) (store.Store, error) {
	return open(badger.DefaultOptions(dir), opts)
}

// OpenInMemory opens a store which is lost when closed.
func OpenInMemory(opts ...Option) (store.Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), opts)
}

func open(badgerOpts badger.Options, opts []Option) (store.Store, error) {
	config := defaultConfig()
	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	db, err := badger.Open(badgerOpts.WithLogger(&logAdapter{config.Logger}))
	if err != nil {
		return nil, errors.Wrap(err, "opening badger store")
	}

	s := &badgerStore{
		db:     db,
		config: config,
		chQuit: make(chan struct{}),
	}

	// value log files only exist on disk
	if !badgerOpts.InMemory {
		s.startGC()
	}
	return s, nil
}

func (s *badgerStore) Begin(update bool) (store.Tx, error) {
	return &badgerTx{txn: s.db.NewTransaction(update)}, nil
}

func (s *badgerStore) Close() error {
	close(s.chQuit)
	s.chWg.Wait()
	return s.db.Close()
}

func (s *badgerStore) startGC() {
	s.chWg.Add(1)

	go func() {
		defer s.chWg.Done()

		ticker := time.NewTicker(s.config.GCReclaimInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.chQuit:
				return

			case <-ticker.C:
				err := s.db.RunValueLogGC(s.config.GCDiscardRatio)
				if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
					s.config.Logger.Warn("Value log garbage collection failed", "err", err)
				}
			}
		}
	}()
}

type badgerTx struct {
	txn *badger.Txn
}

func (tx *badgerTx) Set(key, value []byte) error {
	return tx.txn.Set(key, value)
}

func (tx *badgerTx) Get(key []byte) ([]byte, error) {
	item, err := tx.txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (tx *badgerTx) Delete(key []byte) error {
	return tx.txn.Delete(key)
}

func (tx *badgerTx) Commit() error {
	return tx.txn.Commit()
}

func (tx *badgerTx) Rollback() error {
	tx.txn.Discard()
	return nil
}

func (tx *badgerTx) Cursor(forward bool) (store.Cursor, error) {
	opts := badger.DefaultIteratorOptions
	opts.Reverse = !forward
	return &badgerCursor{it: tx.txn.NewIterator(opts)}, nil
}

type badgerCursor struct {
	it *badger.Iterator
}

func (c *badgerCursor) Seek(key []byte) error {
	c.it.Seek(key)
	return nil
}

func (c *badgerCursor) Next() {
	c.it.Next()
}

func (c *badgerCursor) Valid() bool {
	return c.it.Valid()
}

func (c *badgerCursor) Item() (store.Item, error) {
	item := c.it.Item()
	value, err := item.ValueCopy(nil)
	return store.Item{Key: item.KeyCopy(nil), Value: value}, err
}

func (c *badgerCursor) Close() error {
	c.it.Close()
	return nil
}

// logAdapter routes the badger log through log15.
type logAdapter struct {
	logger log.Logger
}

func (l *logAdapter) Errorf(format string, args ...interface{}) {
	l.logger.Error(sprintf(format, args...), "module", "badger")
}

func (l *logAdapter) Warningf(format string, args ...interface{}) {
	l.logger.Warn(sprintf(format, args...), "module", "badger")
}

func (l *logAdapter) Infof(format string, args ...interface{}) {
	l.logger.Debug(sprintf(format, args...), "module", "badger")
}

func (l *logAdapter) Debugf(format string, args ...interface{}) {
	l.logger.Debug(sprintf(format, args...), "module", "badger")
}

func sprintf(format string, args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
}
