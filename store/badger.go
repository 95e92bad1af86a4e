// Package store provides a durable badger-backed implementation of the keyed
// store the engine writes its records into.
package store

import (
	"os"
	"time"

	"github.com/dgraph-io/badger"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"forestlab/sdk"
)

// Badger adapts a badger database to the engine's keyed store. The engine
// assumes the store never fails mid-operation; a storage fault here is a host
// fault, so writes that error are fatal rather than silently dropped.
type Badger struct {
	db  *badger.DB
	log zerolog.Logger
}

var _ sdk.State = (*Badger)(nil)

// Open creates the directory if needed and opens the database in it.
func Open(dir string, log zerolog.Logger) (*Badger, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrapf(err, "create %q", dir)
	}
	opts := badger.DefaultOptions(dir)
	opts = opts.WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger")
	}
	b := &Badger{
		db:  db,
		log: log.With().Str("component", "store").Logger(),
	}
	go b.gc()
	return b, nil
}

// Close flushes and closes the underlying database.
func (b *Badger) Close() error {
	return b.db.Close()
}

// gc reclaims value log space in the background while the store is open.
func (b *Badger) gc() {
	for {
		time.Sleep(time.Hour)
		err := b.db.RunValueLogGC(0.5)
		if err != nil && err != badger.ErrNoRewrite {
			if err == badger.ErrRejected {
				return
			}
			b.log.Error().Err(err).Msg("value log gc failed")
		}
	}
}

// Set writes one key. A write failure means the host volume is broken, which
// the engine cannot recover from.
func (b *Badger) Set(key, value string) {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		b.log.Fatal().Err(err).Msg("storage write failed")
	}
}

// Get reads one key, nil when absent.
func (b *Badger) Get(key string) *string {
	var out *string
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			s := string(val)
			out = &s
			return nil
		})
	})
	if err != nil {
		b.log.Fatal().Err(err).Msg("storage read failed")
	}
	return out
}

// Delete removes one key; deleting an absent key is a no-op.
func (b *Badger) Delete(key string) {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		b.log.Fatal().Err(err).Msg("storage delete failed")
	}
}
