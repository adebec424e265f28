package bgg

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const thingKeyPrefix = "thing:"

// Cache stores raw thing responses keyed by game id.
type Cache interface {
	Get(gameID string) ([]byte, bool, error)
	Set(gameID string, body []byte) error
}

// BadgerCache keeps thing responses in BadgerDB with a TTL.
type BadgerCache struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenBadgerCache opens (or creates) an on-disk cache in dir.
func OpenBadgerCache(dir string, ttl time.Duration) (*BadgerCache, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open thing cache: %w", err)
	}
	return NewBadgerCache(db, ttl), nil
}

func NewBadgerCache(db *badger.DB, ttl time.Duration) *BadgerCache {
	return &BadgerCache{db: db, ttl: ttl}
}

func (c *BadgerCache) Get(gameID string) ([]byte, bool, error) {
	var body []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(thingKeyPrefix + gameID))
		if err != nil {
			return err
		}
		body, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached thing %s: %w", gameID, err)
	}
	return body, true, nil
}

func (c *BadgerCache) Set(gameID string, body []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(thingKeyPrefix+gameID), body)
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		return txn.SetEntry(entry)
	})
}

func (c *BadgerCache) Close() error {
	return c.db.Close()
}
