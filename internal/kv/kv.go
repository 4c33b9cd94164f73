// ABOUTME: Embedded badger key-value store for cache entries and preferences.
// ABOUTME: Thread-safe wrapper with prefix listing and value-log GC.
package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/rs/zerolog/log"
)

// Key prefixes used by the collaborators of the store.
const (
	CachePrefix = "cache:"
	PrefPrefix  = "pref:"
)

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("key not found")

// Store wraps a badger database.
type Store struct {
	db *badger.DB
	mu sync.RWMutex
}

// Open opens or creates a badger store in dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create kv directory: %w", err)
	}

	opts := badger.DefaultOptions(filepath.Clean(dir)).WithLogger(badgerLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open kv store: %w", err)
	}

	log.Debug().Str("dir", dir).Msg("KV store opened")
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that never touches disk.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(badgerLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory kv store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the badger database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns a copy of the value stored under key.
func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return val, nil
}

// Set stores data under key, overwriting any previous value.
func (s *Store) Set(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys returns every key starting with prefix, in key order.
func (s *Store) Keys(prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list keys %s: %w", prefix, err)
	}
	return keys, nil
}

// DeletePrefix removes every key starting with prefix and returns how many
// were removed.
func (s *Store) DeletePrefix(prefix string) (int, error) {
	keys, err := s.Keys(prefix)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.db.Update(func(txn *badger.Txn) error {
		for _, k := range keys {
			if err := txn.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete prefix %s: %w", prefix, err)
	}
	return len(keys), nil
}

// RunGC reclaims value-log space. Nothing to rewrite is not an error.
func (s *Store) RunGC() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		err := s.db.RunValueLogGC(0.5)
		if err == nil {
			continue
		}
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		return fmt.Errorf("value log gc: %w", err)
	}
}
