package store

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// The interface a generic store must implement to retain basic functionality
// that is common across all stores.
type IStore interface {
	Prefix() string
	WriteSnapshot() error
	LoadFromDB() error
}

type StoreKey = string
type StoreData[T any] map[StoreKey]T // Stores value not pointer. Use Set/Update to mutate data safely.

// Severs v from the store's backing storage. A plain struct copy still
// aliases reference fields (maps, slices), so types carrying those implement
// Clone and get deep-copied; value-only types pass through as-is. Every
// value crossing the store boundary, in or out, goes through here.
func detach[T any](v T) T {
	if c, ok := any(v).(interface{ Clone() T }); ok {
		return c.Clone()
	}

	return v
}

// Returns a detached copy of the underlying map containing the store data.
func (sd StoreData[T]) copyAll() StoreData[T] {
	cpy := make(StoreData[T], len(sd))
	for k, v := range sd {
		cpy[k] = detach(v)
	}

	return cpy
}

// Essentially a persistent cache that can be interfaced with like a KV store.
//
// Each store is backed by a key prefix inside a shared badger DB which the
// cache is populated from when initialized. Reads are served from memory;
// every write goes through to badger before the lock is released, so the
// cache and the DB cannot drift apart.
//
// The store is thread-safe and can be used concurrently across multiple goroutines.
type Store[T any] struct {
	db     *badger.DB // May be nil for a purely in-memory store.
	prefix string     // Key namespace inside the shared DB, i.e. "nations/".
	data   StoreData[T]
	mu     sync.RWMutex
}

// Creates a new store over the given key prefix, populated from db.
// A nil db yields an in-memory store with no persistence.
func New[T any](db *badger.DB, prefix string) (*Store[T], error) {
	s := &Store[T]{
		db:     db,
		prefix: prefix,
		data:   make(map[StoreKey]T),
	}

	if err := s.LoadFromDB(); err != nil {
		return nil, fmt.Errorf("failed to load store '%s': %w", prefix, err)
	}

	return s, nil
}

func (s *Store[T]) Prefix() string {
	return s.prefix
}

// Keys are stored insensitively, exactly like values are fetched.
func (s *Store[T]) dbKey(key StoreKey) []byte {
	return []byte(strings.ToLower(s.prefix + key))
}

func (s *Store[T]) persist(txn *badger.Txn, key StoreKey, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return txn.Set(s.dbKey(key), data)
}

func (s *Store[T]) Keys() []StoreKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]StoreKey, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}

	return keys
}

func (s *Store[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make([]T, 0, len(s.data))
	for _, v := range s.data {
		values = append(values, detach(v))
	}

	return values
}

func (s *Store[T]) ValuesSorted(cmp func(a, b T) int) []T {
	s.mu.RLock()
	values := make([]T, 0, len(s.data))
	for _, v := range s.data {
		values = append(values, detach(v))
	}
	s.mu.RUnlock()

	slices.SortFunc(values, cmp)
	return values
}

func (s *Store[T]) Entries() StoreData[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a snapshot of the map to avoid returning the original one,
	// since using the same pointer could allow unwanted data mutations.
	return s.data.copyAll()
}

func (s *Store[T]) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data) == 0
}

func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}

func (s *Store[T]) HasKey(key StoreKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[key]
	return ok
}

// Deletes the value associated with key from the cache and the DB.
func (s *Store[T]) Delete(key StoreKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}

	if s.db != nil {
		err := s.db.Update(func(txn *badger.Txn) error {
			return txn.Delete(s.dbKey(key))
		})
		if err != nil {
			return err
		}
	}

	delete(s.data, key)
	return nil
}

// Creates or overwrites the value at key, writing through to the DB.
func (s *Store[T]) Set(key StoreKey, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		err := s.db.Update(func(txn *badger.Txn) error {
			return s.persist(txn, key, value)
		})
		if err != nil {
			return err
		}
	}

	s.data[key] = detach(value)
	return nil
}

// Retrieves a detached copy of the value associated with key.
func (s *Store[T]) Get(key StoreKey) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.data[key]; ok {
		v = detach(v)
		return &v, nil
	}

	return nil, fmt.Errorf("could not get value for key '%s' from store: %s. no such key exists", key, s.prefix)
}

// Applies f to the value at key while holding the write lock, then persists
// the result. The whole read-modify-write is a single atomic step: no other
// goroutine can observe or mutate the value in between. If f returns an
// error, nothing is changed.
func (s *Store[T]) Update(key StoreKey, f func(v *T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	if !ok {
		return fmt.Errorf("could not update value for key '%s' in store: %s. no such key exists", key, s.prefix)
	}

	// f works on a detached copy: an error abort leaves the stored value
	// untouched even when f mutated a map or slice field before failing.
	v = detach(v)
	if err := f(&v); err != nil {
		return err
	}

	if s.db != nil {
		err := s.db.Update(func(txn *badger.Txn) error {
			return s.persist(txn, key, v)
		})
		if err != nil {
			return err
		}
	}

	s.data[key] = v
	return nil
}

// Finds and immediately returns the first value in the store that passes the predicate.
func (s *Store[T]) Find(predicate func(value T) bool) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.data {
		if predicate(v) {
			match := detach(v)
			return &match, nil
		}
	}

	return nil, fmt.Errorf("no matching value found in store: %s", s.prefix)
}

// Like Find(), but returns all values that pass the predicate instead of just one.
func (s *Store[T]) FindAll(predicate func(value T) bool) (results []T) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.data {
		if predicate(v) {
			results = append(results, detach(v))
		}
	}

	return
}

// Iterates over the store data, calling iteratee for every element.
func (s *Store[T]) ForEach(iteratee func(k StoreKey, v T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for k, v := range s.data {
		iteratee(k, detach(v))
	}
}

// Overwrite the current cache state with data from the backing DB.
// This should only be called when the cache is empty and needs fresh data,
// i.e. at startup or when restoring from a backup.
func (s *Store[T]) LoadFromDB() error {
	if s.db == nil {
		return nil
	}

	data := make(StoreData[T])
	prefix := []byte(strings.ToLower(s.prefix))

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := strings.TrimPrefix(string(item.Key()), string(prefix))

			var v T
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &v)
			})
			if err != nil {
				return err
			}

			data[key] = v
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()

	return nil
}

// Re-writes every cached entry to the backing DB in one transaction.
// Normal operation writes through on every mutation, so this is only needed
// as a safety net at shutdown.
func (s *Store[T]) WriteSnapshot() error {
	if s.db == nil {
		return nil
	}

	s.mu.RLock()
	cpy := s.data.copyAll()
	s.mu.RUnlock()

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for k, v := range cpy {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if err := wb.Set(s.dbKey(k), data); err != nil {
			return err
		}
	}

	return wb.Flush()
}
