package database

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	log "github.com/sirupsen/logrus"

	"nationsim/database/store"
	"nationsim/structs"
)

type StoreDefinition[T any] struct {
	Name string
}

var NATIONS_STORE = StoreDefinition[structs.Nation]{Name: "nations"}
var WARS_STORE = StoreDefinition[structs.War]{Name: "wars"}
var REQUESTS_STORE = StoreDefinition[structs.DiplomaticRequest]{Name: "requests"}
var ACTIVITY_STORE = StoreDefinition[structs.PlayerActivity]{Name: "activity"}
var NEWS_STORE = StoreDefinition[structs.NewsItem]{Name: "news"}

// A database that is responsible for multiple persistent caches aka "stores".
// All stores share a single badger DB underneath, each namespaced by its own
// key prefix. Stores are assigned once at startup and retrieved for use later.
type Database struct {
	badgerDB *badger.DB
	stores   map[string]store.IStore
	storeMu  sync.RWMutex // Guards access to `stores`.
	flushMu  sync.Mutex   // Ensures multiple flushes cannot happen simultaneously.
}

// Opens (or creates) the badger DB at dir and wraps it in a [Database].
//
// NOTE: To add a store to this DB, call [AssignStore] with the appropriate
// store definition.
func Open(dir string) (*Database, error) {
	opts := badger.DefaultOptions(dir)
	opts.ZSTDCompressionLevel = 2
	opts.NumLevelZeroTables = 1
	opts.NumVersionsToKeep = 1
	opts.CompactL0OnClose = true
	opts.Logger = nil

	bdb, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Database{
		badgerDB: bdb,
		stores:   make(map[string]store.IStore),
	}, nil
}

// An in-memory database with no persistence. Used by tests.
func OpenEphemeral() *Database {
	return &Database{stores: make(map[string]store.IStore)}
}

func (db *Database) BadgerDB() *badger.DB {
	return db.badgerDB
}

// Calls WriteSnapshot on every store in this DB, flushing current state to badger.
// A mutex lock is acquired before the loop, ensuring no two flushes can run simultaneously.
func (db *Database) Flush() error {
	errs := []error{}

	db.flushMu.Lock()
	defer db.flushMu.Unlock()

	db.storeMu.RLock()
	defer db.storeMu.RUnlock()

	for name, s := range db.stores {
		if err := s.WriteSnapshot(); err != nil {
			errs = append(errs, fmt.Errorf("store %s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func (db *Database) Close() error {
	if err := db.Flush(); err != nil {
		log.Errorf("failed to flush stores before close: %v", err)
	}

	if db.badgerDB == nil {
		return nil
	}

	return db.badgerDB.Close()
}

// Creates a new store and adds it to the given database's stores.
// Returns the existing store if one is already assigned under the same name.
func AssignStore[T any](db *Database, storeDef StoreDefinition[T]) (*store.Store[T], error) {
	db.storeMu.Lock()
	defer db.storeMu.Unlock()

	if s, ok := db.stores[storeDef.Name]; ok {
		return s.(*store.Store[T]), nil
	}

	s, err := store.New[T](db.badgerDB, storeDef.Name+"/")
	if err != nil {
		return nil, fmt.Errorf("failed to create store '%s': %w", storeDef.Name, err)
	}

	db.stores[storeDef.Name] = s
	return s, nil
}

// Retrieves a previously assigned store by its definition.
func GetStore[T any](db *Database, storeDef StoreDefinition[T]) (*store.Store[T], error) {
	db.storeMu.RLock()
	defer db.storeMu.RUnlock()

	si, ok := db.stores[storeDef.Name]
	if !ok {
		return nil, fmt.Errorf("could not find store '%s' in db", storeDef.Name)
	}

	s, ok := si.(*store.Store[T])
	if !ok {
		return nil, fmt.Errorf(
			"store '%s' exists but with a different type: expected *Store[%T], got %T",
			storeDef.Name, (*store.Store[T])(nil), si,
		)
	}

	return s, nil
}
