package xmemstore

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/kvload/kvload/lib/store"
)

// storeImpl stores values in an xsync.MapOf, which shards keys internally and
// serves reads without taking a lock.
type storeImpl struct {
	values *xsync.MapOf[string, store.Value]
}

// New creates a new lock-free in-memory store. Compared to the mutex baseline
// in memstore it trades a coarse critical section for the concurrent map's
// internal sharding, which makes the difference between the two directly
// visible in load generator runs.
func New() store.Store {
	return &storeImpl{values: xsync.NewMapOf[string, store.Value]()}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Get(key string) (store.Value, error) {
	value, ok := s.values.Load(key)
	if !ok {
		return store.Null(), store.NewErrorf(store.RetCNotFound, "key not found: %s", key)
	}
	return value.Clone(), nil
}

func (s *storeImpl) Put(key string, value store.Value) error {
	s.values.Store(key, value)
	return nil
}

// Spawn returns a new handle over the same concurrent map.
func (s *storeImpl) Spawn() (store.Store, error) {
	return &storeImpl{values: s.values}, nil
}

func (s *storeImpl) Close() error {
	return nil
}
