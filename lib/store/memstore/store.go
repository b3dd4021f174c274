package memstore

import (
	"sync"

	"github.com/kvload/kvload/lib/store"
)

// storeImpl is a map guarded by a single shared mutex. Every handle produced
// by Spawn points at the same mutex and the same map, so the lifetime of the
// shared state is that of the longest-lived handle.
type storeImpl struct {
	mu     *sync.Mutex
	values map[string]store.Value
}

// New creates a new shared in-memory store. It has no persistence and minimal
// coordination overhead, which makes it the baseline backend for relative
// throughput comparisons.
func New() store.Store {
	return &storeImpl{
		mu:     &sync.Mutex{},
		values: make(map[string]store.Value, 128),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Get(key string) (store.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return store.Null(), store.NewErrorf(store.RetCNotFound, "key not found: %s", key)
	}
	return value.Clone(), nil
}

func (s *storeImpl) Put(key string, value store.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Spawn returns a new handle sharing the same lock and map.
//
// Thread-safety: the returned handle can be used concurrently with this one.
func (s *storeImpl) Spawn() (store.Store, error) {
	return &storeImpl{mu: s.mu, values: s.values}, nil
}

func (s *storeImpl) Close() error {
	return nil
}
