package memstore

import (
	"github.com/kvload/kvload/lib/store"
)

// unsharedImpl is a map with no lock at all. It is only safe while exactly
// one goroutine drives it, which is why Spawn refuses to produce a second
// handle.
type unsharedImpl struct {
	values map[string]store.Value
}

// NewSingleOwner creates an in-memory store without any locking. It is useful
// for single-threaded runs and as a building block where exclusive ownership
// is already guaranteed by the caller.
func NewSingleOwner() store.Store {
	return &unsharedImpl{values: make(map[string]store.Value, 128)}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *unsharedImpl) Get(key string) (store.Value, error) {
	value, ok := s.values[key]
	if !ok {
		return store.Null(), store.NewErrorf(store.RetCNotFound, "key not found: %s", key)
	}
	return value.Clone(), nil
}

func (s *unsharedImpl) Put(key string, value store.Value) error {
	s.values[key] = value
	return nil
}

// Spawn fails: this backend is single-owner only.
func (s *unsharedImpl) Spawn() (store.Store, error) {
	return nil, store.NewError(store.RetCInvalidOperation, "single-owner store cannot be shared across threads")
}

func (s *unsharedImpl) Close() error {
	return nil
}
