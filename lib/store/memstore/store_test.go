package memstore

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/kvload/kvload/lib/store"
	"github.com/kvload/kvload/lib/store/storetest"
)

func TestSharedMemoryStore(t *testing.T) {
	storetest.RunStoreTests(t, "memstore", func(_ testing.TB) store.Store {
		return New()
	})
}

func TestPutGetProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("get returns what put stored", prop.ForAll(
		func(key, val string) bool {
			s := New()
			defer s.Close()

			if err := s.Put(key, store.String(val)); err != nil {
				return false
			}
			got, err := s.Get(key)
			return err == nil && got.Equal(store.String(val))
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("last write wins", prop.ForAll(
		func(key string, first, second int64) bool {
			s := New()
			defer s.Close()

			if err := s.Put(key, store.Int(first)); err != nil {
				return false
			}
			if err := s.Put(key, store.Int(second)); err != nil {
				return false
			}
			got, err := s.Get(key)
			return err == nil && got.Equal(store.Int(second))
		},
		gen.AnyString(),
		gen.Int64(),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestSingleOwnerBasicOps(t *testing.T) {
	s := NewSingleOwner()
	defer s.Close()

	if err := s.Put("key", store.String("value")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := s.Get("key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.Equal(store.String("value")) {
		t.Errorf("Get = %v, want %v", got, store.String("value"))
	}
}

func TestSingleOwnerCannotSpawn(t *testing.T) {
	s := NewSingleOwner()
	defer s.Close()

	_, err := s.Spawn()
	if err == nil {
		t.Fatal("expected Spawn to fail on a single-owner store")
	}
	if !store.IsCode(err, store.RetCInvalidOperation) {
		t.Errorf("expected an InvalidOperation error, got %v", err)
	}
}
