// Package storetest provides a reusable test suite for store.Store
// implementations. Every backend runs the same suite, so the capability
// contract stays identical across the in-memory and file-backed stores.
package storetest

import (
	"fmt"
	"sync"
	"testing"

	"github.com/kvload/kvload/lib/store"
)

// Factory creates a fresh store instance for one test.
type Factory func(t testing.TB) store.Store

// RunStoreTests runs the capability test suite against a backend.
func RunStoreTests(t *testing.T, name string, factory Factory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Put&Get", func(t *testing.T) {
			testPutGet(t, factory(t))
		})

		t.Run("Overwrite", func(t *testing.T) {
			testOverwrite(t, factory(t))
		})

		t.Run("NotFound", func(t *testing.T) {
			testNotFound(t, factory(t))
		})

		t.Run("CloneOnRead", func(t *testing.T) {
			testCloneOnRead(t, factory(t))
		})

		t.Run("NestedValues", func(t *testing.T) {
			testNestedValues(t, factory(t))
		})

		t.Run("SpawnSharesState", func(t *testing.T) {
			testSpawnSharesState(t, factory(t))
		})

		t.Run("ConcurrentHandles", func(t *testing.T) {
			testConcurrentHandles(t, factory(t))
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testPutGet(t *testing.T, s store.Store) {
	defer s.Close()

	cases := map[string]store.Value{
		"null-key": store.Null(),
		"str-key":  store.String("some value"),
		"int-key":  store.Int(-42),
	}

	for key, value := range cases {
		if err := s.Put(key, value); err != nil {
			t.Fatalf("Put(%s) failed: %v", key, err)
		}
	}

	for key, want := range cases {
		got, err := s.Get(key)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", key, err)
		}
		if !got.Equal(want) {
			t.Errorf("Get(%s) = %v, want %v", key, got, want)
		}
	}
}

func testOverwrite(t *testing.T, s store.Store) {
	defer s.Close()

	if err := s.Put("key", store.String("first")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put("key", store.String("second")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.Equal(store.String("second")) {
		t.Errorf("expected last write to win, got %v", got)
	}
}

func testNotFound(t *testing.T, s store.Store) {
	defer s.Close()

	_, err := s.Get("never-stored")
	if err == nil {
		t.Fatal("expected an error for a key that was never stored")
	}
	if !store.IsNotFound(err) {
		t.Errorf("expected a NotFound error, got %v", err)
	}
}

func testCloneOnRead(t *testing.T, s store.Store) {
	defer s.Close()

	original := store.Dict(map[string]store.Value{
		"inner": store.String("untouched"),
	})
	if err := s.Put("dict-key", original); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("dict-key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	// Mutating the returned value must not leak into the store.
	got.Dict["inner"] = store.String("tampered")

	again, err := s.Get("dict-key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !again.Equal(original) {
		t.Errorf("stored value changed after mutating a read result: %v", again)
	}
}

func testNestedValues(t *testing.T, s store.Store) {
	defer s.Close()

	nested := store.Dict(map[string]store.Value{
		"name": store.String("outer"),
		"info": store.Dict(map[string]store.Value{
			"count": store.Int(3),
			"more": store.Dict(map[string]store.Value{
				"leaf": store.Null(),
			}),
		}),
	})

	if err := s.Put("nested", nested); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := s.Get("nested")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.Equal(nested) {
		t.Errorf("nested value mismatch: got %v, want %v", got, nested)
	}
}

func testSpawnSharesState(t *testing.T, s store.Store) {
	defer s.Close()

	if err := s.Put("shared", store.Int(7)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	handle, err := s.Spawn()
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	got, err := handle.Get("shared")
	if err != nil {
		t.Fatalf("Get on spawned handle failed: %v", err)
	}
	if !got.Equal(store.Int(7)) {
		t.Errorf("spawned handle sees %v, want %v", got, store.Int(7))
	}

	// Writes through the new handle are visible through the old one.
	if err := handle.Put("shared-back", store.String("from spawn")); err != nil {
		t.Fatalf("Put on spawned handle failed: %v", err)
	}
	got, err = s.Get("shared-back")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.Equal(store.String("from spawn")) {
		t.Errorf("original handle sees %v after spawned write", got)
	}
}

func testConcurrentHandles(t *testing.T, s store.Store) {
	defer s.Close()

	const workers = 8
	const keysPerWorker = 50

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for w := 0; w < workers; w++ {
		handle, err := s.Spawn()
		if err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}

		wg.Add(1)
		go func(worker int, h store.Store) {
			defer wg.Done()
			for i := 0; i < keysPerWorker; i++ {
				key := fmt.Sprintf("worker%d-key%d", worker, i)
				if err := h.Put(key, store.Int(int64(i))); err != nil {
					errs[worker] = err
					return
				}
			}
		}(w, handle)
	}
	wg.Wait()

	for w, err := range errs {
		if err != nil {
			t.Fatalf("worker %d failed: %v", w, err)
		}
	}

	for w := 0; w < workers; w++ {
		for i := 0; i < keysPerWorker; i++ {
			key := fmt.Sprintf("worker%d-key%d", w, i)
			got, err := s.Get(key)
			if err != nil {
				t.Fatalf("Get(%s) failed: %v", key, err)
			}
			if !got.Equal(store.Int(int64(i))) {
				t.Errorf("Get(%s) = %v, want %v", key, got, store.Int(int64(i)))
			}
		}
	}
}
