package filestore

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRouterProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("routing is deterministic for a fixed shard count", prop.ForAll(
		func(key string, shardCount int) bool {
			r := router{shardCount: shardCount}
			return r.route(key) == r.route(key)
		},
		gen.AnyString(),
		gen.IntRange(1, 64),
	))

	properties.Property("routed index is always in range", prop.ForAll(
		func(key string, shardCount int) bool {
			r := router{shardCount: shardCount}
			index := r.route(key)
			return index >= 0 && index < shardCount
		},
		gen.AnyString(),
		gen.IntRange(1, 64),
	))

	properties.Property("a single shard receives everything", prop.ForAll(
		func(key string) bool {
			r := router{shardCount: 1}
			return r.route(key) == 0
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// The hash must stay stable across releases: shard files written by one
// version have to remain reachable by the next.
func TestHashKeyStable(t *testing.T) {
	// Reference values of FNV-1a 64.
	cases := map[string]uint64{
		"":    14695981039346656037,
		"a":   12638187200555641996,
		"Key": 5794842004658536780,
	}

	for key, want := range cases {
		if got := hashKey(key); got != want {
			t.Errorf("hashKey(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestRouterSpreadsKeys(t *testing.T) {
	r := router{shardCount: 8}

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[r.route(string(rune('a'+i%26))+string(rune('0'+i%10)))] = true
	}

	// With 1000 keys over 8 shards every shard should see traffic.
	if len(seen) != 8 {
		t.Errorf("expected all 8 shards to be hit, got %d", len(seen))
	}
}
