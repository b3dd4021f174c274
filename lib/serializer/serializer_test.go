package serializer

import (
	"testing"

	"github.com/kvload/kvload/lib/store"
)

// testSerializers is a map of serializer name to factory function
var testSerializers = map[string]func() Serializer{
	"JSON": NewJSONSerializer,
	"GOB":  NewGOBSerializer,
}

// testSnapshot covers every value variant, including nesting
func testSnapshot() store.Snapshot {
	return store.Snapshot{
		"nothing": store.Null(),
		"name":    store.String("a string with ümläuts and \"quotes\""),
		"count":   store.Int(-12345),
		"nested": store.Dict(map[string]store.Value{
			"inner": store.Dict(map[string]store.Value{
				"leaf": store.Int(1),
			}),
			"flag": store.Null(),
		}),
	}
}

func TestSerializerRoundTrip(t *testing.T) {
	want := testSnapshot()

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			ser := factory()

			data, err := ser.Marshal(want)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}

			got := store.Snapshot{}
			if err := ser.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}

			if len(got) != len(want) {
				t.Fatalf("expected %d entries, got %d", len(want), len(got))
			}
			for key, wantVal := range want {
				gotVal, ok := got[key]
				if !ok {
					t.Errorf("key %s missing after round trip", key)
					continue
				}
				if !gotVal.Equal(wantVal) {
					t.Errorf("key %s: got %v, want %v", key, gotVal, wantVal)
				}
			}
		})
	}
}

func TestSerializerEmptySnapshot(t *testing.T) {
	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			ser := factory()

			data, err := ser.Marshal(store.Snapshot{})
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}

			got := store.Snapshot{}
			if err := ser.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("expected empty snapshot, got %d entries", len(got))
			}
		})
	}
}

func TestSerializerRejectsGarbage(t *testing.T) {
	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			ser := factory()

			got := store.Snapshot{}
			if err := ser.Unmarshal([]byte("definitely not a snapshot"), &got); err == nil {
				t.Error("expected an error for corrupt input")
			}
		})
	}
}

func TestNewByName(t *testing.T) {
	for _, name := range []string{"json", "JSON", " gob \n"} {
		ser, err := New(name)
		if err != nil {
			t.Errorf("New(%q) failed: %v", name, err)
		}
		if ser == nil {
			t.Errorf("New(%q) returned no serializer", name)
		}
	}

	if _, err := New("yaml"); err == nil {
		t.Error("expected an error for an unknown serializer name")
	}
}
