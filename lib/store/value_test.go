package store

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestValueProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a value equals its clone", prop.ForAll(
		func(s string) bool {
			v := String(s)
			return v.Equal(v.Clone())
		},
		gen.AnyString(),
	))

	properties.Property("int values compare by payload", prop.ForAll(
		func(a, b int64) bool {
			return Int(a).Equal(Int(b)) == (a == b)
		},
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("dict clone is independent of the original", prop.ForAll(
		func(key, val string) bool {
			original := Dict(map[string]Value{key: String(val)})
			clone := original.Clone()
			clone.Dict[key] = Int(1)
			inner, ok := original.Dict[key]
			return ok && inner.Equal(String(val))
		},
		gen.Identifier(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestValueEqualAcrossKinds(t *testing.T) {
	if Null().Equal(Int(0)) {
		t.Error("null must not equal int zero")
	}
	if String("").Equal(Null()) {
		t.Error("empty string must not equal null")
	}
	if !Null().Equal(Null()) {
		t.Error("null must equal null")
	}
}

func TestDictNilEqualsEmpty(t *testing.T) {
	// A dict can lose its empty map in a serializer round-trip (omitempty),
	// so nil and empty must compare equal.
	nilDict := Value{Kind: KindDict}
	emptyDict := Dict(map[string]Value{})
	if !nilDict.Equal(emptyDict) {
		t.Error("nil dict must equal empty dict")
	}
}

func TestDictConstructorCopies(t *testing.T) {
	m := map[string]Value{"a": String("x")}
	v := Dict(m)
	m["a"] = Int(2)

	if !v.Dict["a"].Equal(String("x")) {
		t.Error("Dict must not alias the caller's map")
	}
}

func TestSnapshotClone(t *testing.T) {
	snap := Snapshot{
		"a": String("x"),
		"b": Dict(map[string]Value{"c": Int(1)}),
	}
	clone := snap.Clone()
	clone["a"] = Int(9)
	clone["b"].Dict["c"] = Int(2)

	if !snap["a"].Equal(String("x")) {
		t.Error("clone write leaked into original snapshot")
	}
	if !snap["b"].Dict["c"].Equal(Int(1)) {
		t.Error("nested clone write leaked into original snapshot")
	}
}
