package store

// --------------------------------------------------------------------------
// Value Type (recursive tagged union)
// --------------------------------------------------------------------------

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	KindNull   Kind = iota // Absent / null value
	KindString             // UTF-8 string
	KindInt                // Signed 64-bit integer
	KindDict               // Mapping from string to Value, recursively nestable
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindString:
		return "String"
	case KindInt:
		return "Int"
	case KindDict:
		return "Dict"
	default:
		return "Unknown"
	}
}

// Value is the unit of storage: a tagged variant over null, string, integer
// and a recursively nestable string-keyed mapping. Values are immutable by
// convention - stores clone on read and callers must not mutate a Value after
// handing it to Put. All fields are exported so every serializer (json, gob)
// can round-trip a Value without custom encoding hooks; only the field
// selected by Kind is meaningful.
type Value struct {
	Kind Kind             `json:"kind"`
	Str  string           `json:"str,omitempty"`
	Int  int64            `json:"int,omitempty"`
	Dict map[string]Value `json:"dict,omitempty"`
}

// Null returns the null Value.
func Null() Value {
	return Value{Kind: KindNull}
}

// String returns a string Value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

// Dict returns a mapping Value. The entries are deep-copied so later mutation
// of m does not leak into the constructed Value.
func Dict(m map[string]Value) Value {
	return Value{Kind: KindDict, Dict: cloneDict(m)}
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	if v.Kind == KindDict {
		return Value{Kind: KindDict, Dict: cloneDict(v.Dict)}
	}
	return v
}

// Equal reports whether two values are deeply equal. Dict entries are
// compared without regard to ordering; a nil dict equals an empty one.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindString:
		return v.Str == other.Str
	case KindInt:
		return v.Int == other.Int
	case KindDict:
		if len(v.Dict) != len(other.Dict) {
			return false
		}
		for key, val := range v.Dict {
			otherVal, ok := other.Dict[key]
			if !ok || !val.Equal(otherVal) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func cloneDict(m map[string]Value) map[string]Value {
	if m == nil {
		return nil
	}
	out := make(map[string]Value, len(m))
	for key, val := range m {
		out[key] = val.Clone()
	}
	return out
}

// --------------------------------------------------------------------------
// Snapshot Type
// --------------------------------------------------------------------------

// Snapshot is the full in-memory state of one shard and the unit of
// durability: it is always serialized and written wholesale, never
// incrementally.
type Snapshot map[string]Value

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for key, val := range s {
		out[key] = val.Clone()
	}
	return out
}
