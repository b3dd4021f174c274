package serializer

import (
	"fmt"
	"strings"

	"github.com/kvload/kvload/lib/store"
)

// Serializer is the interface for all snapshot codecs. A snapshot is always
// encoded as one self-contained document; there is no incremental or append
// format.
type Serializer interface {
	// Marshal encodes a whole shard snapshot into a byte slice.
	Marshal(snap store.Snapshot) ([]byte, error)
	// Unmarshal decodes a byte slice into the given snapshot.
	// It returns an error if the data is corrupt or in a different format.
	Unmarshal(b []byte, snap *store.Snapshot) error
	// Name returns the identifier this serializer is selected by.
	Name() string
}

// New creates a serializer by name. Recognized names are "json" (the
// reference structured-text format) and "gob". The name is matched
// case-insensitively after trimming whitespace, so it can be fed directly
// from a command-line flag.
func New(name string) (Serializer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return NewJSONSerializer(), nil
	case "gob":
		return NewGOBSerializer(), nil
	default:
		return nil, fmt.Errorf("unknown serializer: %q (must be one of json, gob)", name)
	}
}
