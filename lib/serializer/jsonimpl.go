package serializer

import (
	"encoding/json"

	"github.com/kvload/kvload/lib/store"
)

// NewJSONSerializer creates a new serializer using json encoding. This is the
// reference format: human-readable, so shard files can be inspected directly.
func NewJSONSerializer() Serializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the Serializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer/interface.go)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) Marshal(snap store.Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

func (j jsonSerializerImpl) Unmarshal(b []byte, snap *store.Snapshot) error {
	return json.Unmarshal(b, snap)
}

func (j jsonSerializerImpl) Name() string {
	return "json"
}
