package serializer

import (
	"bytes"
	"encoding/gob"

	"github.com/kvload/kvload/lib/store"
)

// NewGOBSerializer creates a new serializer using Go's binary gob format
func NewGOBSerializer() Serializer {
	return &gobSerializerImpl{}
}

// gobSerializerImpl implements the Serializer interface using gob encoding
type gobSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer/interface.go)
// --------------------------------------------------------------------------

func (g gobSerializerImpl) Marshal(snap store.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g gobSerializerImpl) Unmarshal(b []byte, snap *store.Snapshot) error {
	buf := bytes.NewBuffer(b)
	dec := gob.NewDecoder(buf)
	return dec.Decode(snap)
}

func (g gobSerializerImpl) Name() string {
	return "gob"
}
