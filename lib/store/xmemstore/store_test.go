package xmemstore

import (
	"testing"

	"github.com/kvload/kvload/lib/store"
	"github.com/kvload/kvload/lib/store/storetest"
)

func TestXMemStore(t *testing.T) {
	storetest.RunStoreTests(t, "xmemstore", func(_ testing.TB) store.Store {
		return New()
	})
}
