package filestore

import (
	"fmt"
	"runtime"
	"time"

	"github.com/kvload/kvload/lib/serializer"
)

// --------------------------------------------------------------------------
// Options
// --------------------------------------------------------------------------

// DefaultFlushEvery is the default flush period of the synchronous policy.
const DefaultFlushEvery = 500 * time.Microsecond

// SyncOptions selects the synchronous write policy: a put that crosses the
// flush period serializes the whole shard map to disk on the caller's thread.
type SyncOptions struct {
	// FlushEvery is the minimum time between two flushes of the same shard.
	// Zero is valid and means every put flushes.
	FlushEvery time.Duration
}

// AsyncOptions selects the asynchronous write policy: puts are queued onto a
// bounded mailbox and a dedicated consumer goroutine per shard makes them
// durable.
type AsyncOptions struct {
	// QueueDepth is the mailbox capacity. A put against a full mailbox blocks
	// until the consumer drains space; nothing is ever dropped.
	QueueDepth int
}

// Options configures a file-backed store during construction.
type Options struct {
	// ShardCount is the number of shards (and files). The key to shard
	// mapping is a function of this count, so a store must be reopened with
	// the same count to see its previous data.
	ShardCount int

	// Dir is the directory the shard files live in. It is created if missing.
	Dir string

	// Exactly one of Sync or Async must be set. Supplying neither or both is
	// a configuration error rejected before any shard is created.
	Sync  *SyncOptions
	Async *AsyncOptions

	// Serializer encodes shard snapshots. Defaults to json when nil.
	Serializer serializer.Serializer
}

// DefaultOptions returns options for a store with one shard per CPU, the
// synchronous policy at a 500 microsecond flush period, and the json
// serializer. The directory must still be supplied by the caller.
func DefaultOptions(dir string) Options {
	return Options{
		ShardCount: runtime.NumCPU(),
		Dir:        dir,
		Sync:       &SyncOptions{FlushEvery: DefaultFlushEvery},
		Serializer: serializer.NewJSONSerializer(),
	}
}

// Validate checks the options and fills in the serializer default. It is
// called by New; it is exported so an outer configuration layer can reject
// bad input before attempting store construction.
func (o *Options) Validate() error {
	if o.ShardCount <= 0 {
		return fmt.Errorf("shard count must be positive, got %d", o.ShardCount)
	}
	if o.Dir == "" {
		return fmt.Errorf("output directory must be set")
	}
	if o.Sync == nil && o.Async == nil {
		return fmt.Errorf("a write policy must be selected (sync or async)")
	}
	if o.Sync != nil && o.Async != nil {
		return fmt.Errorf("only one write policy may be selected, got both sync and async")
	}
	if o.Sync != nil && o.Sync.FlushEvery < 0 {
		return fmt.Errorf("sync flush period must not be negative, got %v", o.Sync.FlushEvery)
	}
	if o.Async != nil && o.Async.QueueDepth <= 0 {
		return fmt.Errorf("async queue depth must be positive, got %d", o.Async.QueueDepth)
	}
	if o.Serializer == nil {
		o.Serializer = serializer.NewJSONSerializer()
	}
	return nil
}
