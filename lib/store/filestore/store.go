package filestore

import (
	"fmt"
	"os"

	"github.com/lni/dragonboat/v4/logger"

	"github.com/kvload/kvload/lib/store"
)

var log = logger.GetLogger("filestore")

// storeImpl composes the shard units behind the store capability. Every
// operation is dispatched to exactly one shard, so operations on different
// shards never contend: the critical section is bounded per shard instead of
// per store.
type storeImpl struct {
	shards []*shard
	router router
}

// New creates a sharded file-backed store. All shard units are created
// eagerly, each recovering its previous state from disk if present (see
// newShard for the recovery protocol). The options are validated first;
// selecting neither or both write policies fails before any file is touched.
func New(opts Options) (store.Store, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filestore options: %w", err)
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", opts.Dir, err)
	}

	shards := make([]*shard, 0, opts.ShardCount)
	for index := 0; index < opts.ShardCount; index++ {
		sh, err := newShard(opts.ShardCount, index, opts)
		if err != nil {
			return nil, fmt.Errorf("initialize shard %d/%d: %w", index, opts.ShardCount, err)
		}
		shards = append(shards, sh)
	}

	return &storeImpl{
		shards: shards,
		router: router{shardCount: opts.ShardCount},
	}, nil
}

// shardFor routes a key to its shard. An out-of-range index would mean the
// router and the shard slice disagree; that invariant violation is surfaced
// as an error rather than an index panic.
func (s *storeImpl) shardFor(key string) (*shard, error) {
	index := s.router.route(key)
	if index < 0 || index >= len(s.shards) {
		return nil, store.NewErrorf(store.RetCBadShard, "key %q routed to shard %d of %d", key, index, len(s.shards))
	}
	return s.shards[index], nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Get(key string) (store.Value, error) {
	sh, err := s.shardFor(key)
	if err != nil {
		return store.Null(), err
	}
	return sh.get(key)
}

func (s *storeImpl) Put(key string, value store.Value) error {
	sh, err := s.shardFor(key)
	if err != nil {
		return err
	}
	return sh.put(key, value)
}

// Spawn shares the shard units and the router: the new handle drives the same
// shards (shared ownership, not copied state) and can be used from any other
// goroutine.
func (s *storeImpl) Spawn() (store.Store, error) {
	return &storeImpl{
		shards: s.shards,
		router: s.router,
	}, nil
}

// Close shuts down every shard: synchronous shards write a final snapshot,
// asynchronous shards stop accepting updates, drain their mailbox and flush
// the mirror. Only one handle of a logical store may call Close, after all
// handles have stopped issuing operations.
func (s *storeImpl) Close() error {
	var firstErr error
	for index, sh := range s.shards {
		if err := sh.close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close shard %d: %w", index, err)
		}
	}
	return firstErr
}
