package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kvload/kvload/lib/store"
)

const backupTimeFormat = "2006-01-02_150405"

// shardFileName derives the on-disk name from the total shard count and the
// shard index, not from any logical store identity: the same layout maps to
// the same files across restarts, a different count selects different files.
func shardFileName(shardCount, index int) string {
	return fmt.Sprintf("store_size=%d_idx=%d", shardCount, index)
}

// shard owns one partition: its in-memory map, its lock and its write policy.
// The map is mutated only through put while the lock is held; the policy
// mirrors it (lagged) onto the shard's file.
type shard struct {
	mu     sync.Mutex
	values store.Snapshot
	policy writePolicy
}

// newShard initializes one shard, recovering previous state if its file
// exists. A corrupt file never blocks startup: it is renamed aside with a
// timestamp suffix (the evidence is kept for inspection) and the shard starts
// empty. That is a logged data-loss event for this shard, not an error.
func newShard(shardCount, index int, opts Options) (*shard, error) {
	path := filepath.Join(opts.Dir, shardFileName(shardCount, index))

	values := store.Snapshot{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		log.Infof("file %s already exists, attempting to load previous data", path)
		if serr := opts.Serializer.Unmarshal(data, &values); serr != nil {
			backup := fmt.Sprintf("%s.backup%s", path, time.Now().Format(backupTimeFormat))
			log.Errorf("could not load shard data from %s: %v; moving it to %s and starting empty", path, serr, backup)
			if renameErr := os.Rename(path, backup); renameErr != nil {
				return nil, fmt.Errorf("back up corrupt shard file %s: %w", path, renameErr)
			}
			values = store.Snapshot{}
		}
	case errors.Is(err, os.ErrNotExist):
		// cold start
	default:
		return nil, fmt.Errorf("read shard file %s: %w", path, err)
	}

	// (Re)create the live file for future writes.
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create shard file %s: %w", path, err)
	}

	var policy writePolicy
	if opts.Sync != nil {
		policy = newSyncPolicy(file, opts.Serializer, opts.Sync.FlushEvery)
	} else {
		policy = newAsyncPolicy(file, opts.Serializer, opts.Async.QueueDepth, values)
	}

	return &shard{
		values: values,
		policy: policy,
	}, nil
}

// get returns a copy of the value for key.
//
// Thread-safety: safe for concurrent use; the lock is held for this single
// operation only.
func (s *shard) get(key string) (store.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return store.Null(), store.NewErrorf(store.RetCNotFound, "key not found: %s", key)
	}
	return value.Clone(), nil
}

// put applies the update to the in-memory map and hands it to the write
// policy, all under the shard lock. For the async policy that means the
// mailbox send happens in map order, so the consumer's mirror converges to
// exactly this map; a full mailbox backpressures the whole shard.
func (s *shard) put(key string, value store.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.policy.put(key, value, s.values)
}

// close flushes or drains outstanding state and releases the shard's file.
func (s *shard) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.policy.close(s.values)
}
