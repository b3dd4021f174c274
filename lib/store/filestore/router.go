package filestore

// --------------------------------------------------------------------------
// Hash Helper Functions
// --------------------------------------------------------------------------

// hashKey generates a hash value for a string key.
// This function uses the FNV-1a hash algorithm, which is fast and has good
// distribution. Unlike a per-instance seeded hash, it is deliberately
// unseeded: the key to shard mapping has to be identical across process
// restarts, otherwise previously persisted shards would become unreachable.
func hashKey(s string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)

	hash := uint64(offset64)
	for i := 0; i < len(s); i++ {
		hash ^= uint64(s[i])
		hash *= prime64
	}

	return hash
}

// --------------------------------------------------------------------------
// Router
// --------------------------------------------------------------------------

// router maps keys onto shard indices. For a fixed shard count the mapping is
// a pure function of the key; changing the shard count changes the mapping
// for all keys (there is no migration path).
type router struct {
	shardCount int
}

// route returns the shard index in [0, shardCount) for the given key.
//
// Thread-safety: route is a pure function and safe for concurrent use.
func (r router) route(key string) int {
	return int(hashKey(key) % uint64(r.shardCount))
}
