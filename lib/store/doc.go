// Package store defines the storage capability shared by all key-value
// backends and the value model they store.
//
// The package focuses on:
//   - A unified interface (Store) for key-value operations across different
//     backends, so the load generator and any other client can be written
//     once and driven against every implementation
//   - A recursive tagged value type (Value) with null, string, integer and
//     nestable dictionary variants
//   - Standardized error reporting through typed return codes
//
// Key Components:
//
//   - Store Interface: Get, Put, Spawn and Close. Spawn produces an
//     independent handle over the same logical store so each worker thread
//     can hold its own handle; backends that cannot be shared safely refuse
//     to spawn instead of silently racing.
//
//   - Error System: a structured error type using typed codes (RetCode) and
//     descriptive messages. Callers distinguish expected conditions (a read
//     miss is RetCNotFound, not a fault) from recoverable failures
//     (RetCLockFailed) and fatal ones (RetCQueueClosed).
//
//   - Snapshot: the full map of one shard, the unit all durable backends
//     serialize wholesale.
//
// Implementations:
//
//   - memstore: a map behind a single shared mutex, the baseline backend for
//     relative throughput comparisons.
//   - xmemstore: a lock-free concurrent map backend.
//   - filestore: the sharded, file-backed durable store.
package store
