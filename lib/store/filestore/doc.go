// Package filestore implements the store.Store capability backed by one
// durable file per shard, allowing recovery after a restart while keeping
// lock contention local to a shard instead of global.
//
// The package focuses on:
//   - Deterministic shard routing: an unseeded FNV-1a hash of the key modulo
//     the shard count. The mapping is stable for the lifetime of a layout;
//     reopening with a different shard count selects different files, and old
//     data becomes unreachable rather than migrated.
//   - Whole-snapshot durability: each flush serializes a shard's entire map
//     through a pluggable serializer and replaces the file contents. There is
//     no incremental or append format.
//   - Crash recovery: at construction each shard loads its file if present.
//     A corrupt file is renamed aside with a timestamp suffix and the shard
//     starts empty - startup never fails on corruption and the corrupt data
//     is kept for inspection.
//
// Write Policies:
//
//   - Synchronous (SyncOptions): a time gate records the last flush instant.
//     A put that crosses the configured period serializes the shard map on
//     the calling goroutine and resets the gate; other puts only touch the
//     in-memory map. Durability lags by up to one period, and flush cost
//     shows up as a latency spike on the puts that cross the gate.
//
//   - Asynchronous (AsyncOptions): puts are forwarded onto a bounded mailbox
//     and return once the send is accepted. A single consumer goroutine per
//     shard owns a private mirror of the map and the file handle; it applies
//     updates in order and rewrites the file after each one. The mailbox
//     capacity is the backpressure bound - a full mailbox blocks producers
//     until space frees up. Consumer flush errors are logged and the
//     consumer keeps running, keeping the store available at the cost of not
//     surfacing intermittent flush errors to put callers.
//
// Close drains and flushes every shard. It must be called at most once per
// logical store, after all spawned handles have stopped; a put that races
// past that point on an asynchronous shard gets a QueueClosed error.
package filestore
