// Package loadgen drives a store.Store with a concurrent, randomized
// workload and reports throughput.
//
// One worker goroutine runs per configured thread, each over its own
// Spawn-ed handle of the same logical store. A worker loops for a fixed
// wall-clock duration: draw a pseudo-random key from a small keyspace
// (collisions are intentional), choose read or write by a configured
// probability split, perform the operation (read misses are tolerated),
// pause according to the pacing pattern, count the operation.
//
// Three pacing patterns are available: unthrottled (no pause, maximum
// offered load), consistent (a short uniform pause every iteration) and
// bursty (mostly short pauses with a small chance of a much longer one).
//
// Summarize aggregates the per-worker results: total operations, total
// runtime (the slowest worker bounds wall-clock completion), total
// throughput and average per-worker throughput. Operation counts and
// latencies are additionally collected as Prometheus metrics, dumped on
// demand via WriteMetrics.
package loadgen
