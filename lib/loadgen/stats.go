package loadgen

import (
	"fmt"
	"time"

	"github.com/kvload/kvload/lib/store"
)

// --------------------------------------------------------------------------
// Per-Worker Statistics
// --------------------------------------------------------------------------

// Stats holds the performance figures of a single worker.
type Stats struct {
	Ops     int64         // Total operations the worker completed
	Runtime time.Duration // Wall-clock time the worker ran for
}

// OpsPerSec returns the worker's own throughput.
func (s Stats) OpsPerSec() float64 {
	return float64(s.Ops) / s.Runtime.Seconds()
}

func (s Stats) String() string {
	return fmt.Sprintf("Stats{ops: %d, runtime: %v, ops/sec: %.2f}", s.Ops, s.Runtime, s.OpsPerSec())
}

// --------------------------------------------------------------------------
// Aggregation
// --------------------------------------------------------------------------

// Summary aggregates the per-worker figures into global throughput numbers.
type Summary struct {
	TotalOps       int64         // Sum of all workers' operations
	TotalRuntime   time.Duration // Maximum worker runtime: the slowest worker bounds completion
	TotalOpsPerSec float64       // TotalOps divided by TotalRuntime
	AvgOpsPerSec   float64       // Mean of each worker's own throughput
}

func (s Summary) String() string {
	return fmt.Sprintf("total_ops: %d, total_runtime: %v, total_ops_per_sec: %.2f, average_ops_per_sec: %.2f",
		s.TotalOps, s.TotalRuntime, s.TotalOpsPerSec, s.AvgOpsPerSec)
}

// Summarize computes the global figures across all workers. It fails with a
// NoWorkers error when the result set is empty.
func Summarize(all []Stats) (Summary, error) {
	if len(all) == 0 {
		return Summary{}, store.NewError(store.RetCNoWorkers, "no workers completed")
	}

	var summary Summary
	var sumRates float64
	for _, s := range all {
		summary.TotalOps += s.Ops
		if s.Runtime > summary.TotalRuntime {
			summary.TotalRuntime = s.Runtime
		}
		sumRates += s.OpsPerSec()
	}

	summary.TotalOpsPerSec = float64(summary.TotalOps) / summary.TotalRuntime.Seconds()
	summary.AvgOpsPerSec = sumRates / float64(len(all))
	return summary, nil
}
