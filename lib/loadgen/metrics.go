package loadgen

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// Operation counters and latency histogram, exposed in Prometheus text form
// via WriteMetrics. Read misses are counted separately because they are an
// expected outcome of the randomized keyspace, not failures.
var (
	readsTotal      = metrics.NewCounter("kvload_reads_total")
	writesTotal     = metrics.NewCounter("kvload_writes_total")
	readMissesTotal = metrics.NewCounter("kvload_read_misses_total")
	opDuration      = metrics.NewHistogram("kvload_op_duration_seconds")
)

// WriteMetrics dumps all collected metrics in Prometheus text exposition
// format, including process metrics.
func WriteMetrics(w io.Writer) {
	metrics.WritePrometheus(w, true)
}
