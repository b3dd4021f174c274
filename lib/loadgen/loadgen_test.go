package loadgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvload/kvload/lib/store"
	"github.com/kvload/kvload/lib/store/memstore"
)

// --------------------------------------------------------------------------
// Run
// --------------------------------------------------------------------------

func TestRunAgainstMemoryStore(t *testing.T) {
	target := memstore.New()
	defer target.Close()

	all, err := Run(target, Params{
		Threads:  8,
		Pattern:  PatternUnthrottled,
		Duration: time.Second,
	})
	require.NoError(t, err)
	require.Len(t, all, 8)

	for i, s := range all {
		assert.Greater(t, s.Ops, int64(0), "worker %d did no work", i)
		assert.GreaterOrEqual(t, s.Runtime, time.Second, "worker %d stopped early", i)
	}

	summary, err := Summarize(all)
	require.NoError(t, err)
	assert.Greater(t, summary.TotalOps, int64(0))
	assert.InEpsilon(t, float64(summary.TotalOps)/summary.TotalRuntime.Seconds(), summary.TotalOpsPerSec, 1e-9)
}

func TestRunRejectsBadParams(t *testing.T) {
	target := memstore.New()
	defer target.Close()

	_, err := Run(target, Params{Threads: 0, Duration: time.Second})
	assert.Error(t, err)

	_, err = Run(target, Params{Threads: 1, Duration: 0})
	assert.Error(t, err)
}

func TestRunFailsOnUnspawnableStore(t *testing.T) {
	target := memstore.NewSingleOwner()
	defer target.Close()

	_, err := Run(target, Params{
		Threads:  2,
		Pattern:  PatternUnthrottled,
		Duration: time.Second,
	})
	require.Error(t, err)
	assert.True(t, store.IsCode(err, store.RetCInvalidOperation), "got %v", err)
}

// --------------------------------------------------------------------------
// Aggregation
// --------------------------------------------------------------------------

func TestSummarize(t *testing.T) {
	all := []Stats{
		{Ops: 100, Runtime: 2 * time.Second},
		{Ops: 300, Runtime: time.Second},
	}

	summary, err := Summarize(all)
	require.NoError(t, err)

	assert.Equal(t, int64(400), summary.TotalOps)
	assert.Equal(t, 2*time.Second, summary.TotalRuntime)
	// 400 ops over the slowest worker's 2 seconds
	assert.InEpsilon(t, 200.0, summary.TotalOpsPerSec, 1e-9)
	// mean of 50 ops/sec and 300 ops/sec
	assert.InEpsilon(t, 175.0, summary.AvgOpsPerSec, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	require.Error(t, err)
	assert.True(t, store.IsCode(err, store.RetCNoWorkers), "got %v", err)
}

// --------------------------------------------------------------------------
// Patterns
// --------------------------------------------------------------------------

func TestParsePattern(t *testing.T) {
	tests := []struct {
		input string
		want  Pattern
	}{
		{"unthrottled", PatternUnthrottled},
		{"consistent", PatternConsistent},
		{"bursty", PatternBursty},
		{" Bursty ", PatternBursty},
	}

	for _, tt := range tests {
		got, err := ParsePattern(tt.input)
		require.NoError(t, err, "ParsePattern(%q)", tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParsePattern("sawtooth")
	assert.Error(t, err)
}

func TestPatternString(t *testing.T) {
	assert.Equal(t, "unthrottled", PatternUnthrottled.String())
	assert.Equal(t, "consistent", PatternConsistent.String())
	assert.Equal(t, "bursty", PatternBursty.String())
}
