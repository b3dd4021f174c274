package loadgen

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/lni/dragonboat/v4/logger"

	"github.com/kvload/kvload/lib/store"
)

var log = logger.GetLogger("loadgen")

// DefaultDuration is the default wall-clock time each worker runs for.
const DefaultDuration = 60 * time.Second

// Default split for reads vs writes (higher means more reads).
const defaultReadFraction = 0.9

// Default keyspace size. Small enough that collisions are common, which is
// intentional: they create contention and read-after-write scenarios.
const defaultKeySpread = 1 << 16

// Params configures a load generator run.
type Params struct {
	// Threads is the number of concurrent workers. Each worker drives its own
	// Spawn-ed handle of the target store.
	Threads int
	// Pattern is the pacing pattern between iterations.
	Pattern Pattern
	// Duration is how long each worker keeps issuing operations.
	Duration time.Duration
	// ReadFraction is the probability an iteration reads instead of writes.
	// Zero means the default (0.9, biased toward reads).
	ReadFraction float64
	// KeySpread is the keyspace size keys are drawn from. Zero means the
	// default (65536).
	KeySpread int
}

func (p *Params) applyDefaults() {
	if p.ReadFraction == 0 {
		p.ReadFraction = defaultReadFraction
	}
	if p.KeySpread == 0 {
		p.KeySpread = defaultKeySpread
	}
}

// Run drives the target store with the configured concurrent workload and
// returns one Stats per worker. The workload is reproducible in distribution,
// not in exact sequence: each worker draws keys and operations from its own
// pseudo-random source.
//
// The generator only ever talks to the store capability; it never inspects
// which backend is behind it.
func Run(target store.Store, params Params) ([]Stats, error) {
	params.applyDefaults()
	if params.Threads <= 0 {
		return nil, fmt.Errorf("thread count must be positive, got %d", params.Threads)
	}
	if params.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %v", params.Duration)
	}

	// Obtain all handles up front so a backend that cannot be shared fails
	// before any worker starts.
	handles := make([]store.Store, params.Threads)
	for i := range handles {
		handle, err := target.Spawn()
		if err != nil {
			return nil, fmt.Errorf("spawn store handle %d: %w", i, err)
		}
		handles[i] = handle
	}

	results := make([]Stats, params.Threads)
	errs := make([]error, params.Threads)

	var wg sync.WaitGroup
	for i := 0; i < params.Threads; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)))
			results[worker], errs[worker] = runWorker(handles[worker], params, rng)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("worker %d: %w", i, err)
		}
	}
	return results, nil
}

// runWorker applies randomized operations against its own handle until the
// configured duration elapses. A long individual operation cannot be
// interrupted mid-flight; the duration is only checked between iterations.
func runWorker(handle store.Store, params Params, rng *rand.Rand) (Stats, error) {
	var ops int64

	start := time.Now()
	for time.Since(start) < params.Duration {
		key := fmt.Sprintf("Key%d", rng.Intn(params.KeySpread))

		opStart := time.Now()
		if rng.Float64() < params.ReadFraction {
			if _, err := handle.Get(key); err != nil {
				if !store.IsNotFound(err) {
					return Stats{}, fmt.Errorf("get %q: %w", key, err)
				}
				// Misses are expected: the keyspace is larger than what has
				// been written so far.
				readMissesTotal.Inc()
			}
			readsTotal.Inc()
		} else {
			if err := handle.Put(key, store.String("foo")); err != nil {
				return Stats{}, fmt.Errorf("put %q: %w", key, err)
			}
			writesTotal.Inc()
		}
		opDuration.UpdateDuration(opStart)

		params.Pattern.pause(rng)
		ops++
	}

	return Stats{
		Ops:     ops,
		Runtime: time.Since(start),
	}, nil
}

// LogStats writes the per-worker figures and the aggregate through the
// package logger.
func LogStats(all []Stats) error {
	summary, err := Summarize(all)
	if err != nil {
		return err
	}
	for i, s := range all {
		log.Infof("worker %d: %v", i, s)
	}
	log.Infof("%v", summary)
	return nil
}
