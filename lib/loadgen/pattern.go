package loadgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Load Patterns
// --------------------------------------------------------------------------

// Pattern selects how workers pace themselves between operations.
type Pattern int

const (
	// PatternUnthrottled never pauses: maximum offered load.
	PatternUnthrottled Pattern = iota
	// PatternConsistent pauses a short, uniformly-random time on every
	// iteration, modeling steady traffic.
	PatternConsistent
	// PatternBursty mostly pauses briefly but occasionally sleeps much
	// longer, modeling intermittent traffic spikes.
	PatternBursty
)

func (p Pattern) String() string {
	switch p {
	case PatternUnthrottled:
		return "unthrottled"
	case PatternConsistent:
		return "consistent"
	case PatternBursty:
		return "bursty"
	default:
		return "unknown"
	}
}

// ParsePattern converts a flag value into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unthrottled":
		return PatternUnthrottled, nil
	case "consistent":
		return PatternConsistent, nil
	case "bursty":
		return PatternBursty, nil
	default:
		return 0, fmt.Errorf("unknown load pattern: %q (must be one of unthrottled, consistent, bursty)", s)
	}
}

// Pacing parameters per pattern.
const (
	// Chance that bursty load takes the long wait.
	burstyLongWaitChance = 0.05

	// Long wait range when bursting.
	burstyLongWaitMin = 60 * time.Millisecond
	burstyLongWaitMax = 200 * time.Millisecond

	// Short wait range when bursting.
	burstyShortWaitMin = 10 * time.Microsecond
	burstyShortWaitMax = 20 * time.Microsecond

	// Wait range under consistent load.
	consistentWaitMin = 1 * time.Microsecond
	consistentWaitMax = 20 * time.Microsecond
)

// randDuration draws uniformly from [min, max).
func randDuration(rng *rand.Rand, min, max time.Duration) time.Duration {
	return min + time.Duration(rng.Int63n(int64(max-min)))
}

// pause sleeps according to the pattern before the next iteration.
func (p Pattern) pause(rng *rand.Rand) {
	switch p {
	case PatternBursty:
		if rng.Float64() < burstyLongWaitChance {
			time.Sleep(randDuration(rng, burstyLongWaitMin, burstyLongWaitMax))
		} else {
			time.Sleep(randDuration(rng, burstyShortWaitMin, burstyShortWaitMax))
		}
	case PatternConsistent:
		time.Sleep(randDuration(rng, consistentWaitMin, consistentWaitMax))
	case PatternUnthrottled:
	}
}
