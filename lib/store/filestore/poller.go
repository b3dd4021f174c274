package filestore

import "time"

// poller is a time gate: elapsed reports true at most once per period.
type poller struct {
	period time.Duration
	last   time.Time
}

func newPoller(period time.Duration) *poller {
	return &poller{
		period: period,
		last:   time.Now(),
	}
}

// elapsed reports whether at least one period has passed since the last time
// it reported true, and resets the gate if so.
//
// Thread-safety: not safe for concurrent use; the owning shard serializes
// calls through its lock.
func (p *poller) elapsed() bool {
	now := time.Now()
	if now.Sub(p.last) >= p.period {
		p.last = now
		return true
	}
	return false
}
