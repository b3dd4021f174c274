package filestore

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/kvload/kvload/lib/serializer"
	"github.com/kvload/kvload/lib/store"
)

// --------------------------------------------------------------------------
// Write Policy Interface
// --------------------------------------------------------------------------

// writePolicy is the rule governing when and how a shard's in-memory state is
// made durable. Exactly one policy is active for a shard's entire lifetime.
type writePolicy interface {
	// put makes the already-applied update durable according to the policy.
	// state is the shard's current map. Called with the shard lock held.
	put(key string, value store.Value, state store.Snapshot) error
	// close flushes outstanding state, stops any background work and
	// releases the file. Called once, with the shard lock held.
	close(state store.Snapshot) error
}

// writeSnapshot rewrites the whole file with the serialized snapshot. There
// is no incremental format: every flush replaces the entire prior contents.
func writeSnapshot(file *os.File, ser serializer.Serializer, snap store.Snapshot) error {
	data, err := ser.Marshal(snap)
	if err != nil {
		return fmt.Errorf("serialize snapshot: %w", err)
	}
	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("truncate %s: %w", file.Name(), err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %s: %w", file.Name(), err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", file.Name(), err)
	}
	return nil
}

// --------------------------------------------------------------------------
// Synchronous Policy
// --------------------------------------------------------------------------

// syncPolicy flushes the whole shard map on the caller's thread whenever a
// put crosses the flush period. Puts inside the period only touch the
// in-memory map, so durability lags by up to one period and the occasional
// put pays the full flush cost.
type syncPolicy struct {
	file *os.File
	ser  serializer.Serializer
	gate *poller
}

func newSyncPolicy(file *os.File, ser serializer.Serializer, flushEvery time.Duration) *syncPolicy {
	return &syncPolicy{
		file: file,
		ser:  ser,
		gate: newPoller(flushEvery),
	}
}

func (p *syncPolicy) put(_ string, _ store.Value, state store.Snapshot) error {
	if !p.gate.elapsed() {
		return nil
	}
	return writeSnapshot(p.file, p.ser, state)
}

func (p *syncPolicy) close(state store.Snapshot) error {
	flushErr := writeSnapshot(p.file, p.ser, state)
	if err := p.file.Close(); err != nil && flushErr == nil {
		flushErr = err
	}
	return flushErr
}

// --------------------------------------------------------------------------
// Asynchronous Policy
// --------------------------------------------------------------------------

// update is the unit handed from producers to the consumer goroutine.
type update struct {
	key   string
	value store.Value
}

// asyncPolicy forwards each update onto a bounded mailbox and returns as soon
// as the send succeeds. A single consumer goroutine owns a private mirror of
// the shard map and the file: it applies updates one at a time and rewrites
// the file after each one. The mirror therefore lags the shard map by
// whatever is still queued; the two converge once the mailbox drains.
//
// The mailbox capacity is the backpressure bound: a put against a full
// mailbox blocks until the consumer frees space. Nothing is dropped and no
// timeout applies.
type asyncPolicy struct {
	mailbox chan update
	done    chan struct{}
	closed  atomic.Bool

	// owned by the consumer goroutine after construction
	mirror store.Snapshot
	file   *os.File
	ser    serializer.Serializer
}

// newAsyncPolicy starts the consumer. warm is the recovered shard state; the
// mirror starts from a copy of it so the first flush after recovery does not
// lose pre-existing keys.
func newAsyncPolicy(file *os.File, ser serializer.Serializer, queueDepth int, warm store.Snapshot) *asyncPolicy {
	p := &asyncPolicy{
		mailbox: make(chan update, queueDepth),
		done:    make(chan struct{}),
		mirror:  warm.Clone(),
		file:    file,
		ser:     ser,
	}
	go p.consume()
	return p
}

// consume drains the mailbox until it is closed, then writes a final
// snapshot. Flush errors are logged and the consumer keeps going: the store
// stays available on intermittent I/O trouble at the price of not surfacing
// those errors to put callers.
func (p *asyncPolicy) consume() {
	defer close(p.done)

	for u := range p.mailbox {
		p.mirror[u.key] = u.value
		if err := writeSnapshot(p.file, p.ser, p.mirror); err != nil {
			log.Errorf("async flush of %s failed: %v", p.file.Name(), err)
		}
	}

	// mailbox closed: final flush so everything accepted before close is on disk
	if err := writeSnapshot(p.file, p.ser, p.mirror); err != nil {
		log.Errorf("final flush of %s failed: %v", p.file.Name(), err)
	}
	if err := p.file.Close(); err != nil {
		log.Errorf("closing %s failed: %v", p.file.Name(), err)
	}
}

func (p *asyncPolicy) put(key string, value store.Value, _ store.Snapshot) error {
	if p.closed.Load() {
		return store.NewError(store.RetCQueueClosed, "shard writer has shut down")
	}
	p.mailbox <- update{key: key, value: value}
	return nil
}

func (p *asyncPolicy) close(_ store.Snapshot) error {
	if p.closed.Swap(true) {
		return nil
	}
	close(p.mailbox)
	<-p.done
	return nil
}
