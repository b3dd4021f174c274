package store

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Store is the capability every storage backend implements. The load
// generator is written against this interface only and never inspects the
// concrete backend behind it.
type Store interface {
	// Get returns the value stored under key. The returned value is a deep
	// copy; mutating it does not affect the stored value. If the key has
	// never been stored, an Error with code RetCNotFound is returned.
	Get(key string) (Value, error)
	// Put inserts or overwrites the value for key (last-write-wins, no
	// versioning). It may fail with RetCLockFailed if exclusive access to the
	// underlying state cannot be acquired, or with a durability-layer error.
	Put(key string, value Value) error
	// Spawn produces an independent handle referencing the same underlying
	// storage, safe for use from another goroutine. Backends with no safe
	// sharing story return an Error with code RetCInvalidOperation.
	Spawn() (Store, error)
	// Close flushes and releases backend resources. It must be called at most
	// once per logical store, after all spawned handles have stopped issuing
	// operations.
	Close() error
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is the error type returned by all store implementations. It wraps a
// return code (of type RetCode) and a human-readable message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("StoreError (code %s): %s", e.Code, e.Msg)
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// NewErrorf creates a new Error with the given code and a formatted message.
func NewErrorf(code RetCode, format string, args ...interface{}) *Error {
	return NewError(code, fmt.Sprintf(format, args...))
}

// IsCode reports whether err is a store Error carrying the given code.
func IsCode(err error, code RetCode) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == code
}

// IsNotFound reports whether err signals a read of an absent key. Read misses
// are expected during normal operation and should not be treated as faults.
func IsNotFound(err error) bool {
	return IsCode(err, RetCNotFound)
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess          RetCode = iota // 0: Operation executed successfully.
	RetCInternalError                   // 1: Operation failed due to an internal error.
	RetCNotFound                        // 2: Key has never been stored.
	RetCLockFailed                      // 3: Exclusive access could not be acquired.
	RetCBadShard                        // 4: Key routed to a shard index that does not exist.
	RetCQueueClosed                     // 5: Asynchronous writer is gone; durability no longer guaranteed.
	RetCInvalidOperation                // 6: Operation not supported by this backend.
	RetCNoWorkers                       // 7: Aggregation over an empty result set.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCInternalError:
		return "InternalError"
	case RetCNotFound:
		return "NotFound"
	case RetCLockFailed:
		return "LockFailed"
	case RetCBadShard:
		return "BadShard"
	case RetCQueueClosed:
		return "QueueClosed"
	case RetCInvalidOperation:
		return "InvalidOperation"
	case RetCNoWorkers:
		return "NoWorkers"
	default:
		return "Unknown"
	}
}
