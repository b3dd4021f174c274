// Package memstore provides in-memory implementations of the store.Store
// capability with no persistence.
//
// Two variants exist:
//
//   - New: a single map behind a single shared mutex. Spawn hands out
//     additional handles over the same state, so any number of goroutines can
//     drive the store concurrently. This is the baseline backend the load
//     generator compares durable backends against.
//
//   - NewSingleOwner: the same map without a lock. Spawn fails, signaling
//     that the backend has no safe sharing story.
package memstore
