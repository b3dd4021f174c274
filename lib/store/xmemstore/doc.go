// Package xmemstore implements the store.Store capability on top of
// xsync.MapOf, a concurrent map that shards keys internally.
//
// It exists alongside memstore so that comparison runs can separate the cost
// of a single shared mutex from the cost of the workload itself: the same
// load pattern driven against both backends shows how much of the baseline's
// ceiling is lock contention.
package xmemstore
