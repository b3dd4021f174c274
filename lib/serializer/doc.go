// Package serializer provides pluggable codecs for shard snapshots.
//
// The file-backed store never depends on a concrete encoding: it is handed a
// Serializer at construction time and writes whatever that codec produces.
// Each flush encodes the entire shard map as a single self-contained
// document, and recovery decodes the whole document back or fails as a unit.
//
// Two codecs are included: json, the reference format (structured text, so a
// shard file can be read with any text tool), and gob, a compact binary
// alternative. New formats only need to implement the Serializer interface
// and be registered in New.
package serializer
