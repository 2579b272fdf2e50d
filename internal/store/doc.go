// Package store defines the key/value session store contract and its
// Redis-backed and in-memory implementations.
//
// Values are opaque byte slices; callers own serialization. Every record
// carries a TTL and expires server-side, so the dialogue core never has to
// garbage-collect sessions.
package store
