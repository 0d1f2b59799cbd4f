// Package session holds the transient per-invocation aggregate of a scan:
// the descriptors, the duplicate groups, and the aggregate counters an
// external statistics collaborator renders.
//
// A session is an explicit object with an initialize/clear lifecycle rather
// than process-wide state, so concurrent test runs and parallel hashing
// stay safe. Nothing in a session is ever persisted.
package session
