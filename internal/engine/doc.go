// Package engine wires the scan pipeline together: enumerate files, fan the
// fingerprinting work out over a bounded worker pool, and fold the results
// into a fresh session with its duplicate groups.
//
// Fingerprinting dominates the cost of a scan and every file's
// read-and-digest is self-contained, so it is the one stage that runs in
// parallel. Results are merged back in discovery order, which keeps the
// output deterministic regardless of hashing completion order.
package engine
