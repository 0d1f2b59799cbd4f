// Package dedupe holds the shared vocabulary of the duplicate-detection
// pipeline: the error taxonomy used to classify failures across scanner,
// hasher, and resolver, plus the context helpers that thread session
// identity through the pipeline for log correlation.
//
// Failures in this system are file-granular almost everywhere. The sentinel
// errors exported here let callers distinguish the one fatal case (the scan
// root cannot be enumerated) from the skip-and-report cases without parsing
// error strings.
package dedupe
