// Package hashing computes content fingerprints for files.
//
// A fingerprint is the lowercase hex digest of a file's full byte stream
// under one fixed algorithm. Two algorithms are supported as interchangeable
// strategies: MD5 for speed and SHA-256 for strength. Fingerprints from
// different algorithms are never comparable.
//
// Files are digested in fixed-size chunks, so memory use is independent of
// file size. A read failure partway through never yields a partial digest.
package hashing
