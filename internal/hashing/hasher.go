package hashing

import (
	"encoding/hex"
	"io"
	"os"

	"carbon/internal/dedupe"
)

// chunkSize is the read granularity when folding a file into digest state.
const chunkSize = 64 * 1024

// FingerprintFile digests the full content of the file at path and returns
// the lowercase hex fingerprint. Opening failures are classified as file
// access errors; read failures mid-stream as hash computation errors. The
// operation is all-or-nothing: no partial digest is ever returned.
func FingerprintFile(path string, algorithm Algorithm) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", dedupe.Wrap(dedupe.ErrFileAccess, "hashing", "open", path, err)
	}
	defer file.Close()

	digest := algorithm.newDigest()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(digest, file, buf); err != nil {
		return "", dedupe.Wrap(dedupe.ErrHashComputation, "hashing", "read", path, err)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// Fingerprint digests an arbitrary byte stream. Used by callers that already
// hold an open reader and by tests that exercise mid-stream failures.
func Fingerprint(r io.Reader, algorithm Algorithm) (string, error) {
	digest := algorithm.newDigest()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(digest, r, buf); err != nil {
		return "", dedupe.Wrap(dedupe.ErrHashComputation, "hashing", "read", "stream", err)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// CompareFiles reports whether two files hold byte-identical content under
// the given algorithm.
func CompareFiles(pathA, pathB string, algorithm Algorithm) (bool, error) {
	fpA, err := FingerprintFile(pathA, algorithm)
	if err != nil {
		return false, err
	}
	fpB, err := FingerprintFile(pathB, algorithm)
	if err != nil {
		return false, err
	}
	return fpA == fpB, nil
}
