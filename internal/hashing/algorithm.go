package hashing

import (
	"crypto/md5"
	"crypto/sha256"
	"hash"
	"strings"

	"carbon/internal/dedupe"
)

// Algorithm identifies the digest strategy used to fingerprint file content.
type Algorithm string

const (
	// AlgorithmMD5 is the fast, ordinary-strength strategy.
	AlgorithmMD5 Algorithm = "md5"
	// AlgorithmSHA256 is the cryptographically strong strategy.
	AlgorithmSHA256 Algorithm = "sha256"
)

// ParseAlgorithm resolves an algorithm identifier. Unknown identifiers are
// rejected as configuration errors before any I/O happens.
func ParseAlgorithm(value string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(AlgorithmMD5):
		return AlgorithmMD5, nil
	case string(AlgorithmSHA256):
		return AlgorithmSHA256, nil
	default:
		return "", dedupe.Wrap(dedupe.ErrInvalidConfiguration, "hashing", "parse algorithm",
			"unknown algorithm "+strings.TrimSpace(value)+" (expected md5 or sha256)", nil)
	}
}

// String returns the canonical identifier.
func (a Algorithm) String() string {
	return string(a)
}

func (a Algorithm) newDigest() hash.Hash {
	switch a {
	case AlgorithmMD5:
		return md5.New()
	default:
		return sha256.New()
	}
}
