package session

import (
	"github.com/google/uuid"

	"carbon/internal/dedupe"
	"carbon/internal/hashing"
)

// Stats aggregates scan counters for the statistics renderer.
type Stats struct {
	FilesScanned    int
	DuplicateGroups int
	BytesScanned    int64
}

// Session is the transient aggregate of one pipeline invocation. It exists
// from the start of a scan call until the caller discards it; no state
// leaks between invocations.
type Session struct {
	ID        string
	Root      string
	Recursive bool
	Algorithm hashing.Algorithm

	Descriptors []dedupe.Descriptor
	Groups      []dedupe.Group
}

// New creates an empty session tagged with a fresh identifier for log
// correlation.
func New(root string, recursive bool, algorithm hashing.Algorithm) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Root:      root,
		Recursive: recursive,
		Algorithm: algorithm,
	}
}

// Reset clears accumulated state so the session can back a new scan. The
// identifier is regenerated because the session now represents a different
// invocation.
func (s *Session) Reset() {
	s.ID = uuid.NewString()
	s.Descriptors = nil
	s.Groups = nil
}

// Stats derives the aggregate counters from the accumulated state.
func (s *Session) Stats() Stats {
	stats := Stats{
		FilesScanned:    len(s.Descriptors),
		DuplicateGroups: len(s.Groups),
	}
	for _, desc := range s.Descriptors {
		stats.BytesScanned += desc.Size
	}
	return stats
}

// GroupPaths returns every group as a path slice, primary first, in group
// order. This is the shape external renderers consume.
func (s *Session) GroupPaths() [][]string {
	paths := make([][]string, len(s.Groups))
	for i, group := range s.Groups {
		paths[i] = group.Paths()
	}
	return paths
}
