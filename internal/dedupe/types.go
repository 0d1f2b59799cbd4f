package dedupe

// Descriptor is the per-file record produced by a scan. It is created once
// per regular file, is immutable after creation, and belongs to the scan
// session that produced it.
type Descriptor struct {
	Path        string
	Size        int64
	Fingerprint string
	// DiscoveryOrder is the zero-based traversal position. The member with
	// the lowest discovery order in a group is the retained primary.
	DiscoveryOrder int
}

// Group is an ordered set of descriptors sharing one fingerprint, length
// at least two. The first member is the primary; resolution actions apply
// only to the rest.
type Group struct {
	Fingerprint string
	Members     []Descriptor
}

// Primary returns the retained member of the group.
func (g Group) Primary() Descriptor {
	return g.Members[0]
}

// Secondaries returns the members subject to a resolution action.
func (g Group) Secondaries() []Descriptor {
	return g.Members[1:]
}

// Paths returns the member paths in order, primary first.
func (g Group) Paths() []string {
	paths := make([]string, len(g.Members))
	for i, member := range g.Members {
		paths[i] = member.Path
	}
	return paths
}

// WastedBytes returns the bytes reclaimable by removing every secondary.
// All members share identical content, so each secondary wastes Size bytes.
func (g Group) WastedBytes() int64 {
	if len(g.Members) < 2 {
		return 0
	}
	return g.Primary().Size * int64(len(g.Members)-1)
}
