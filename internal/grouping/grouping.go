package grouping

import (
	"sort"

	"carbon/internal/dedupe"
)

// Collect partitions descriptors by fingerprint and returns only the
// clusters with two or more members. Groups are ordered by descending
// member count; equal-sized groups keep the relative order in which their
// fingerprints first appeared in the input. Member order within a group is
// input order, so the first member is the earliest-discovered file.
//
// Unique files are dropped, never reported. Callers must hand in
// descriptors fingerprinted with a single algorithm; mixing algorithms is a
// caller error this function cannot detect.
func Collect(descriptors []dedupe.Descriptor) []dedupe.Group {
	members := make(map[string][]dedupe.Descriptor, len(descriptors))
	order := make([]string, 0, len(descriptors))

	for _, desc := range descriptors {
		if _, seen := members[desc.Fingerprint]; !seen {
			order = append(order, desc.Fingerprint)
		}
		members[desc.Fingerprint] = append(members[desc.Fingerprint], desc)
	}

	groups := make([]dedupe.Group, 0, len(order))
	for _, fingerprint := range order {
		cluster := members[fingerprint]
		if len(cluster) < 2 {
			continue
		}
		groups = append(groups, dedupe.Group{Fingerprint: fingerprint, Members: cluster})
	}

	// Largest groups first; ties keep first-appearance order.
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Members) > len(groups[j].Members)
	})

	return groups
}
