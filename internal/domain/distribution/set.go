package distribution

import "slices"

// Set is an unordered collection of distributions with membership testing.
// The zero value is an empty set.
type Set struct {
	members map[Distribution]struct{}
}

// NewSet creates a set holding ds. Duplicates collapse.
func NewSet(ds ...Distribution) Set {
	members := make(map[Distribution]struct{}, len(ds))
	for _, d := range ds {
		members[d] = struct{}{}
	}
	return Set{members: members}
}

// Contains reports whether d is a member of the set.
func (s Set) Contains(d Distribution) bool {
	_, ok := s.members[d]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.members)
}

// Slice returns the members as a fresh slice. Known distributions come first in
// declaration order, followed by any unknown members sorted by value.
func (s Set) Slice() []Distribution {
	out := make([]Distribution, 0, len(s.members))
	for _, d := range all {
		if s.Contains(d) {
			out = append(out, d)
		}
	}
	if len(out) == len(s.members) {
		return out
	}

	extra := make([]Distribution, 0, len(s.members)-len(out))
	for d := range s.members {
		if !d.Valid() {
			extra = append(extra, d)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}
