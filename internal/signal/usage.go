package signal

import (
	"maps"
	"slices"
)

// Set is a deduplicated collection of signal names.
type Set map[string]struct{}

// NewSet builds a set from names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in ascending order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Union returns a new set holding the names of s and other.
func (s Set) Union(other Set) Set {
	out := maps.Clone(s)
	if out == nil {
		out = make(Set, len(other))
	}
	maps.Copy(out, other)
	return out
}

// Intersect returns a new set holding the names present in both s and other.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for name := range s {
		if other.Has(name) {
			out[name] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set holding the names of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for name := range s {
		if !other.Has(name) {
			out[name] = struct{}{}
		}
	}
	return out
}

// Usage holds every signal name found in a scan, one set per category.
// It is filled during the scan and only read afterwards.
type Usage struct {
	Declared        Set
	Emitted         Set
	Connected       Set
	CompatConnected Set

	// Files is the number of files classified.
	Files int
}

// NewUsage creates a Usage with empty sets.
func NewUsage() *Usage {
	return &Usage{
		Declared:        make(Set),
		Emitted:         make(Set),
		Connected:       make(Set),
		CompatConnected: make(Set),
	}
}

// Add records m in the set matching its kind. NoMatch is ignored.
func (u *Usage) Add(m Match) {
	switch m.Kind {
	case Declaration:
		u.Declared[m.Name] = struct{}{}
	case Emission:
		u.Emitted[m.Name] = struct{}{}
	case Connection:
		u.Connected[m.Name] = struct{}{}
	case CompatConnection:
		u.CompatConnected[m.Name] = struct{}{}
	}
}

// Fine returns the signals that are declared, emitted and connected.
func (u *Usage) Fine() Set {
	return u.Declared.Intersect(u.Emitted).Intersect(u.Connected)
}
