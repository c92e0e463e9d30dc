// Package depgraph builds the unit dependency mapping for a set of
// compilation units.
//
// The mapping's keys are exactly the known unit names. Values are open
// world: a dependency name may be another unit key or an external header
// with no corresponding unit ("stdio", "sys/types"). Resolution is a
// string lookup, not a structural distinction.
package depgraph

import "sort"

// Mapping maps each unit name to its set of direct dependency names.
// Built once per analysis run and treated as immutable afterwards.
type Mapping map[string]Set

// Units returns the unit names in sorted order.
func (m Mapping) Units() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Externals returns the dependency names that are not unit keys,
// in sorted order.
func (m Mapping) Externals() []string {
	seen := NewSet()

	for _, deps := range m {
		for dep := range deps {
			if _, isUnit := m[dep]; !isUnit {
				seen.Add(dep)
			}
		}
	}

	return seen.Sorted()
}
