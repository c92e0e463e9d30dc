// Package impact answers reachability queries over a dependency mapping:
// which units are directly or transitively affected when a given set of
// dependency names changes.
package impact

import "github.com/Sumatoshi-tech/cdeps/pkg/depgraph"

// Partition splits a mapping's units into those that reach a target and
// those that do not. The two sets are disjoint and their union is exactly
// the mapping's key set; external dependency names never appear in either.
type Partition struct {
	Impacted   depgraph.Set
	Unimpacted depgraph.Set
}

// Analyzer answers impact queries against one immutable mapping.
// The reverse edge index is built once per mapping and reused across
// queries; the Analyzer must not outlive changes to the mapping.
type Analyzer struct {
	mapping depgraph.Mapping
	reverse map[string][]string
}

// NewAnalyzer builds an Analyzer for mapping.
func NewAnalyzer(mapping depgraph.Mapping) *Analyzer {
	reverse := make(map[string][]string, len(mapping))

	for unit, deps := range mapping {
		for dep := range deps {
			reverse[dep] = append(reverse[dep], unit)
		}
	}

	return &Analyzer{mapping: mapping, reverse: reverse}
}

// Traversal states per name. A name on the stack is pending; once its
// dependents have been expanded it is done. The marker keeps cycles and
// self loops from re-entering the stack, so traversal always terminates.
const (
	stateUnvisited = iota
	statePending
	stateDone
)

// DependentUnits partitions the mapping's units by reachability to the
// target set. A unit is impacted iff some dependency path, possibly zero
// length, leads from it to a target name: a unit whose own name is a
// target counts as impacted. Walking the reverse edges outward from the
// targets visits exactly those units.
//
// Pure computation: identical arguments always produce identical results,
// and the call cannot fail on a well-formed mapping. An empty target set,
// or targets no unit depends on, leaves every unit unimpacted.
func (a *Analyzer) DependentUnits(targets depgraph.Set) Partition {
	state := make(map[string]int, len(a.mapping))
	stack := make([]string, 0, len(targets))

	for target := range targets {
		state[target] = statePending
		stack = append(stack, target)
	}

	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		state[name] = stateDone

		for _, dependent := range a.reverse[name] {
			if state[dependent] == stateUnvisited {
				state[dependent] = statePending
				stack = append(stack, dependent)
			}
		}
	}

	part := Partition{Impacted: depgraph.NewSet(), Unimpacted: depgraph.NewSet()}

	for unit := range a.mapping {
		if state[unit] != stateUnvisited {
			part.Impacted.Add(unit)
		} else {
			part.Unimpacted.Add(unit)
		}
	}

	return part
}

// DependentUnits is the one-shot form for a single query against mapping.
// Callers issuing repeated queries should hold an Analyzer instead.
func DependentUnits(mapping depgraph.Mapping, targets depgraph.Set) Partition {
	return NewAnalyzer(mapping).DependentUnits(targets)
}
