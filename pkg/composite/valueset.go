package composite

import "github.com/dshills/gohyp/pkg/strategy"

// ValueSet is the reified form of a set strategy: a deduplicated,
// deterministically ordered collection of user-visible values. Go has no
// built-in set type that tolerates arbitrary element types, so the set
// strategy reifies into this wrapper rather than a native map[T]struct{}.
type ValueSet struct {
	items []any
}

// Len reports the number of distinct elements.
func (v ValueSet) Len() int { return len(v.items) }

// Items returns the elements in the set's deterministic order. The
// returned slice is a defensive copy.
func (v ValueSet) Items() []any {
	cp := make([]any, len(v.items))
	copy(cp, v.items)
	return cp
}

// Contains reports whether val is a member, compared via CanonicalKey.
func (v ValueSet) Contains(val any) bool {
	key := strategy.CanonicalKey(val)
	for _, it := range v.items {
		if strategy.CanonicalKey(it) == key {
			return true
		}
	}
	return false
}

// FrozenValueSet is the immutable counterpart NewFrozenSet reifies into.
// It carries identical behavior to ValueSet; the distinct type exists
// purely so a frozen-set descriptor round-trips to a frozen-set type
// (spec §9 "container-type preservation"), not a plain ValueSet.
type FrozenValueSet struct {
	ValueSet
}
