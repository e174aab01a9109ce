package strategy

import (
	"fmt"
	"sort"
	"strings"
)

// DescriptorKind tags which shape of value-space a Descriptor names.
type DescriptorKind int

const (
	// KindLeaf names a primitive type token, owned by an external leaf
	// strategy layer (pkg/leaf in this repository).
	KindLeaf DescriptorKind = iota
	// KindTuple names a fixed heterogeneous product (spec §4.2).
	KindTuple
	// KindList names a variable-length homogeneous-union list (spec §4.3).
	KindList
	// KindSet names an unordered distinct-element collection (spec §4.4).
	KindSet
	// KindFrozenSet names the immutable-set wrapper over KindSet (spec §4.4).
	KindFrozenSet
	// KindMap names a mapping with a statically-known key set (spec §4.5).
	KindMap
)

func (k DescriptorKind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindFrozenSet:
		return "frozenset"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("DescriptorKind(%d)", int(k))
	}
}

// LeafDescriptor is the external contract a primitive type token must
// satisfy so composite descriptors can compare and print it. The leaf
// layer (pkg/leaf) supplies concrete implementations; this package never
// constructs one itself.
type LeafDescriptor interface {
	// Equal reports whether two leaf descriptors name the same value space.
	Equal(other LeafDescriptor) bool
	// String renders a stable, printable form used for deterministic
	// sorting (spec §4.4, §4.5) and diagnostics.
	String() string
}

// Descriptor names a value-space: a leaf type token, a tuple/record of
// descriptors, a list/set marker over descriptors, or a fixed-keys map.
// Descriptors are immutable and compared by value equality via Equal;
// Go cannot use == directly on a struct holding slices.
type Descriptor struct {
	kind       DescriptorKind
	leaf       LeafDescriptor
	children   []Descriptor
	recordName string
	keys       []string
	fields     map[string]Descriptor
}

// Leaf builds a leaf descriptor wrapping an external type token.
func Leaf(d LeafDescriptor) Descriptor {
	return Descriptor{kind: KindLeaf, leaf: d}
}

// Tuple builds a tuple descriptor over children in position order.
// recordName is empty for a plain tuple, or the name of a registered
// named-record constructor (spec §4.2, §9 "container-type preservation").
func Tuple(recordName string, children ...Descriptor) Descriptor {
	return Descriptor{kind: KindTuple, children: append([]Descriptor(nil), children...), recordName: recordName}
}

// List builds a list-of-union descriptor. An empty children set is the
// unit list descriptor (spec §4.3).
func List(children ...Descriptor) Descriptor {
	return Descriptor{kind: KindList, children: append([]Descriptor(nil), children...)}
}

// Set builds a set-of-union descriptor.
func Set(children ...Descriptor) Descriptor {
	return Descriptor{kind: KindSet, children: append([]Descriptor(nil), children...)}
}

// FrozenSet builds a frozen-set-of-union descriptor.
func FrozenSet(children ...Descriptor) Descriptor {
	return Descriptor{kind: KindFrozenSet, children: append([]Descriptor(nil), children...)}
}

// Map builds a fixed-keys map descriptor. The key order exposed by Keys
// is the key strings sorted lexicographically (sort.Strings), a stable
// printable-form ordering (spec §4.5).
func Map(fields map[string]Descriptor) Descriptor {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	cp := make(map[string]Descriptor, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Descriptor{kind: KindMap, keys: keys, fields: cp}
}

// Kind reports the descriptor's shape.
func (d Descriptor) Kind() DescriptorKind { return d.kind }

// LeafToken returns the wrapped leaf type token. Only valid when
// Kind() == KindLeaf.
func (d Descriptor) LeafToken() LeafDescriptor { return d.leaf }

// Children returns the child descriptors of a tuple/list/set/frozenset
// descriptor, in position order. Empty for leaf and map descriptors.
func (d Descriptor) Children() []Descriptor {
	return append([]Descriptor(nil), d.children...)
}

// RecordName returns the named-record constructor name for a tuple
// descriptor, or "" for a plain tuple.
func (d Descriptor) RecordName() string { return d.recordName }

// Keys returns the sorted key order of a map descriptor.
func (d Descriptor) Keys() []string { return append([]string(nil), d.keys...) }

// Field returns the child descriptor for a map key.
func (d Descriptor) Field(key string) (Descriptor, bool) {
	child, ok := d.fields[key]
	return child, ok
}

// Equal reports whether two descriptors name the same value space.
func (d Descriptor) Equal(o Descriptor) bool {
	if d.kind != o.kind {
		return false
	}
	switch d.kind {
	case KindLeaf:
		if d.leaf == nil || o.leaf == nil {
			return d.leaf == o.leaf
		}
		return d.leaf.Equal(o.leaf)
	case KindTuple:
		if d.recordName != o.recordName || len(d.children) != len(o.children) {
			return false
		}
		for i := range d.children {
			if !d.children[i].Equal(o.children[i]) {
				return false
			}
		}
		return true
	case KindList, KindSet, KindFrozenSet:
		if len(d.children) != len(o.children) {
			return false
		}
		for i := range d.children {
			if !d.children[i].Equal(o.children[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(d.keys) != len(o.keys) {
			return false
		}
		for i, k := range d.keys {
			if o.keys[i] != k {
				return false
			}
			if !d.fields[k].Equal(o.fields[k]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a stable printable form, used both for diagnostics and
// as the sort key for child-strategy ordering (spec §4.4, §4.5).
func (d Descriptor) String() string {
	switch d.kind {
	case KindLeaf:
		if d.leaf == nil {
			return "leaf(?)"
		}
		return "leaf(" + d.leaf.String() + ")"
	case KindTuple:
		parts := childStrings(d.children)
		if d.recordName != "" {
			return d.recordName + "(" + strings.Join(parts, ", ") + ")"
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KindList:
		return "list[" + strings.Join(childStrings(d.children), "|") + "]"
	case KindSet:
		return "set{" + strings.Join(childStrings(d.children), "|") + "}"
	case KindFrozenSet:
		return "frozenset{" + strings.Join(childStrings(d.children), "|") + "}"
	case KindMap:
		parts := make([]string, len(d.keys))
		for i, k := range d.keys {
			parts[i] = k + ":" + d.fields[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "?"
	}
}

func childStrings(children []Descriptor) []string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.String()
	}
	return parts
}

// SortByDescriptorString stable-sorts strategies by the printable form
// of their descriptor, the "nice_string" ordering spec §4.4 requires of
// a set's unioned child strategies and spec §4.5 requires of a map's
// keys (there, applied to the key name rather than the descriptor).
func SortByDescriptorString(strategies []Strategy) {
	sort.SliceStable(strategies, func(i, j int) bool {
		return strategies[i].Descriptor().String() < strategies[j].Descriptor().String()
	})
}
