package strategy

import (
	"iter"
	"math/rand"

	"github.com/dshills/gohyp/pkg/basic"
	"github.com/dshills/gohyp/pkg/param"
)

// Template is the internal, hashable-by-convention representation of a
// generated example. Composite templates are represented as ordered
// []any; leaf templates are whatever concrete comparable Go value the
// owning leaf strategy chooses. Template is a plain alias for any: Go
// has no structural "hashable" constraint that also admits nested
// slices, so equality/ordering is provided out-of-band by CanonicalKey
// rather than by a type constraint.
type Template = any

// Component pairs a child descriptor with the child template Decompose
// exposes for it (spec §4.1, invariant "decompose consistency").
type Component struct {
	Descriptor Descriptor
	Template   Template
}

// TupleConstructor builds a reified value from positional fields,
// preserving container-type identity across reification (spec §9,
// "container-type preservation"). The plain-tuple constructor simply
// returns fields as a []any; a named-record constructor packs them into
// whatever record type it closes over.
type TupleConstructor func(fields []any) any

// Strategy is the capability set every generator in gohyp provides: a
// descriptor, a parameter, size bounds, and the six core operations
// (spec §4.1).
type Strategy interface {
	// Descriptor names this strategy's value-space.
	Descriptor() Descriptor
	// Parameter describes what must be drawn before templates can be
	// produced under it.
	Parameter() param.Parameter
	// SizeLowerBound is a strategy-static lower estimate of the number
	// of distinct templates.
	SizeLowerBound() int
	// SizeUpperBound is a strategy-static upper estimate of the number
	// of distinct templates.
	SizeUpperBound() int
	// ProduceTemplate draws a fresh random template under pv.
	ProduceTemplate(r *rand.Rand, pv param.Value) (Template, error)
	// Reify converts a template to a user-visible value.
	Reify(t Template) (any, error)
	// Decompose exposes structural sub-parts for cross-strategy inspection.
	Decompose(t Template) ([]Component, error)
	// Simplify performs any eager, fail-fast setup needed to validate t
	// and its children, then returns a lazy sequence of templates that
	// are, heuristically, simpler than t. The returned sequence never
	// re-yields t and is guaranteed finite for finite t.
	Simplify(t Template) (iter.Seq[Template], error)
	// ToBasic serializes a template to the neutral basic form.
	ToBasic(t Template) (basic.Value, error)
	// FromBasic deserializes a template from the neutral basic form.
	FromBasic(v basic.Value) (Template, error)
}
