package composite

import (
	"iter"
	"math/rand"

	"github.com/dshills/gohyp/pkg/basic"
	"github.com/dshills/gohyp/pkg/param"
	"github.com/dshills/gohyp/pkg/strategy"
)

// mapStrategy implements the fixed-keys map as a mapped tuple strategy
// (spec §4.5): an inner tuple strategy over the sorted-key order of
// children handles produce_template, simplify, to_basic, and from_basic
// verbatim; only Reify and Descriptor differ.
type mapStrategy struct {
	inner strategy.Strategy
	keys  []string
	desc  strategy.Descriptor
}

// NewMap builds a fixed-keys map strategy. children must be keyed by the
// same names as fields and built from the matching child descriptors.
func NewMap(fields map[string]strategy.Descriptor, children map[string]strategy.Strategy) strategy.Strategy {
	desc := strategy.Map(fields)
	keys := desc.Keys()
	ordered := make([]strategy.Strategy, len(keys))
	for i, k := range keys {
		ordered[i] = children[k]
	}
	return &mapStrategy{
		inner: NewTuple(ordered, "", plainTuple),
		keys:  keys,
		desc:  desc,
	}
}

func (s *mapStrategy) Descriptor() strategy.Descriptor { return s.desc }
func (s *mapStrategy) Parameter() param.Parameter      { return s.inner.Parameter() }
func (s *mapStrategy) SizeLowerBound() int             { return s.inner.SizeLowerBound() }
func (s *mapStrategy) SizeUpperBound() int             { return s.inner.SizeUpperBound() }

func (s *mapStrategy) ProduceTemplate(r *rand.Rand, pv param.Value) (strategy.Template, error) {
	return s.inner.ProduceTemplate(r, pv)
}

// Reify zips the sorted keys with the reified tuple fields to build a
// mapping; it is the one operation not delegated verbatim to the inner
// tuple strategy.
func (s *mapStrategy) Reify(t strategy.Template) (any, error) {
	v, err := s.inner.Reify(t)
	if err != nil {
		return nil, err
	}
	fields, ok := v.([]any)
	if !ok || len(fields) != len(s.keys) {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "inner tuple did not reify to a matching-arity field list"}
	}
	out := make(map[string]any, len(s.keys))
	for i, k := range s.keys {
		out[k] = fields[i]
	}
	return out, nil
}

func (s *mapStrategy) Decompose(t strategy.Template) ([]strategy.Component, error) {
	return s.inner.Decompose(t)
}

func (s *mapStrategy) Simplify(t strategy.Template) (iter.Seq[strategy.Template], error) {
	return s.inner.Simplify(t)
}

func (s *mapStrategy) ToBasic(t strategy.Template) (basic.Value, error) {
	return s.inner.ToBasic(t)
}

func (s *mapStrategy) FromBasic(v basic.Value) (strategy.Template, error) {
	return s.inner.FromBasic(v)
}
