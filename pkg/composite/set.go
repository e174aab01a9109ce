package composite

import (
	"iter"
	"math/rand"

	"github.com/dshills/gohyp/pkg/basic"
	"github.com/dshills/gohyp/pkg/param"
	"github.com/dshills/gohyp/pkg/strategy"
)

// setParameter composes the stopping-chance uniform draw with the
// element strategy's own parameter (spec §4.4).
type setParameter struct {
	stopping param.Parameter
	element  param.Parameter
}

type setParamValue struct {
	stopping float64
	element  param.Value
}

func (p setParameter) Draw(r *rand.Rand) param.Value {
	v := setParamValue{stopping: p.stopping.Draw(r).(float64)}
	if p.element != nil {
		v.element = p.element.Draw(r)
	}
	return v
}

type setStrategy struct {
	element strategy.Strategy // nil for the unit (always-empty) set
	desc    strategy.Descriptor
	param   setParameter
	frozen  bool
}

// NewSet builds a set strategy over element, the already-unioned element
// strategy built from the descriptor's child set. element is nil for the
// empty descriptor: only the empty set is ever produced (spec §4.4).
func NewSet(element strategy.Strategy, elementDescs []strategy.Descriptor) strategy.Strategy {
	return newSetStrategy(element, elementDescs, false)
}

// NewFrozenSet is the thin wrapper spec §4.4 describes: it delegates to
// the same shrink/generation machinery as NewSet, differing only in its
// descriptor kind and in packing reified values as a FrozenValueSet.
func NewFrozenSet(element strategy.Strategy, elementDescs []strategy.Descriptor) strategy.Strategy {
	return newSetStrategy(element, elementDescs, true)
}

func newSetStrategy(element strategy.Strategy, elementDescs []strategy.Descriptor, frozen bool) strategy.Strategy {
	s := &setStrategy{element: element, frozen: frozen}
	if frozen {
		s.desc = strategy.FrozenSet(elementDescs...)
	} else {
		s.desc = strategy.Set(elementDescs...)
	}
	s.param = setParameter{stopping: param.UniformFloat{Min: 0.01, Max: 0.25}}
	if element != nil {
		s.param.element = element.Parameter()
	}
	return s
}

func (s *setStrategy) Descriptor() strategy.Descriptor { return s.desc }
func (s *setStrategy) Parameter() param.Parameter      { return s.param }

func (s *setStrategy) SizeLowerBound() int {
	if s.element == nil {
		return 1
	}
	return 1 << uint(min(s.element.SizeLowerBound(), 30))
}
func (s *setStrategy) SizeUpperBound() int {
	if s.element == nil {
		return 1
	}
	return 1 << uint(min(s.element.SizeUpperBound(), 30))
}

func (s *setStrategy) items(t strategy.Template) ([]any, error) {
	items, ok := t.([]any)
	if !ok {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "not a set template"}
	}
	return items, nil
}

// ProduceTemplate repeatedly draws element templates, stopping after
// each draw with probability stopping_chance, and collects them into a
// deduplicated, deterministically ordered set of templates (spec §4.4,
// §9 "deterministic set ordering").
func (s *setStrategy) ProduceTemplate(r *rand.Rand, pv param.Value) (strategy.Template, error) {
	if s.element == nil {
		return []any{}, nil
	}
	spv, ok := pv.(setParamValue)
	if !ok {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "produce_template: parameter value is not a set parameter value"}
	}
	var draws []any
	for {
		t, err := s.element.ProduceTemplate(r, spv.element)
		if err != nil {
			return nil, strategy.WrapChild(s.element.Descriptor(), err)
		}
		draws = append(draws, t)
		if r.Float64() < spv.stopping {
			break
		}
	}
	return strategy.SortAndDedup(draws), nil
}

func (s *setStrategy) Reify(t strategy.Template) (any, error) {
	items, err := s.items(t)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(items))
	for i, it := range items {
		v, err := s.element.Reify(it)
		if err != nil {
			return nil, strategy.WrapChild(s.element.Descriptor(), err)
		}
		out[i] = v
	}
	if s.frozen {
		return FrozenValueSet{ValueSet{items: out}}, nil
	}
	return ValueSet{items: out}, nil
}

func (s *setStrategy) Decompose(t strategy.Template) ([]strategy.Component, error) {
	items, err := s.items(t)
	if err != nil {
		return nil, err
	}
	out := make([]strategy.Component, len(items))
	for i, it := range items {
		out[i] = strategy.Component{Descriptor: s.element.Descriptor(), Template: it}
	}
	return out, nil
}

// Simplify yields, in order: the empty set, each single-element removal,
// then for each element each of its child-simplifications substituted
// in (spec §4.4). Traversal order is the deterministic CanonicalKey
// order produce_template already sorts templates into.
func (s *setStrategy) Simplify(t strategy.Template) (iter.Seq[strategy.Template], error) {
	items, err := s.items(t)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return func(yield func(strategy.Template) bool) {}, nil
	}

	elemSimplify := make([]iter.Seq[strategy.Template], len(items))
	for i, it := range items {
		seq, err := s.element.Simplify(it)
		if err != nil {
			return nil, strategy.WrapChild(s.element.Descriptor(), err)
		}
		elemSimplify[i] = seq
	}

	return func(yield func(strategy.Template) bool) {
		if !yield([]any{}) {
			return
		}
		for i := range items {
			if !yield(withoutSetElement(items, i)) {
				return
			}
		}
		for i := range items {
			for sVal := range elemSimplify[i] {
				without := withoutSetElement(items, i)
				if !yield(strategy.SortAndDedup(append(without, sVal))) {
					return
				}
			}
		}
	}, nil
}

func withoutSetElement(items []any, i int) []any {
	out := make([]any, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out
}

func (s *setStrategy) ToBasic(t strategy.Template) (basic.Value, error) {
	items, err := s.items(t)
	if err != nil {
		return basic.Value{}, err
	}
	out := make([]basic.Value, len(items))
	for i, it := range items {
		v, err := s.element.ToBasic(it)
		if err != nil {
			return basic.Value{}, strategy.WrapChild(s.element.Descriptor(), err)
		}
		out[i] = v
	}
	return basic.NewSeq(out...), nil
}

func (s *setStrategy) FromBasic(v basic.Value) (strategy.Template, error) {
	items, ok := v.Items()
	if !ok {
		return nil, &strategy.InvalidDataError{Descriptor: s.desc, Reason: "expected a list"}
	}
	if s.element == nil {
		if len(items) != 0 {
			return nil, &strategy.InvalidDataError{Descriptor: s.desc, Reason: "the empty set descriptor accepts only the empty list"}
		}
		return []any{}, nil
	}
	out := make([]any, len(items))
	for i, it := range items {
		t, err := s.element.FromBasic(it)
		if err != nil {
			return nil, strategy.WrapChild(s.element.Descriptor(), err)
		}
		out[i] = t
	}
	return strategy.SortAndDedup(out), nil
}
