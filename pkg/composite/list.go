package composite

import (
	"iter"
	"math/rand"

	"github.com/dshills/gohyp/pkg/basic"
	"github.com/dshills/gohyp/pkg/param"
	"github.com/dshills/gohyp/pkg/strategy"
)

// listParameter composes the list-length exponential with the element
// strategy's own parameter (spec §4.3).
type listParameter struct {
	avgLength param.Parameter
	element   param.Parameter
}

type listParamValue struct {
	avgLength float64
	element   param.Value
}

func (p listParameter) Draw(r *rand.Rand) param.Value {
	v := listParamValue{avgLength: p.avgLength.Draw(r).(float64)}
	if p.element != nil {
		v.element = p.element.Draw(r)
	}
	return v
}

type listStrategy struct {
	element strategy.Strategy // nil for the unit (always-empty) list
	desc    strategy.Descriptor
	param   listParameter
}

// NewList builds a list strategy over element, the already-unioned
// element strategy built from the descriptor's child set. element is nil
// for the unit list descriptor (no child strategies): only the empty
// list is ever produced (spec §4.3).
func NewList(element strategy.Strategy, elementDescs []strategy.Descriptor, averageLength float64) strategy.Strategy {
	s := &listStrategy{
		element: element,
		desc:    strategy.List(elementDescs...),
		param:   listParameter{avgLength: param.Exponential{Rate: 1 / averageLength}},
	}
	if element != nil {
		s.param.element = element.Parameter()
	}
	return s
}

func (s *listStrategy) Descriptor() strategy.Descriptor { return s.desc }
func (s *listStrategy) Parameter() param.Parameter      { return s.param }

func (s *listStrategy) SizeLowerBound() int { return 1 }
func (s *listStrategy) SizeUpperBound() int {
	if s.element == nil {
		return 1
	}
	return s.element.SizeUpperBound()
}

func (s *listStrategy) items(t strategy.Template) ([]any, error) {
	items, ok := t.([]any)
	if !ok {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "not a list template"}
	}
	return items, nil
}

// geometricLength draws a length with mean avgLength by repeated
// weighted coin flips, the standard geometric-by-continuation
// construction: continue with probability avgLength/(avgLength+1).
func geometricLength(r *rand.Rand, avgLength float64) int {
	if avgLength <= 0 {
		return 0
	}
	pContinue := avgLength / (avgLength + 1)
	n := 0
	for r.Float64() < pContinue {
		n++
	}
	return n
}

func (s *listStrategy) ProduceTemplate(r *rand.Rand, pv param.Value) (strategy.Template, error) {
	if s.element == nil {
		return []any{}, nil
	}
	lpv, ok := pv.(listParamValue)
	if !ok {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "produce_template: parameter value is not a list parameter value"}
	}
	l := geometricLength(r, lpv.avgLength)
	out := make([]any, l)
	for i := 0; i < l; i++ {
		t, err := s.element.ProduceTemplate(r, lpv.element)
		if err != nil {
			return nil, strategy.WrapChild(s.element.Descriptor(), err)
		}
		out[i] = t
	}
	return out, nil
}

func (s *listStrategy) Reify(t strategy.Template) (any, error) {
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
	return out, nil
}

func (s *listStrategy) Decompose(t strategy.Template) ([]strategy.Component, error) {
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

// Simplify yields, in order: the empty list, each single-element
// deletion, each position's element-wise shrinks, then each adjacent
// pair deletion (spec §4.3). The steps are emitted sequentially, not
// interleaved: this fixed tie-break is what list shrinking requires,
// unlike the tuple strategy's explicit mix-generators combination.
func (s *listStrategy) Simplify(t strategy.Template) (iter.Seq[strategy.Template], error) {
	items, err := s.items(t)
	if err != nil {
		return nil, err
	}
	l := len(items)
	if l == 0 {
		return func(yield func(strategy.Template) bool) {}, nil
	}

	elemSimplify := make([]iter.Seq[strategy.Template], l)
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
		if l > 1 {
			for i := 0; i < l; i++ {
				if !yield(withoutIndex(items, i)) {
					return
				}
			}
		}
		for i := 0; i < l; i++ {
			for sVal := range elemSimplify[i] {
				cp := make([]any, l)
				copy(cp, items)
				cp[i] = sVal
				if !yield(cp) {
					return
				}
			}
		}
		for i := 0; i < l-1; i++ {
			if !yield(withoutIndices(items, i, i+1)) {
				return
			}
		}
	}, nil
}

func withoutIndex(items []any, i int) []any {
	out := make([]any, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out
}

func withoutIndices(items []any, i, j int) []any {
	out := make([]any, 0, len(items)-2)
	for k, it := range items {
		if k == i || k == j {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (s *listStrategy) ToBasic(t strategy.Template) (basic.Value, error) {
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

func (s *listStrategy) FromBasic(v basic.Value) (strategy.Template, error) {
	items, ok := v.Items()
	if !ok {
		return nil, &strategy.InvalidDataError{Descriptor: s.desc, Reason: "expected a list"}
	}
	if s.element == nil {
		if len(items) != 0 {
			return nil, &strategy.InvalidDataError{Descriptor: s.desc, Reason: "the unit list descriptor accepts only the empty list"}
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
	return out, nil
}
