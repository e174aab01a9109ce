package strategy

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"

	"github.com/dshills/gohyp/pkg/basic"
	"github.com/dshills/gohyp/pkg/param"
)

// ErrEmptyUnion is returned by OneOf when called with no strategies.
var ErrEmptyUnion = errors.New("strategy: one_of requires at least one strategy")

// unionTemplate tags a drawn template with the index of the option
// strategy that produced it, so later operations (Reify, Decompose,
// Simplify, ToBasic) can route back to the right child.
type unionTemplate struct {
	idx  int
	item Template
}

// unionParameter carries fixed per-option weights (all equal, so picks
// are uniform; they are not drawn) and composes them with every
// option's own parameter, which is drawn.
type unionParameter struct {
	weights []float64
	options []param.Parameter
}

type unionParamValue struct {
	weights []float64
	picks   []param.Value
}

func (p unionParameter) Draw(r *rand.Rand) param.Value {
	picks := make([]param.Value, len(p.options))
	for i, opt := range p.options {
		picks[i] = opt.Draw(r)
	}
	return unionParamValue{weights: p.weights, picks: picks}
}

// unionStrategy is the generic implementation of the one_of_strategies
// combinator spec §6 lists as an external collaborator. Its contract
// only needs the core Strategy operations on each option, so it lives
// in the core rather than in the leaf layer (see SPEC_FULL.md §4.8).
type unionStrategy struct {
	options []Strategy
	desc    Descriptor
	param   unionParameter
}

// OneOf unions a non-empty collection of strategies into a single
// strategy whose descriptor is the ordered sequence of the options'
// descriptors and whose draws pick an option by weight. Every option is
// given weight 1.0, so the pick is uniform. The selection algorithm is a
// cumulative-weight scan over those float64 weights.
func OneOf(options ...Strategy) (Strategy, error) {
	if len(options) == 0 {
		return nil, ErrEmptyUnion
	}
	weights := make([]float64, len(options))
	descs := make([]Descriptor, len(options))
	params := make([]param.Parameter, len(options))
	for i, opt := range options {
		weights[i] = 1.0
		descs[i] = opt.Descriptor()
		params[i] = opt.Parameter()
	}
	return &unionStrategy{
		options: append([]Strategy(nil), options...),
		desc:    List(descs...), // ordered sequence of child descriptors
		param:   unionParameter{weights: weights, options: params},
	}, nil
}

func (u *unionStrategy) Descriptor() Descriptor      { return u.desc }
func (u *unionStrategy) Parameter() param.Parameter  { return u.param }
func (u *unionStrategy) SizeLowerBound() int {
	min := u.options[0].SizeLowerBound()
	for _, o := range u.options[1:] {
		if o.SizeLowerBound() < min {
			min = o.SizeLowerBound()
		}
	}
	return min
}
func (u *unionStrategy) SizeUpperBound() int {
	sum := 0
	for _, o := range u.options {
		sum += o.SizeUpperBound()
	}
	return sum
}

// pickIndex selects an option index via the cumulative-weight scan the
// teacher's rng.WeightedChoice uses: generate a uniform draw in
// [0,total), then walk cumulative weights until it's exceeded.
func pickIndex(r *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	target := r.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

func (u *unionStrategy) ProduceTemplate(r *rand.Rand, pv param.Value) (Template, error) {
	upv, ok := pv.(unionParamValue)
	if !ok {
		return nil, &InvalidTemplateError{Descriptor: u.desc, Reason: "produce_template: parameter value is not a union parameter value"}
	}
	idx := pickIndex(r, upv.weights)
	tmpl, err := u.options[idx].ProduceTemplate(r, upv.picks[idx])
	if err != nil {
		return nil, WrapChild(u.options[idx].Descriptor(), err)
	}
	return unionTemplate{idx: idx, item: tmpl}, nil
}

func (u *unionStrategy) asUnion(t Template, op string) (unionTemplate, error) {
	ut, ok := t.(unionTemplate)
	if !ok || ut.idx < 0 || ut.idx >= len(u.options) {
		return unionTemplate{}, &InvalidTemplateError{Descriptor: u.desc, Reason: fmt.Sprintf("%s: not a valid union template", op)}
	}
	return ut, nil
}

func (u *unionStrategy) Reify(t Template) (any, error) {
	ut, err := u.asUnion(t, "reify")
	if err != nil {
		return nil, err
	}
	v, err := u.options[ut.idx].Reify(ut.item)
	if err != nil {
		return nil, WrapChild(u.options[ut.idx].Descriptor(), err)
	}
	return v, nil
}

func (u *unionStrategy) Decompose(t Template) ([]Component, error) {
	ut, err := u.asUnion(t, "decompose")
	if err != nil {
		return nil, err
	}
	return []Component{{Descriptor: u.options[ut.idx].Descriptor(), Template: ut.item}}, nil
}

func (u *unionStrategy) Simplify(t Template) (iter.Seq[Template], error) {
	ut, err := u.asUnion(t, "simplify")
	if err != nil {
		return nil, err
	}
	inner, err := u.options[ut.idx].Simplify(ut.item)
	if err != nil {
		return nil, WrapChild(u.options[ut.idx].Descriptor(), err)
	}
	idx := ut.idx
	return func(yield func(Template) bool) {
		for s := range inner {
			if !yield(unionTemplate{idx: idx, item: s}) {
				return
			}
		}
	}, nil
}

func (u *unionStrategy) ToBasic(t Template) (basic.Value, error) {
	ut, err := u.asUnion(t, "to_basic")
	if err != nil {
		return basic.Value{}, err
	}
	payload, err := u.options[ut.idx].ToBasic(ut.item)
	if err != nil {
		return basic.Value{}, WrapChild(u.options[ut.idx].Descriptor(), err)
	}
	return basic.NewSeq(basic.NewInt(int64(ut.idx)), payload), nil
}

func (u *unionStrategy) FromBasic(v basic.Value) (Template, error) {
	items, ok := v.Items()
	if !ok || len(items) != 2 {
		return nil, &InvalidDataError{Descriptor: u.desc, Reason: "expected a 2-element [index, payload] sequence"}
	}
	idx64, ok := items[0].Int()
	if !ok || idx64 < 0 || int(idx64) >= len(u.options) {
		return nil, &InvalidDataError{Descriptor: u.desc, Reason: "union index out of range"}
	}
	idx := int(idx64)
	inner, err := u.options[idx].FromBasic(items[1])
	if err != nil {
		return nil, WrapChild(u.options[idx].Descriptor(), err)
	}
	return unionTemplate{idx: idx, item: inner}, nil
}
