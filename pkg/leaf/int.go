package leaf

import (
	"iter"
	"math/rand"

	"github.com/dshills/gohyp/pkg/basic"
	"github.com/dshills/gohyp/pkg/param"
	"github.com/dshills/gohyp/pkg/strategy"
)

// intStrategy draws int64 templates uniformly from [Min, Max] and
// shrinks toward the value in that range closest to zero.
type intStrategy struct {
	min, max int64
	target   int64
	desc     strategy.Descriptor
}

// Int builds a leaf strategy over the inclusive range [min, max].
func Int(min, max int64) strategy.Strategy {
	target := int64(0)
	if target < min {
		target = min
	}
	if target > max {
		target = max
	}
	return intStrategy{min: min, max: max, target: target, desc: strategy.Leaf(Token("int"))}
}

func (s intStrategy) Descriptor() strategy.Descriptor { return s.desc }
func (s intStrategy) Parameter() param.Parameter      { return param.NewComposite() }
func (s intStrategy) SizeLowerBound() int             { return 1 }
func (s intStrategy) SizeUpperBound() int {
	span := s.max - s.min + 1
	if span <= 0 || span > 1<<30 {
		return 1 << 30
	}
	return int(span)
}

func (s intStrategy) ProduceTemplate(r *rand.Rand, pv param.Value) (strategy.Template, error) {
	span := s.max - s.min + 1
	return s.min + r.Int63n(span), nil
}

func (s intStrategy) Reify(t strategy.Template) (any, error) {
	v, ok := t.(int64)
	if !ok {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "not an int64 template"}
	}
	return v, nil
}

func (s intStrategy) Decompose(t strategy.Template) ([]strategy.Component, error) { return nil, nil }

// Simplify halves the distance to the in-range value closest to zero
// each step, the standard integer-shrink construction: yield the target
// itself, then successively closer approximations of t.
func (s intStrategy) Simplify(t strategy.Template) (iter.Seq[strategy.Template], error) {
	v, ok := t.(int64)
	if !ok {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "not an int64 template"}
	}
	return func(yield func(strategy.Template) bool) {
		if v == s.target {
			return
		}
		if !yield(s.target) {
			return
		}
		diff := v - s.target
		for diff != 0 {
			diff /= 2
			cand := v - diff
			if cand != v && cand != s.target {
				if !yield(cand) {
					return
				}
			}
		}
	}, nil
}

func (s intStrategy) ToBasic(t strategy.Template) (basic.Value, error) {
	v, ok := t.(int64)
	if !ok {
		return basic.Value{}, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "not an int64 template"}
	}
	return basic.NewInt(v), nil
}

func (s intStrategy) FromBasic(v basic.Value) (strategy.Template, error) {
	i, ok := v.Int()
	if !ok {
		return nil, &strategy.InvalidDataError{Descriptor: s.desc, Reason: "expected an int"}
	}
	if i < s.min || i > s.max {
		return nil, &strategy.InvalidDataError{Descriptor: s.desc, Reason: "int out of range"}
	}
	return i, nil
}
