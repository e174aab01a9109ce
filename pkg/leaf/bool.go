package leaf

import (
	"iter"
	"math/rand"

	"github.com/dshills/gohyp/pkg/basic"
	"github.com/dshills/gohyp/pkg/param"
	"github.com/dshills/gohyp/pkg/strategy"
)

type boolStrategy struct {
	desc strategy.Descriptor
}

// Bool builds a leaf strategy over {false, true}, shrinking true to false.
func Bool() strategy.Strategy {
	return boolStrategy{desc: strategy.Leaf(Token("bool"))}
}

func (s boolStrategy) Descriptor() strategy.Descriptor { return s.desc }
func (s boolStrategy) Parameter() param.Parameter      { return param.NewComposite() }
func (s boolStrategy) SizeLowerBound() int             { return 2 }
func (s boolStrategy) SizeUpperBound() int             { return 2 }

func (s boolStrategy) ProduceTemplate(r *rand.Rand, pv param.Value) (strategy.Template, error) {
	return r.Intn(2) == 1, nil
}

func (s boolStrategy) Reify(t strategy.Template) (any, error) {
	v, ok := t.(bool)
	if !ok {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "not a bool template"}
	}
	return v, nil
}

func (s boolStrategy) Decompose(t strategy.Template) ([]strategy.Component, error) { return nil, nil }

func (s boolStrategy) Simplify(t strategy.Template) (iter.Seq[strategy.Template], error) {
	v, ok := t.(bool)
	if !ok {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "not a bool template"}
	}
	return func(yield func(strategy.Template) bool) {
		if v {
			yield(false)
		}
	}, nil
}

func (s boolStrategy) ToBasic(t strategy.Template) (basic.Value, error) {
	v, ok := t.(bool)
	if !ok {
		return basic.Value{}, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "not a bool template"}
	}
	if v {
		return basic.NewInt(1), nil
	}
	return basic.NewInt(0), nil
}

func (s boolStrategy) FromBasic(v basic.Value) (strategy.Template, error) {
	i, ok := v.Int()
	if !ok || (i != 0 && i != 1) {
		return nil, &strategy.InvalidDataError{Descriptor: s.desc, Reason: "expected 0 or 1"}
	}
	return i == 1, nil
}
