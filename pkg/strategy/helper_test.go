package strategy

import (
	"iter"
	"math/rand"

	"github.com/dshills/gohyp/pkg/basic"
	"github.com/dshills/gohyp/pkg/param"
)

// fakeStrategy is a minimal Strategy stub used by tests in this package
// that only need a working Descriptor/Parameter and don't exercise the
// generation/shrink machinery itself.
type fakeStrategy struct {
	desc Descriptor
}

func (f fakeStrategy) Descriptor() Descriptor     { return f.desc }
func (f fakeStrategy) Parameter() param.Parameter { return param.NewComposite() }
func (f fakeStrategy) SizeLowerBound() int        { return 1 }
func (f fakeStrategy) SizeUpperBound() int        { return 1 }

func (f fakeStrategy) ProduceTemplate(r *rand.Rand, pv param.Value) (Template, error) {
	return 0, nil
}

func (f fakeStrategy) Reify(t Template) (any, error) { return t, nil }

func (f fakeStrategy) Decompose(t Template) ([]Component, error) { return nil, nil }

func (f fakeStrategy) Simplify(t Template) (iter.Seq[Template], error) {
	return func(yield func(Template) bool) {}, nil
}

func (f fakeStrategy) ToBasic(t Template) (basic.Value, error) { return basic.NewInt(0), nil }

func (f fakeStrategy) FromBasic(v basic.Value) (Template, error) { return 0, nil }
