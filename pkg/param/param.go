package param

import (
	"math"
	"math/rand"
)

// Value is a concrete draw from a Parameter. Its dynamic type depends on
// which Parameter produced it: float64 for Exponential and UniformFloat,
// []Value for Composite, or a strategy-defined record type for a
// bespoke named composite (see the list/set parameters in pkg/composite).
type Value = any

// Parameter is a distribution descriptor: something that can be sampled
// once per test session to produce a Value that subsequently biases many
// template draws.
type Parameter interface {
	Draw(r *rand.Rand) Value
}

// Exponential draws a float64 from the exponential distribution with the
// given rate (rate = 1/mean). It is used for the list strategy's
// average_length parameter (spec §4.3).
type Exponential struct {
	Rate float64
}

// Draw samples the exponential distribution via inverse-CDF sampling:
// -ln(1-U)/rate for U uniform on [0,1). This is the same formula
// hypothesis's own internal distributions module uses, so no
// additional numerical library is pulled in for a single log call.
func (e Exponential) Draw(r *rand.Rand) Value {
	u := r.Float64()
	return -math.Log(1-u) / e.Rate
}

// UniformFloat draws a float64 uniformly from [Min, Max). It is used for
// the set strategy's stopping_chance parameter (spec §4.4).
type UniformFloat struct {
	Min, Max float64
}

// Draw samples uniformly in [Min, Max).
func (u UniformFloat) Draw(r *rand.Rand) Value {
	return u.Min + r.Float64()*(u.Max-u.Min)
}

// Composite draws each of its component parameters independently, in
// order, and returns the results as a positional []Value. This is the
// CompositeParameter shape spec §2 describes for the tuple strategy,
// where sub-parameters are addressed by position rather than name.
type Composite struct {
	components []Parameter
}

// NewComposite builds a positional composite parameter over components,
// preserving order.
func NewComposite(components ...Parameter) Composite {
	cp := make([]Parameter, len(components))
	copy(cp, components)
	return Composite{components: cp}
}

// Len reports how many components this composite has.
func (c Composite) Len() int { return len(c.components) }

// Draw samples every component, in order, and returns a positional
// []Value of the same length.
func (c Composite) Draw(r *rand.Rand) Value {
	vals := make([]Value, len(c.components))
	for i, p := range c.components {
		vals[i] = p.Draw(r)
	}
	return vals
}
