package leaf

import (
	"iter"
	"math/rand"

	"github.com/dshills/gohyp/pkg/basic"
	"github.com/dshills/gohyp/pkg/param"
	"github.com/dshills/gohyp/pkg/strategy"
)

const asciiAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "

type asciiStringStrategy struct {
	maxLen int
	desc   strategy.Descriptor
}

// ASCIIString builds a leaf strategy over printable-ASCII strings no
// longer than maxLen.
func ASCIIString(maxLen int) strategy.Strategy {
	return asciiStringStrategy{maxLen: maxLen, desc: strategy.Leaf(Token("ascii_string"))}
}

func (s asciiStringStrategy) Descriptor() strategy.Descriptor { return s.desc }
func (s asciiStringStrategy) Parameter() param.Parameter      { return param.NewComposite() }
func (s asciiStringStrategy) SizeLowerBound() int             { return 1 }
func (s asciiStringStrategy) SizeUpperBound() int             { return 1 << 30 }

func (s asciiStringStrategy) ProduceTemplate(r *rand.Rand, pv param.Value) (strategy.Template, error) {
	l := r.Intn(s.maxLen + 1)
	buf := make([]byte, l)
	for i := range buf {
		buf[i] = asciiAlphabet[r.Intn(len(asciiAlphabet))]
	}
	return string(buf), nil
}

func (s asciiStringStrategy) Reify(t strategy.Template) (any, error) {
	v, ok := t.(string)
	if !ok {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "not a string template"}
	}
	return v, nil
}

func (s asciiStringStrategy) Decompose(t strategy.Template) ([]strategy.Component, error) {
	return nil, nil
}

// Simplify yields the empty string, then the string with its last byte
// dropped repeatedly, then, for each byte that is not 'a', the string
// with that one byte replaced by 'a'.
func (s asciiStringStrategy) Simplify(t strategy.Template) (iter.Seq[strategy.Template], error) {
	v, ok := t.(string)
	if !ok {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "not a string template"}
	}
	return func(yield func(strategy.Template) bool) {
		if len(v) == 0 {
			return
		}
		if !yield("") {
			return
		}
		for n := len(v) - 1; n > 0; n-- {
			if !yield(v[:n]) {
				return
			}
		}
		for i, b := range []byte(v) {
			if b == 'a' {
				continue
			}
			lowered := []byte(v)
			lowered[i] = 'a'
			if !yield(string(lowered)) {
				return
			}
		}
	}, nil
}

func (s asciiStringStrategy) ToBasic(t strategy.Template) (basic.Value, error) {
	v, ok := t.(string)
	if !ok {
		return basic.Value{}, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "not a string template"}
	}
	return basic.NewString(v), nil
}

func (s asciiStringStrategy) FromBasic(v basic.Value) (strategy.Template, error) {
	str, ok := v.Str()
	if !ok {
		return nil, &strategy.InvalidDataError{Descriptor: s.desc, Reason: "expected a string"}
	}
	return str, nil
}
