package composite

import (
	"iter"
	"math/rand"

	"github.com/dshills/gohyp/pkg/basic"
	"github.com/dshills/gohyp/pkg/param"
	"github.com/dshills/gohyp/pkg/strategy"
)

// plainTuple is the default TupleConstructor: it packs fields as a
// positional []any, used when a tuple descriptor carries no record name.
func plainTuple(fields []any) any {
	cp := make([]any, len(fields))
	copy(cp, fields)
	return cp
}

type tupleStrategy struct {
	children   []strategy.Strategy
	desc       strategy.Descriptor
	ctor       strategy.TupleConstructor
	recordName string
}

// NewTuple builds a tuple strategy over children in position order.
// recordName is "" for a plain tuple; ctor reconstructs the reified
// value from positional fields (spec §4.2, §9 "container-type
// preservation").
func NewTuple(children []strategy.Strategy, recordName string, ctor strategy.TupleConstructor) strategy.Strategy {
	descs := make([]strategy.Descriptor, len(children))
	for i, c := range children {
		descs[i] = c.Descriptor()
	}
	if ctor == nil {
		ctor = plainTuple
	}
	return &tupleStrategy{
		children:   append([]strategy.Strategy(nil), children...),
		desc:       strategy.Tuple(recordName, descs...),
		ctor:       ctor,
		recordName: recordName,
	}
}

func (s *tupleStrategy) Descriptor() strategy.Descriptor { return s.desc }

func (s *tupleStrategy) Parameter() param.Parameter {
	ps := make([]param.Parameter, len(s.children))
	for i, c := range s.children {
		ps[i] = c.Parameter()
	}
	return param.NewComposite(ps...)
}

func (s *tupleStrategy) SizeLowerBound() int {
	n := 1
	for _, c := range s.children {
		n *= c.SizeLowerBound()
	}
	return n
}

func (s *tupleStrategy) SizeUpperBound() int {
	n := 1
	for _, c := range s.children {
		n *= c.SizeUpperBound()
	}
	return n
}

func (s *tupleStrategy) fields(t strategy.Template) ([]any, error) {
	fields, ok := t.([]any)
	if !ok || len(fields) != len(s.children) {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "not an N-tuple template"}
	}
	return fields, nil
}

func (s *tupleStrategy) ProduceTemplate(r *rand.Rand, pv param.Value) (strategy.Template, error) {
	pvs, ok := pv.([]any)
	if !ok || len(pvs) != len(s.children) {
		return nil, &strategy.InvalidTemplateError{Descriptor: s.desc, Reason: "produce_template: parameter value is not an N-composite"}
	}
	out := make([]any, len(s.children))
	for i, c := range s.children {
		t, err := c.ProduceTemplate(r, pvs[i])
		if err != nil {
			return nil, strategy.WrapChild(c.Descriptor(), err)
		}
		out[i] = t
	}
	return out, nil
}

func (s *tupleStrategy) Reify(t strategy.Template) (any, error) {
	fields, err := s.fields(t)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(fields))
	for i, c := range s.children {
		v, err := c.Reify(fields[i])
		if err != nil {
			return nil, strategy.WrapChild(c.Descriptor(), err)
		}
		out[i] = v
	}
	return s.ctor(out), nil
}

func (s *tupleStrategy) Decompose(t strategy.Template) ([]strategy.Component, error) {
	fields, err := s.fields(t)
	if err != nil {
		return nil, err
	}
	out := make([]strategy.Component, len(fields))
	for i, c := range s.children {
		out[i] = strategy.Component{Descriptor: c.Descriptor(), Template: fields[i]}
	}
	return out, nil
}

// Simplify shrinks one position at a time, combining the N per-position
// generators with the mix-generators interleaver so no single position
// monopolizes the search (spec §4.2, §4.6).
func (s *tupleStrategy) Simplify(t strategy.Template) (iter.Seq[strategy.Template], error) {
	fields, err := s.fields(t)
	if err != nil {
		return nil, err
	}
	seqs := make([]iter.Seq[strategy.Template], len(s.children))
	for i, c := range s.children {
		inner, err := c.Simplify(fields[i])
		if err != nil {
			return nil, strategy.WrapChild(c.Descriptor(), err)
		}
		seqs[i] = replacingAt(fields, i, inner)
	}
	return strategy.Mix(seqs...), nil
}

// replacingAt returns a sequence that yields a copy of fields with
// position i replaced by each s from inner, in turn.
func replacingAt(fields []any, i int, inner iter.Seq[strategy.Template]) iter.Seq[strategy.Template] {
	return func(yield func(strategy.Template) bool) {
		for s := range inner {
			cp := make([]any, len(fields))
			copy(cp, fields)
			cp[i] = s
			if !yield(cp) {
				return
			}
		}
	}
}

func (s *tupleStrategy) ToBasic(t strategy.Template) (basic.Value, error) {
	fields, err := s.fields(t)
	if err != nil {
		return basic.Value{}, err
	}
	items := make([]basic.Value, len(fields))
	for i, c := range s.children {
		v, err := c.ToBasic(fields[i])
		if err != nil {
			return basic.Value{}, strategy.WrapChild(c.Descriptor(), err)
		}
		items[i] = v
	}
	return basic.NewSeq(items...), nil
}

func (s *tupleStrategy) FromBasic(v basic.Value) (strategy.Template, error) {
	items, ok := v.Items()
	if !ok || len(items) != len(s.children) {
		return nil, &strategy.InvalidDataError{Descriptor: s.desc, Reason: "expected a list of length matching the tuple's arity"}
	}
	out := make([]any, len(items))
	for i, c := range s.children {
		t, err := c.FromBasic(items[i])
		if err != nil {
			return nil, strategy.WrapChild(c.Descriptor(), err)
		}
		out[i] = t
	}
	return out, nil
}
