package composite

import (
	"math/rand"
	"testing"

	"github.com/dshills/gohyp/pkg/leaf"
	"github.com/dshills/gohyp/pkg/strategy"
	"pgregory.net/rapid"
)

type fixedSettings float64

func (s fixedSettings) AverageListLength() float64 { return float64(s) }

func newTestRegistry() *strategy.Registry {
	reg := strategy.NewRegistry()
	Register(reg)
	reg.Register(strategy.KindLeaf, func(r *strategy.Registry, d strategy.Descriptor, s strategy.Settings) (strategy.Strategy, error) {
		switch d.LeafToken().String() {
		case "int":
			return leaf.Int(-1000, 1000), nil
		case "bool":
			return leaf.Bool(), nil
		default:
			return leaf.ASCIIString(16), nil
		}
	})
	return reg
}

func TestRegistryBuildsNestedTupleOfList(t *testing.T) {
	reg := newTestRegistry()
	intDesc := strategy.Leaf(leaf.Token("int"))
	desc := strategy.Tuple("", intDesc, strategy.List(intDesc))

	s, err := reg.Build(desc, fixedSettings(10))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	r := rand.New(rand.NewSource(5))
	pv := s.Parameter().Draw(r)
	tmpl, err := s.ProduceTemplate(r, pv)
	if err != nil {
		t.Fatalf("ProduceTemplate: %v", err)
	}
	if _, err := s.Reify(tmpl); err != nil {
		t.Fatalf("Reify: %v", err)
	}
}

// TestBasicRoundTripAcrossComposites is spec §8 property 1 for every
// composite kind this package implements.
func TestBasicRoundTripAcrossComposites(t *testing.T) {
	reg := newTestRegistry()
	intDesc := strategy.Leaf(leaf.Token("int"))
	descs := []strategy.Descriptor{
		strategy.Tuple("", intDesc, intDesc),
		strategy.List(intDesc),
		strategy.Set(intDesc),
		strategy.FrozenSet(intDesc),
		strategy.Map(map[string]strategy.Descriptor{"a": intDesc, "b": intDesc}),
	}

	rapid.Check(t, func(rt *rapid.T) {
		desc := descs[rapid.IntRange(0, len(descs)-1).Draw(rt, "desc")]
		s, err := reg.Build(desc, fixedSettings(8))
		if err != nil {
			rt.Fatalf("Build: %v", err)
		}
		r := rand.New(rand.NewSource(rapid.Uint64().Draw(rt, "seed")))
		pv := s.Parameter().Draw(r)
		tmpl, err := s.ProduceTemplate(r, pv)
		if err != nil {
			rt.Fatalf("ProduceTemplate: %v", err)
		}
		bv, err := s.ToBasic(tmpl)
		if err != nil {
			rt.Fatalf("ToBasic: %v", err)
		}
		back, err := s.FromBasic(bv)
		if err != nil {
			rt.Fatalf("FromBasic: %v", err)
		}
		if strategy.CanonicalKey(back) != strategy.CanonicalKey(tmpl) {
			rt.Fatalf("round-trip mismatch: got %v, want %v", back, tmpl)
		}
	})
}

// TestSimplifyNeverReemitsInput is spec §8 property 3 across composites.
func TestSimplifyNeverReemitsInput(t *testing.T) {
	reg := newTestRegistry()
	intDesc := strategy.Leaf(leaf.Token("int"))
	descs := []strategy.Descriptor{
		strategy.Tuple("", intDesc, intDesc, intDesc),
		strategy.List(intDesc),
		strategy.Set(intDesc),
	}

	rapid.Check(t, func(rt *rapid.T) {
		desc := descs[rapid.IntRange(0, len(descs)-1).Draw(rt, "desc")]
		s, err := reg.Build(desc, fixedSettings(6))
		if err != nil {
			rt.Fatalf("Build: %v", err)
		}
		r := rand.New(rand.NewSource(rapid.Uint64().Draw(rt, "seed")))
		pv := s.Parameter().Draw(r)
		tmpl, err := s.ProduceTemplate(r, pv)
		if err != nil {
			rt.Fatalf("ProduceTemplate: %v", err)
		}
		seq, err := s.Simplify(tmpl)
		if err != nil {
			rt.Fatalf("Simplify: %v", err)
		}
		inputKey := strategy.CanonicalKey(tmpl)
		count := 0
		for cand := range seq {
			if strategy.CanonicalKey(cand) == inputKey {
				rt.Fatalf("Simplify re-emitted the input %v", tmpl)
			}
			count++
			if count > 10000 {
				rt.Fatalf("Simplify did not terminate within 10000 candidates")
			}
		}
	})
}

// TestDecomposeMatchesReifyForTuple is spec §8 property 5, checked on a
// registry-built tuple of ints.
func TestDecomposeMatchesReifyForTuple(t *testing.T) {
	reg := newTestRegistry()
	intDesc := strategy.Leaf(leaf.Token("int"))
	desc := strategy.Tuple("", intDesc, intDesc)

	s, err := reg.Build(desc, fixedSettings(5))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	r := rand.New(rand.NewSource(11))
	pv := s.Parameter().Draw(r)
	tmpl, err := s.ProduceTemplate(r, pv)
	if err != nil {
		t.Fatalf("ProduceTemplate: %v", err)
	}
	comps, err := s.Decompose(tmpl)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	reified, err := s.Reify(tmpl)
	if err != nil {
		t.Fatalf("Reify: %v", err)
	}
	fields := reified.([]any)
	for i, c := range comps {
		child, err := reg.Build(c.Descriptor, fixedSettings(5))
		if err != nil {
			t.Fatalf("Build child: %v", err)
		}
		v, err := child.Reify(c.Template)
		if err != nil {
			t.Fatalf("Reify child: %v", err)
		}
		if v != fields[i] {
			t.Fatalf("decompose/reify mismatch at %d: %v != %v", i, v, fields[i])
		}
	}
}

// TestSizeBoundsAreOrdered is spec §8 property 6.
func TestSizeBoundsAreOrdered(t *testing.T) {
	reg := newTestRegistry()
	intDesc := strategy.Leaf(leaf.Token("int"))
	descs := []strategy.Descriptor{
		strategy.Tuple("", intDesc, intDesc),
		strategy.List(intDesc),
		strategy.Set(intDesc),
		strategy.Map(map[string]strategy.Descriptor{"a": intDesc}),
	}
	for _, d := range descs {
		s, err := reg.Build(d, fixedSettings(5))
		if err != nil {
			t.Fatalf("Build(%s): %v", d, err)
		}
		if s.SizeLowerBound() > s.SizeUpperBound() {
			t.Errorf("%s: SizeLowerBound() %d > SizeUpperBound() %d", d, s.SizeLowerBound(), s.SizeUpperBound())
		}
		if s.SizeLowerBound() < 1 {
			t.Errorf("%s: SizeLowerBound() %d < 1", d, s.SizeLowerBound())
		}
	}
}
