package composite

import (
	"testing"

	"github.com/dshills/gohyp/pkg/basic"
	"github.com/dshills/gohyp/pkg/leaf"
	"github.com/dshills/gohyp/pkg/strategy"
)

// TestTupleOfIntsShrink is the literal S1 scenario: descriptor
// tuple(int, int), template (7, 3). Simplify must change one position at
// a time, preserve length 2, and never re-emit the input.
func TestTupleOfIntsShrink(t *testing.T) {
	intStrat := leaf.Int(-100, 100)
	tuple := NewTuple([]strategy.Strategy{intStrat, intStrat}, "", nil)

	template := []any{int64(7), int64(3)}
	seq, err := tuple.Simplify(template)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}

	sawPos0Change := false
	sawPos1Change := false
	for cand := range seq {
		fields := cand.([]any)
		if len(fields) != 2 {
			t.Fatalf("candidate %v has length %d, want 2", cand, len(fields))
		}
		if fields[0] == int64(7) && fields[1] == int64(3) {
			t.Fatalf("Simplify re-emitted the input %v", cand)
		}
		if fields[0] != int64(7) && fields[1] == int64(3) {
			sawPos0Change = true
		}
		if fields[0] == int64(7) && fields[1] != int64(3) {
			sawPos1Change = true
		}
	}
	if !sawPos0Change || !sawPos1Change {
		t.Errorf("expected shrinks changing each position independently; pos0=%v pos1=%v", sawPos0Change, sawPos1Change)
	}
}

func TestTupleDecomposeMatchesReify(t *testing.T) {
	intStrat := leaf.Int(0, 10)
	boolStrat := leaf.Bool()
	tuple := NewTuple([]strategy.Strategy{intStrat, boolStrat}, "", nil)

	template := []any{int64(4), true}
	comps, err := tuple.Decompose(template)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	if len(comps) != 2 {
		t.Fatalf("Decompose returned %d components, want 2", len(comps))
	}

	reified, err := tuple.Reify(template)
	if err != nil {
		t.Fatalf("Reify: %v", err)
	}
	fields := reified.([]any)
	if fields[0] != int64(4) || fields[1] != true {
		t.Fatalf("Reify = %v, want [4, true]", fields)
	}
	if comps[0].Template != int64(4) || comps[1].Template != true {
		t.Fatalf("Decompose components = %v, want templates matching reify", comps)
	}
}

func TestTupleBasicRoundTrip(t *testing.T) {
	intStrat := leaf.Int(-50, 50)
	tuple := NewTuple([]strategy.Strategy{intStrat, intStrat, intStrat}, "", nil)

	template := []any{int64(1), int64(-2), int64(3)}
	bv, err := tuple.ToBasic(template)
	if err != nil {
		t.Fatalf("ToBasic: %v", err)
	}
	back, err := tuple.FromBasic(bv)
	if err != nil {
		t.Fatalf("FromBasic: %v", err)
	}
	got := back.([]any)
	for i, want := range template {
		if got[i] != want {
			t.Fatalf("round-trip[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestTupleFromBasicRejectsWrongArity(t *testing.T) {
	intStrat := leaf.Int(0, 10)
	tuple := NewTuple([]strategy.Strategy{intStrat, intStrat}, "", nil)

	one, err := intStrat.ToBasic(int64(1))
	if err != nil {
		t.Fatalf("ToBasic: %v", err)
	}
	if _, err := tuple.FromBasic(basic.NewSeq(one)); err == nil {
		t.Fatal("expected an error for a 1-element basic tree against a 2-arity tuple")
	}
}
