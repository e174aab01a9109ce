package composite

import (
	"testing"

	"github.com/dshills/gohyp/pkg/leaf"
	"github.com/dshills/gohyp/pkg/strategy"
)

// TestEmptyListSimplifiesToNothing is the literal S2 scenario.
func TestEmptyListSimplifiesToNothing(t *testing.T) {
	intStrat := leaf.Int(0, 100)
	list := NewList(intStrat, []strategy.Descriptor{intStrat.Descriptor()}, 50.0)

	seq, err := list.Simplify([]any{})
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	for range seq {
		t.Fatal("Simplify(()) should yield nothing")
	}

	bv, err := list.ToBasic([]any{})
	if err != nil {
		t.Fatalf("ToBasic: %v", err)
	}
	if bv.Len() != 0 {
		t.Fatalf("ToBasic(()) = %v, want []", bv)
	}
	back, err := list.FromBasic(bv)
	if err != nil {
		t.Fatalf("FromBasic: %v", err)
	}
	if len(back.([]any)) != 0 {
		t.Fatalf("FromBasic([]) = %v, want ()", back)
	}
}

// TestSingletonListShrink is the literal S3 scenario: template (5,)
// first yields the empty tuple, then shrinks of 5 in singleton form.
func TestSingletonListShrink(t *testing.T) {
	intStrat := leaf.Int(0, 100)
	list := NewList(intStrat, nil, 50.0)

	seq, err := list.Simplify([]any{int64(5)})
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}

	var got [][]any
	for cand := range seq {
		got = append(got, cand.([]any))
	}
	if len(got) == 0 {
		t.Fatal("expected at least the empty-list shrink")
	}
	if len(got[0]) != 0 {
		t.Fatalf("first shrink = %v, want the empty list", got[0])
	}
	for _, g := range got[1:] {
		if len(g) != 1 {
			t.Fatalf("non-first shrink %v is not a singleton", g)
		}
		if g[0] == int64(5) {
			t.Fatalf("shrink re-emitted the original element")
		}
	}
}

// TestListWithDuplicateDeletionOrder is the literal S4 scenario:
// template (1, 2, 3) must shrink in the order: empty, three single
// deletions, element-wise shrinks, then two adjacent-pair deletions.
func TestListWithDuplicateDeletionOrder(t *testing.T) {
	intStrat := leaf.Int(0, 100)
	list := NewList(intStrat, nil, 50.0)

	template := []any{int64(1), int64(2), int64(3)}
	seq, err := list.Simplify(template)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}

	var got [][]any
	for cand := range seq {
		got = append(got, cand.([]any))
	}

	want := [][]any{
		{},
		{int64(2), int64(3)},
		{int64(1), int64(3)},
		{int64(1), int64(2)},
	}
	if len(got) < len(want) {
		t.Fatalf("got only %d candidates, want at least %d", len(got), len(want))
	}
	for i, w := range want {
		if !equalAnySlice(got[i], w) {
			t.Fatalf("candidate %d = %v, want %v", i, got[i], w)
		}
	}

	// The tail must contain the two adjacent-pair deletions, in order,
	// after every element-wise shrink has been yielded.
	tailStart := len(got) - 2
	if !equalAnySlice(got[tailStart], []any{int64(3)}) {
		t.Fatalf("second-to-last candidate = %v, want [3]", got[tailStart])
	}
	if !equalAnySlice(got[tailStart+1], []any{int64(1)}) {
		t.Fatalf("last candidate = %v, want [1]", got[tailStart+1])
	}
}

func equalAnySlice(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListProduceTemplateRespectsUnitDescriptor(t *testing.T) {
	list := NewList(nil, nil, 50.0)
	tmpl, err := list.ProduceTemplate(nil, nil)
	if err != nil {
		t.Fatalf("ProduceTemplate: %v", err)
	}
	if len(tmpl.([]any)) != 0 {
		t.Fatalf("unit list ProduceTemplate = %v, want empty", tmpl)
	}
}
