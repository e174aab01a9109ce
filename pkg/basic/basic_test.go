package basic

import "testing"

func TestEqualAcrossKinds(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same int", NewInt(3), NewInt(3), true},
		{"different int", NewInt(3), NewInt(4), false},
		{"int vs float", NewInt(3), NewFloat(3.0), false},
		{"same seq", NewSeq(NewInt(1), NewString("x")), NewSeq(NewInt(1), NewString("x")), true},
		{"seq order matters", NewSeq(NewInt(1), NewInt(2)), NewSeq(NewInt(2), NewInt(1)), false},
		{"seq length differs", NewSeq(NewInt(1)), NewSeq(NewInt(1), NewInt(2)), false},
		{"nested seq", NewSeq(NewSeq(NewInt(1))), NewSeq(NewSeq(NewInt(1))), true},
		{"null equals null", NewNull(), NewNull(), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Equal(c.a, c.b); got != c.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestItemsIsDefensiveCopy(t *testing.T) {
	v := NewSeq(NewInt(1), NewInt(2))
	items, ok := v.Items()
	if !ok {
		t.Fatal("expected Seq items")
	}
	items[0] = NewInt(99)

	again, _ := v.Items()
	if got, _ := again[0].Int(); got != 1 {
		t.Errorf("mutating returned slice affected the Value: got %d, want 1", got)
	}
}

func TestAccessorsReportWrongKind(t *testing.T) {
	v := NewString("hi")
	if _, ok := v.Int(); ok {
		t.Error("Int() should report ok=false for a String value")
	}
	if _, ok := v.Items(); ok {
		t.Error("Items() should report ok=false for a String value")
	}
	if v.Len() != 0 {
		t.Error("Len() on non-Seq should be 0")
	}
}

func TestStringRendering(t *testing.T) {
	v := NewSeq(NewInt(1), NewString("a"), NewNull())
	want := `[1, "a", null]`
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
