package strategy

import "testing"

func TestCanonicalKeyIsStableAndOrderSensitive(t *testing.T) {
	a := []any{1, "x", []any{true}}
	b := []any{1, "x", []any{true}}
	if CanonicalKey(a) != CanonicalKey(b) {
		t.Error("identical structures should produce the same key")
	}

	c := []any{"x", 1, []any{true}}
	if CanonicalKey(a) == CanonicalKey(c) {
		t.Error("differently-ordered structures should produce different keys")
	}
}

func TestCanonicalKeyDistinguishesKinds(t *testing.T) {
	if CanonicalKey(1) == CanonicalKey("1") {
		t.Error("an int and a string with the same text should not collide")
	}
	if CanonicalKey(1.0) == CanonicalKey(1) {
		t.Error("a float and an int should not collide")
	}
}

func TestSortAndDedupDeterministicAndDeduplicated(t *testing.T) {
	items := []Template{3, 1, 2, 1, 3}
	got := SortAndDedup(items)
	want := []Template{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("SortAndDedup(%v) = %v, want %v", items, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortAndDedup(%v) = %v, want %v", items, got, want)
		}
	}
}

func TestSortAndDedupIsDeterministicAcrossInsertionOrder(t *testing.T) {
	a := SortAndDedup([]Template{"b", "a", "c"})
	b := SortAndDedup([]Template{"c", "b", "a"})
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("order differs despite equal sets: %v vs %v", a, b)
		}
	}
}
