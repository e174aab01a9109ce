package strategy

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapChildPassesNilThrough(t *testing.T) {
	if err := WrapChild(Leaf(stringLeaf("int")), nil); err != nil {
		t.Errorf("WrapChild(desc, nil) = %v, want nil", err)
	}
}

func TestWrapChildRecoversOriginalThroughNesting(t *testing.T) {
	leafDesc := Leaf(stringLeaf("int"))
	original := &InvalidDataError{Descriptor: leafDesc, Reason: "not an int"}

	outer := WrapChild(Tuple(""), WrapChild(List(leafDesc), original))

	var cfe *ChildFailureError
	if !errors.As(outer, &cfe) {
		t.Fatalf("expected ChildFailureError, got %v", outer)
	}

	var recovered *InvalidDataError
	if !errors.As(outer, &recovered) {
		t.Fatalf("errors.As failed to recover InvalidDataError through nested ChildFailureError: %v", outer)
	}
	if recovered != original {
		t.Errorf("recovered %v, want the original %v", recovered, original)
	}
}

func TestChildFailureErrorUnwrap(t *testing.T) {
	inner := &InvalidTemplateError{Descriptor: Leaf(stringLeaf("int")), Reason: "negative"}
	outer := &ChildFailureError{Child: Leaf(stringLeaf("int")), Err: inner}
	if outer.Unwrap() != inner {
		t.Errorf("Unwrap() = %v, want %v", outer.Unwrap(), inner)
	}
}

func TestErrorMessagesMentionDescriptor(t *testing.T) {
	desc := Leaf(stringLeaf("int"))
	cases := []error{
		&InvalidDataError{Descriptor: desc, Reason: "bad shape"},
		&InvalidTemplateError{Descriptor: desc, Reason: "out of range"},
	}
	for _, err := range cases {
		if got := err.Error(); !strings.Contains(got, desc.String()) {
			t.Errorf("%T.Error() = %q, want it to mention %q", err, got, desc.String())
		}
	}
}
