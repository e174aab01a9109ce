package strategy

import "fmt"

// InvalidDataError is returned by FromBasic when the basic tree's shape
// does not match what the strategy expects (wrong kind, wrong length
// for a tuple or map). It is recoverable: the caller should discard the
// candidate and move on.
type InvalidDataError struct {
	Descriptor Descriptor
	Reason     string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("strategy %s: invalid data: %s", e.Descriptor, e.Reason)
}

// InvalidTemplateError is returned by Simplify, Reify, or ToBasic when
// called on a template that violates the owning strategy's invariants.
// This indicates a programmer error upstream; the caller should abort
// the run with the diagnostic rather than try to recover.
type InvalidTemplateError struct {
	Descriptor Descriptor
	Reason     string
}

func (e *InvalidTemplateError) Error() string {
	return fmt.Sprintf("strategy %s: invalid template: %s", e.Descriptor, e.Reason)
}

// ChildFailureError wraps an InvalidDataError or InvalidTemplateError
// (or another ChildFailureError) raised by a child strategy during a
// compositional operation, annotating it with the child's descriptor so
// the failure can be traced back through nested containers.
type ChildFailureError struct {
	Child Descriptor
	Err   error
}

func (e *ChildFailureError) Error() string {
	return fmt.Sprintf("strategy: child %s failed: %v", e.Child, e.Err)
}

// Unwrap exposes the underlying error so errors.As/errors.Is can recover
// the original InvalidDataError or InvalidTemplateError through any
// number of nested ChildFailureError layers.
func (e *ChildFailureError) Unwrap() error { return e.Err }

// WrapChild annotates a non-nil error raised by a child strategy with
// the child's descriptor. It returns nil unchanged so call sites can
// write `return WrapChild(childDesc, err)` unconditionally.
func WrapChild(child Descriptor, err error) error {
	if err == nil {
		return nil
	}
	return &ChildFailureError{Child: child, Err: err}
}
