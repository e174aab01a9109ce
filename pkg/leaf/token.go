package leaf

import "github.com/dshills/gohyp/pkg/strategy"

// Token is the LeafDescriptor implementation for this package's
// primitives: a bare name, compared by value.
type Token string

// Equal implements strategy.LeafDescriptor.
func (t Token) Equal(other strategy.LeafDescriptor) bool {
	o, ok := other.(Token)
	return ok && o == t
}

// String implements strategy.LeafDescriptor.
func (t Token) String() string { return string(t) }
