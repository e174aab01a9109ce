// Package leaf is a minimal reference implementation of the primitive
// strategies the core assumes exist (spec §6): Int, Bool, and
// ASCIIString. It exists to exercise pkg/composite end to end, not as a
// general-purpose numeric or string generation system.
package leaf
