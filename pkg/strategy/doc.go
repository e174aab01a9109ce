// Package strategy defines the strategy contract every generator in
// gohyp implements, the descriptor value-space vocabulary those
// strategies are built from, the dispatch registry that turns a
// descriptor into a strategy, the generator-mixing interleaver used
// while shrinking, and the three recoverable/fatal error kinds the
// contract can raise.
//
// The composite strategies themselves (tuple, list, set, fixed-keys
// map) live in the sibling pkg/composite package; this package only
// holds what every strategy — composite or leaf — has in common.
package strategy
