// Package composite implements the four container strategies — tuple,
// list, set, and fixed-keys map — that build a strategy over a
// structured value space out of child strategies (spec §4.2–§4.5).
// Register wires all four, plus the frozen-set variant of the set
// strategy, into a strategy.Registry.
package composite
