// Package seed provides deterministic derivation of per-session random
// sources from a single master seed, adapted from the dungeon
// generator's stage-seed derivation. Where that package derived one RNG
// per pipeline stage, this one derives one *rand.Rand per (property
// name, descriptor) pair, so that re-running a session with the same
// master seed reproduces the same draws and the same shrink search.
package seed
