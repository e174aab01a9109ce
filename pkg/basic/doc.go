// Package basic implements the neutral serialization tree that every
// strategy in gohyp converts templates to and from.
//
// A basic Value is one of four primitive node kinds — integer,
// floating-point, string, or an ordered sequence of basic values — plus
// a null marker for leaf strategies that need to represent absence.
// Nothing else is ever serialized: composite strategies build their
// basic form entirely out of these four shapes (§6 of the design doc),
// which keeps the representation simple enough to hand to any
// self-describing document encoder (JSON, YAML, CBOR, ...) without this
// package needing to know about any of them.
package basic
