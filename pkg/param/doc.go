// Package param implements the random-draw configuration layer that
// sits below every strategy.
//
// A Parameter is a distribution descriptor — exponential, uniform-float,
// or a composite of other parameters — not a drawn value. Drawing from a
// composite parameter draws each of its components independently, which
// is what lets gohyp bias a whole session of template draws by sampling
// the parameter once and reusing it: a strategy's Parameter() is sampled
// a single time per test run, and the resulting Value is threaded into
// many subsequent ProduceTemplate calls.
package param
