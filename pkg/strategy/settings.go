package strategy

// Settings is the one external collaborator the core reads from (spec
// §6). A concrete, YAML-backed implementation lives in pkg/config;
// anything satisfying this single-method interface can stand in for
// tests.
type Settings interface {
	// AverageListLength is the mean of the list-length exponential
	// (spec §4.3). Implementations default this to 50.0.
	AverageListLength() float64
}
