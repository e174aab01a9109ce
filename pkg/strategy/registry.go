package strategy

import (
	"fmt"
	"sync"
)

// Constructor builds a Strategy for a descriptor of the kind it was
// registered under. It is handed the registry itself so it can
// recursively build strategies for child descriptors by re-entering
// dispatch (spec §4.7).
type Constructor func(reg *Registry, d Descriptor, settings Settings) (Strategy, error)

// Registry maps descriptor kinds to strategy constructors, and tuple
// record names to their reification constructors (spec §4.7, §9
// "container-type preservation"). It supports open extension: new kinds
// and record constructors can be registered at any point before a
// strategy referencing them is built.
type Registry struct {
	mu         sync.RWMutex
	ctors      map[DescriptorKind]Constructor
	tupleCtors map[string]TupleConstructor
}

// NewRegistry returns an empty registry. Callers populate it by calling
// Register for each descriptor kind they support (the leaf layer
// registers KindLeaf; pkg/composite registers the five composite
// kinds: tuple, list, set, frozen set, and map).
func NewRegistry() *Registry {
	return &Registry{
		ctors:      make(map[DescriptorKind]Constructor),
		tupleCtors: make(map[string]TupleConstructor),
	}
}

// Register associates a descriptor kind with the constructor that
// builds strategies for it. Registering the same kind twice replaces
// the previous constructor.
func (r *Registry) Register(kind DescriptorKind, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[kind] = ctor
}

// RegisterRecordConstructor associates a named-record name with the
// TupleConstructor that packs positional fields into that record type,
// so a tuple descriptor carrying RecordName() == name can be built by
// Build without the descriptor itself holding a closure.
func (r *Registry) RegisterRecordConstructor(name string, ctor TupleConstructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tupleCtors[name] = ctor
}

// RecordConstructor looks up a previously registered named-record
// constructor.
func (r *Registry) RecordConstructor(name string) (TupleConstructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.tupleCtors[name]
	return ctor, ok
}

// Build recursively constructs the strategy named by d, dispatching on
// d.Kind() to the registered Constructor.
func (r *Registry) Build(d Descriptor, settings Settings) (Strategy, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[d.Kind()]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("strategy: no constructor registered for kind %s", d.Kind())
	}
	s, err := ctor(r, d, settings)
	if err != nil {
		return nil, fmt.Errorf("strategy: building %s: %w", d, err)
	}
	return s, nil
}
