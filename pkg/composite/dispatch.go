package composite

import "github.com/dshills/gohyp/pkg/strategy"

// averageListLength reads the settings field the list strategy needs,
// falling back to the documented default when settings is nil (spec §6
// "average_list_length, defaulting to 50.0"); a non-nil settings value
// is used as it is.
func averageListLength(settings strategy.Settings) float64 {
	const defaultAverageListLength = 50.0
	if settings == nil {
		return defaultAverageListLength
	}
	return settings.AverageListLength()
}

// buildChildren recursively builds a strategy for every descriptor in
// descs via the registry (spec §4.7 "re-entering dispatch").
func buildChildren(reg *strategy.Registry, descs []strategy.Descriptor, settings strategy.Settings) ([]strategy.Strategy, error) {
	out := make([]strategy.Strategy, len(descs))
	for i, d := range descs {
		s, err := reg.Build(d, settings)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// union collapses a set of child strategies into the single element
// strategy list/set/frozenset strategies need: nil for zero children
// (the unit descriptor), the lone child for one, or a one_of_strategies
// combinator otherwise (spec §4.3, §4.4, §6).
func union(children []strategy.Strategy) (strategy.Strategy, error) {
	switch len(children) {
	case 0:
		return nil, nil
	case 1:
		return children[0], nil
	default:
		return strategy.OneOf(children...)
	}
}

func buildTuple(reg *strategy.Registry, d strategy.Descriptor, settings strategy.Settings) (strategy.Strategy, error) {
	children, err := buildChildren(reg, d.Children(), settings)
	if err != nil {
		return nil, err
	}
	ctor := strategy.TupleConstructor(plainTuple)
	if name := d.RecordName(); name != "" {
		found, ok := reg.RecordConstructor(name)
		if !ok {
			return nil, &strategy.InvalidTemplateError{Descriptor: d, Reason: "no record constructor registered for " + name}
		}
		ctor = found
	}
	return NewTuple(children, d.RecordName(), ctor), nil
}

func buildList(reg *strategy.Registry, d strategy.Descriptor, settings strategy.Settings) (strategy.Strategy, error) {
	children, err := buildChildren(reg, d.Children(), settings)
	if err != nil {
		return nil, err
	}
	element, err := union(children)
	if err != nil {
		return nil, err
	}
	return NewList(element, d.Children(), averageListLength(settings)), nil
}

func buildSet(reg *strategy.Registry, d strategy.Descriptor, settings strategy.Settings) (strategy.Strategy, error) {
	children, err := buildChildren(reg, d.Children(), settings)
	if err != nil {
		return nil, err
	}
	strategy.SortByDescriptorString(children)
	element, err := union(children)
	if err != nil {
		return nil, err
	}
	return NewSet(element, d.Children()), nil
}

func buildFrozenSet(reg *strategy.Registry, d strategy.Descriptor, settings strategy.Settings) (strategy.Strategy, error) {
	children, err := buildChildren(reg, d.Children(), settings)
	if err != nil {
		return nil, err
	}
	strategy.SortByDescriptorString(children)
	element, err := union(children)
	if err != nil {
		return nil, err
	}
	return NewFrozenSet(element, d.Children()), nil
}

func buildMap(reg *strategy.Registry, d strategy.Descriptor, settings strategy.Settings) (strategy.Strategy, error) {
	keys := d.Keys()
	fields := make(map[string]strategy.Descriptor, len(keys))
	children := make(map[string]strategy.Strategy, len(keys))
	for _, k := range keys {
		childDesc, _ := d.Field(k)
		fields[k] = childDesc
		childStrategy, err := reg.Build(childDesc, settings)
		if err != nil {
			return nil, err
		}
		children[k] = childStrategy
	}
	return NewMap(fields, children), nil
}

// Register wires the five composite descriptor kinds (tuple, list, set,
// frozen set, map) into reg.
func Register(reg *strategy.Registry) {
	reg.Register(strategy.KindTuple, buildTuple)
	reg.Register(strategy.KindList, buildList)
	reg.Register(strategy.KindSet, buildSet)
	reg.Register(strategy.KindFrozenSet, buildFrozenSet)
	reg.Register(strategy.KindMap, buildMap)
}
