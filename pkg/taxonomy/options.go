package taxonomy

// Option overrides a defaultable construction value on records whose
// constructors supply averages for their kind.
type Option func(*construction)

type construction struct {
	legs *int
	tail *bool
}

// WithLegs overrides the default leg count.
func WithLegs(legs int) Option {
	return func(c *construction) { c.legs = &legs }
}

// WithTail overrides the default tail state.
func WithTail(hasTail bool) Option {
	return func(c *construction) { c.tail = &hasTail }
}

func applyOptions(legs int, tail bool, opts []Option) (int, bool) {
	var c construction
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.legs != nil {
		legs = *c.legs
	}
	if c.tail != nil {
		tail = *c.tail
	}
	return legs, tail
}
