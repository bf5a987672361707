package taxonomy

// Snake is a reptile with a venom flag and its own tail flag shadowing the
// organism-level one. The two tail flags are maintained independently.
type Snake struct {
	Reptile
	venom bool
	tail  bool
}

// NewSnake constructs a snake. The leg count defaults to 0 unless overridden.
// The snake's own tail flag always starts true and the reptile chain always
// receives a present tail, ignoring any WithTail option; the two flags can
// only diverge through SetTail afterwards.
func NewSnake(opts ...Option) *Snake {
	legs, _ := applyOptions(0, true, opts)
	return &Snake{
		Reptile: *NewReptile(legs, WithTail(true)),
		tail:    true,
	}
}

// VenomDescription renders the venom flag: "is" when venomous, "is not"
// otherwise. Note the inverted order relative to the tail and scale wording.
func (s *Snake) VenomDescription() string {
	if s.venom {
		return "is"
	}
	return "is not"
}

// SetVenom overwrites the venom flag.
func (s *Snake) SetVenom(hasVenom bool) { s.venom = hasVenom }

// TailDescription overrides the organism wording with snake-specific phrasing
// driven by the snake's own tail flag: "is mostly" while the tail is present,
// "must be dead" once it is gone.
func (s *Snake) TailDescription() string {
	if s.tail {
		return "is mostly"
	}
	return "must be dead"
}

// SetTail overwrites the snake's own tail flag. The organism-level flag fixed
// at construction is left untouched.
func (s *Snake) SetTail(hasTail bool) { s.tail = hasTail }

// ParentTailDescription reports the organism-level wording for the
// organism-level flag, bypassing the snake override.
func (s *Snake) ParentTailDescription() string {
	return s.Reptile.TailDescription()
}
