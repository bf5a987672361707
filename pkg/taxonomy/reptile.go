package taxonomy

// Reptile is an organism with a scale flag. The leg count carries no default
// and must be supplied at construction.
type Reptile struct {
	Organism
	scales bool
}

// NewReptile constructs a reptile with the required leg count. The tail
// defaults to present; scales always start grown and can only change through
// SetScales.
func NewReptile(legs int, opts ...Option) *Reptile {
	legs, tail := applyOptions(legs, true, opts)
	return &Reptile{
		Organism: *NewOrganism(legs, tail),
		scales:   true,
	}
}

// ScaleDescription renders the scale flag with the same wording convention as
// TailDescription.
func (r *Reptile) ScaleDescription() string {
	if r.scales {
		return "has"
	}
	return "does not have"
}

// SetScales overwrites the scale flag.
func (r *Reptile) SetScales(hasScales bool) { r.scales = hasScales }

// Lizard behaves exactly like its parent kind and adds nothing; it is the
// same record under a second name.
type Lizard = Reptile

// NewLizard constructs a lizard. It delegates to NewReptile unchanged.
func NewLizard(legs int, opts ...Option) *Lizard {
	return NewReptile(legs, opts...)
}
