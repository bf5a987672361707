package taxonomy

// Bacterium roots a hierarchy of its own. It shares the multicellularity
// concept with the animal records but none of their fields.
type Bacterium struct{}

// NewBacterium constructs a bacterium.
func NewBacterium() Bacterium { return Bacterium{} }

// Multicellular is fixed false: bacteria are single-celled.
func (Bacterium) Multicellular() bool { return false }
