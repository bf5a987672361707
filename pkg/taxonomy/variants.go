package taxonomy

// Taxon is the capability shared by every record in the package, animal or
// not: a fixed answer to whether the kind is multicellular.
type Taxon interface {
	Multicellular() bool
}

// Animal is the closed capability set of the organism hierarchy: Organism,
// Dog, Reptile, Lizard and Snake. Bacterium deliberately does not satisfy it.
type Animal interface {
	Taxon
	Legs() int
	TailDescription() string
}

var (
	_ Animal = (*Organism)(nil)
	_ Animal = (*Dog)(nil)
	_ Animal = (*Reptile)(nil)
	_ Animal = (*Snake)(nil)
	_ Taxon  = Bacterium{}
)
