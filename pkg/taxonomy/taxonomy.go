// Package taxonomy defines the organism records that make up the teaching
// menagerie: a shared base record, the Dog and Reptile branches, and the
// standalone Bacterium. Each record stores raw flags and exposes derived
// sentence fragments through accessor pairs; the wording is never stored.
package taxonomy

// Organism contains the attributes shared by every animal record. Leg count
// and tail state are always initialized at construction; Eats is deliberately
// left nil until a caller records a feeding observation.
type Organism struct {
	legs int
	tail bool

	// Eats reports whether the organism has been observed eating. A nil
	// value means the question has never been answered, which is distinct
	// from an explicit false.
	Eats *bool
}

// NewOrganism constructs a base record with the supplied leg count and tail
// state.
func NewOrganism(legs int, hasTail bool) *Organism {
	return &Organism{legs: legs, tail: hasTail}
}

// Legs returns the current leg count.
func (o *Organism) Legs() int { return o.legs }

// SetLegs overwrites the leg count.
func (o *Organism) SetLegs(legs int) { o.legs = legs }

// TailDescription renders the tail flag as a sentence fragment: "has" while
// the organism keeps a tail, "does not have" otherwise.
func (o *Organism) TailDescription() string {
	if o.tail {
		return "has"
	}
	return "does not have"
}

// SetTail overwrites the tail flag.
func (o *Organism) SetTail(hasTail bool) { o.tail = hasTail }

// Multicellular reports the cell-structure constant shared by the whole
// animal hierarchy. It is fixed for the lifetime of every record.
func (o *Organism) Multicellular() bool { return true }
