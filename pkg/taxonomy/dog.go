package taxonomy

import (
	"fmt"
	"io"
)

const dogSound = "woof"

// Dog is an organism with a name and a fixed sound label. The label has no
// accessor; it is only ever emitted by Speak.
type Dog struct {
	Organism
	name  string
	sound string
}

// NewDog constructs a dog with the given name. The leg count defaults to 4
// and the tail to present unless overridden.
func NewDog(name string, opts ...Option) *Dog {
	legs, tail := applyOptions(4, true, opts)
	return &Dog{
		Organism: *NewOrganism(legs, tail),
		name:     name,
		sound:    dogSound,
	}
}

// Name returns the dog's name.
func (d *Dog) Name() string { return d.name }

// SetName overwrites the dog's name.
func (d *Dog) SetName(name string) { d.name = name }

// Speak writes the dog's sound label to w. Side effect only; the label itself
// stays private.
func (d *Dog) Speak(w io.Writer) {
	fmt.Fprintln(w, d.sound)
}
