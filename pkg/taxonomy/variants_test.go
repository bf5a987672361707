package taxonomy

import "testing"

// Every member of the animal hierarchy answers the shared capability set the
// same way regardless of which variant backs the interface value.
func TestAnimalVariants(t *testing.T) {
	cases := []struct {
		name     string
		animal   Animal
		wantLegs int
		wantTail string
	}{
		{name: "organism", animal: NewOrganism(6, false), wantLegs: 6, wantTail: "does not have"},
		{name: "dog", animal: NewDog("George"), wantLegs: 4, wantTail: "has"},
		{name: "reptile", animal: NewReptile(4), wantLegs: 4, wantTail: "has"},
		{name: "lizard", animal: NewLizard(4), wantLegs: 4, wantTail: "has"},
		{name: "snake", animal: NewSnake(), wantLegs: 0, wantTail: "is mostly"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.animal.Multicellular() {
				t.Fatal("animal variants must report multicellular")
			}
			if got := tc.animal.Legs(); got != tc.wantLegs {
				t.Fatalf("legs: want %d, got %d", tc.wantLegs, got)
			}
			if got := tc.animal.TailDescription(); got != tc.wantTail {
				t.Fatalf("tail description: want %q, got %q", tc.wantTail, got)
			}
		})
	}
}
