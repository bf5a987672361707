// Package walkthrough narrates the menagerie to a writer. It builds one
// instance of every record, mutates them through their accessors, and prints
// the derived descriptions as sentences. The exact wording of the narration
// is illustrative; the description fragments embedded in it come straight
// from the records.
package walkthrough

import (
	"fmt"
	"io"

	"menagerie/pkg/taxonomy"
)

// Options select the construction overrides used in the docked-dog scene.
type Options struct {
	DockedName string
	DockedLegs int
	DockedTail bool
}

// DefaultOptions returns the classic three-legged, tail-docked dog.
func DefaultOptions() Options {
	return Options{DockedName: "Fido", DockedLegs: 3, DockedTail: false}
}

// Run writes the full narration to w.
func Run(w io.Writer, opts Options) {
	dogs(w, opts)
	reptiles(w)
	snakes(w)
	outsiders(w)
}

func dogs(w io.Writer, opts Options) {
	george := taxonomy.NewDog("George")
	fmt.Fprintf(w, "Speak %s!\n", george.Name())
	george.Speak(w)
	fmt.Fprintf(w, "%s has %d legs and %s a tail\n\n", george.Name(), george.Legs(), george.TailDescription())

	docked := taxonomy.NewDog(opts.DockedName,
		taxonomy.WithLegs(opts.DockedLegs),
		taxonomy.WithTail(opts.DockedTail))
	fmt.Fprintf(w, "Speak %s!\n", docked.Name())
	docked.Speak(w)
	docked.Speak(w)
	fmt.Fprintf(w, "%s has %d legs and %s a tail\n\n", docked.Name(), docked.Legs(), docked.TailDescription())
}

func reptiles(w io.Writer) {
	croc := taxonomy.NewReptile(4)
	fmt.Fprintf(w, "A croc has %d legs, %s a tail and %s scales\n", croc.Legs(), croc.TailDescription(), croc.ScaleDescription())

	gecko := taxonomy.NewLizard(4)
	fmt.Fprintf(w, "A gecko has %d legs, %s a tail and %s scales\n\n", gecko.Legs(), gecko.TailDescription(), gecko.ScaleDescription())
}

func snakes(w io.Writer) {
	rattlesnake := taxonomy.NewSnake()
	rattlesnake.SetVenom(true)
	fmt.Fprintf(w, "A rattlesnake has %d legs, %s a tail, %s scales, and %s venomous\n",
		rattlesnake.Legs(), rattlesnake.TailDescription(), rattlesnake.ScaleDescription(), rattlesnake.VenomDescription())

	cornsnake := taxonomy.NewSnake()
	cornsnake.SetScales(false)
	fmt.Fprintf(w, "A cornsnake has %d legs, %s a tail, %s scales, and %s venomous\n\n",
		cornsnake.Legs(), cornsnake.TailDescription(), cornsnake.ScaleDescription(), cornsnake.VenomDescription())

	fmt.Fprintf(w, "Whether a cornsnake eats is %s\n", eatsWord(cornsnake.Eats))
	cornsnake.Eats = boolPtr(true)
	fmt.Fprintf(w, "A cornsnake eats: %s\n", eatsWord(cornsnake.Eats))

	cornsnake.SetTail(false)
	fmt.Fprintf(w, "A cornsnake without a tail %s because it is only a head\n", cornsnake.TailDescription())
	fmt.Fprintf(w, "A living cornsnake %s a tail\n", cornsnake.ParentTailDescription())

	cornsnake.Eats = boolPtr(false)
	fmt.Fprintf(w, "A cornsnake can eat after it dies: %s\n\n", eatsWord(cornsnake.Eats))

	fmt.Fprintf(w, "A cornsnake is multicellular: %t\n\n", cornsnake.Multicellular())
}

func outsiders(w io.Writer) {
	unknown := taxonomy.NewOrganism(6, false)
	fmt.Fprintf(w, "I'm not sure what kind of animal has %d legs and %s a tail!\n", unknown.Legs(), unknown.TailDescription())
	unknown.Eats = boolPtr(true)
	fmt.Fprintf(w, "At least it is %s that it eats, and %t that it is multicellular\n\n", eatsWord(unknown.Eats), unknown.Multicellular())

	strep := taxonomy.NewBacterium()
	fmt.Fprintf(w, "Streptococcus is multicellular: %t\n", strep.Multicellular())
}

// eatsWord renders the three-state feeding flag, keeping the unset case
// visibly different from both booleans.
func eatsWord(eats *bool) string {
	if eats == nil {
		return "unrecorded"
	}
	if *eats {
		return "true"
	}
	return "false"
}

func boolPtr(v bool) *bool { return &v }
