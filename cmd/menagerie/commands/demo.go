package commands

import (
	"os"

	"github.com/spf13/cobra"

	"menagerie/internal/printer"
	"menagerie/internal/walkthrough"
)

var (
	demoDockedName string
	demoDockedLegs int
	demoDockedTail bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Narrate the menagerie walkthrough",
	Long: `Construct one of every record in the taxonomy, mutate them through their
accessors, and print the derived descriptions as sentences.

The docked-dog scene demonstrates constructor overrides; its name, leg count
and tail state can be changed with flags.`,
	RunE: runDemo,
}

func init() {
	defaults := walkthrough.DefaultOptions()
	demoCmd.Flags().StringVar(&demoDockedName, "docked-name", defaults.DockedName, "Name of the override-constructed dog")
	demoCmd.Flags().IntVar(&demoDockedLegs, "docked-legs", defaults.DockedLegs, "Leg count of the override-constructed dog")
	demoCmd.Flags().BoolVar(&demoDockedTail, "docked-tail", defaults.DockedTail, "Tail state of the override-constructed dog")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	printer.Heading("The menagerie walkthrough\n\n")
	walkthrough.Run(os.Stdout, walkthrough.Options{
		DockedName: demoDockedName,
		DockedLegs: demoDockedLegs,
		DockedTail: demoDockedTail,
	})
	printer.Success("walkthrough complete\n")
	return nil
}
