package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "menagerie",
	Short: "Menagerie - a guided tour through a small organism taxonomy",
	Long: `Menagerie models a small taxonomy of organisms: a shared base record,
dogs, the reptile family (reptiles, lizards, snakes), and a standalone
bacterium. Records expose their raw flags only through accessor pairs that
derive human-readable descriptions.

The demo command walks through every record, mutating it along the way.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
