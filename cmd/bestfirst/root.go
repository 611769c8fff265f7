package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// globalFlags holds the flags shared by all subcommands.
type globalFlags struct {
	debug   bool
	config  string
	mermaid bool
}

func newRootCmd() *cobra.Command {
	var flags globalFlags
	cmd := &cobra.Command{
		Use:   "bestfirst",
		Short: "Solve search puzzles with A*",
		Long:  "bestfirst finds least-cost solutions to puzzles by best-first search\nover their state spaces.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
	}
	pf := cmd.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "Log search statistics to stderr")
	pf.StringVar(&flags.config, "config", "", "Path to YAML configuration file")
	pf.BoolVar(&flags.mermaid, "mermaid", false, "Print the solution path as a Mermaid flowchart")

	cmd.AddCommand(newMoleculeCmd(&flags))
	cmd.AddCommand(newWizardCmd(&flags))
	return cmd
}
