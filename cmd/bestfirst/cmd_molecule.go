package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rogpeppe/bestfirst/mermaid"
	"github.com/rogpeppe/bestfirst/molecule"
)

type moleculeFlags struct {
	file  string
	part  int
	exact bool
}

func newMoleculeCmd(global *globalFlags) *cobra.Command {
	var flags moleculeFlags
	cmd := &cobra.Command{
		Use:   "molecule",
		Short: "Find the fewest replacements that build a molecule",
		Long: "Part 1 counts the distinct molecules one replacement away from the target.\n" +
			"Part 2 finds the fewest replacements that build the target from \"e\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMolecule(cmd, global, &flags)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.file, "file", "f", "", "Input file, or - for stdin (required)")
	f.IntVar(&flags.part, "part", 2, "Puzzle part: 1 (calibrate) or 2 (fewest steps)")
	f.BoolVar(&flags.exact, "exact", false, "Search every replacement position for a guaranteed minimum")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runMolecule(cmd *cobra.Command, global *globalFlags, flags *moleculeFlags) error {
	if flags.part != 1 && flags.part != 2 {
		return fmt.Errorf("invalid --part %d: must be 1 or 2", flags.part)
	}
	text, err := readInput(cmd, flags.file)
	if err != nil {
		return err
	}
	in, err := molecule.Parse(text)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if flags.part == 1 {
		n, err := molecule.Calibrate(in)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, n)
		return nil
	}
	path, sys, err := molecule.MinSteps(in, molecule.Options{
		Exact:  flags.exact,
		Logger: newLogger(cmd, global),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, path.Cost())
	if !global.mermaid {
		return nil
	}
	return writeMermaid(cmd, mermaid.NewPath(path, mermaid.PathOptions[molecule.Molecule, int]{
		NodeInfo: func(i int, m molecule.Molecule) mermaid.NodeInfo {
			return mermaid.NodeInfo{
				ID:   fmt.Sprintf("s%d", i),
				Text: sys.Decode(m),
			}
		},
	}))
}
