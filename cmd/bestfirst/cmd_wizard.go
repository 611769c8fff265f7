package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rogpeppe/bestfirst/mermaid"
	"github.com/rogpeppe/bestfirst/wizard"
)

type wizardFlags struct {
	file string
	hard bool
}

func newWizardCmd(global *globalFlags) *cobra.Command {
	var flags wizardFlags
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Find the least mana needed to defeat a boss",
		Long: "The boss is read from the input as \"Hit Points: N\" and \"Damage: N\" lines.\n" +
			"The player's starting stats and spells come from the wizard section of --config.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWizard(cmd, global, &flags)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.file, "file", "f", "", "Input file, or - for stdin (required)")
	f.BoolVar(&flags.hard, "hard", false, "Lose one hit point at the start of each player turn")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runWizard(cmd *cobra.Command, global *globalFlags, flags *wizardFlags) error {
	cfg, err := loadConfig(global.config)
	if err != nil {
		return err
	}
	text, err := readInput(cmd, flags.file)
	if err != nil {
		return err
	}
	boss, err := wizard.ParseBoss(text)
	if err != nil {
		return err
	}
	hard := cfg.Wizard.Hard
	if cmd.Flags().Changed("hard") {
		hard = flags.hard
	}
	rules := cfg.Wizard.Spells
	path, err := wizard.MinMana(cfg.Wizard.Player, boss, wizard.Options{
		Rules:  &rules,
		Hard:   hard,
		Logger: newLogger(cmd, global),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path.Cost())
	if !global.mermaid {
		return nil
	}
	return writeMermaid(cmd, mermaid.NewPath(path, mermaid.PathOptions[wizard.State, int]{
		NodeInfo: func(i int, s wizard.State) mermaid.NodeInfo {
			info := mermaid.NodeInfo{
				ID:   fmt.Sprintf("t%d", i),
				Text: s.String(),
			}
			if s.Boss.HP <= 0 {
				info.Style = "fill:#9f9"
			}
			return info
		},
		EdgeLabel: func(cost int) string {
			if sp, ok := rules.SpellByCost(cost); ok {
				return sp.Name
			}
			return ""
		},
	}))
}
