package main

import (
	"fmt"

	"github.com/mark3labs/stepwise/internal/tui/wizard"
	"github.com/spf13/cobra"
)

var runFlags wizardFlags

var runCmd = &cobra.Command{
	Use:   "run <definition.yml>",
	Short: "Run a wizard in the terminal",
	Long: `Run a wizard in the terminal.

The definition file declares the wizard title, its buttons and its pages.
Use the arrow keys (or n/b) to move between pages, tab and enter to press
buttons, 1-9 to jump to a reachable step and esc to cancel.

Hooks from .stepwise.hooks.yml run on page load, commit, cancel and finish;
an on_commit hook that exits non-zero keeps the wizard on its page.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	addWizardFlags(runCmd, &runFlags)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(&runFlags)
	if err != nil {
		return err
	}

	inst, err := openInstance(cmd.Context(), args[0], cfg)
	if err != nil {
		return err
	}
	defer inst.Close()

	result, err := wizard.RunWizard(inst.wiz, wizard.Options{DataDir: cfg.DataDir})
	if err != nil {
		return err
	}

	switch {
	case result.Finished:
		fmt.Fprintf(cmd.OutOrStdout(), "%s finished\n", inst.def.Title)
	case result.Cancelled:
		fmt.Fprintf(cmd.OutOrStdout(), "%s cancelled on %s\n", inst.def.Title, result.PageID)
	}
	return nil
}
