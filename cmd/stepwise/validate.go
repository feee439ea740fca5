package main

import (
	"fmt"

	"github.com/mark3labs/stepwise/internal/definition"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition.yml>...",
	Short: "Check wizard definition files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		def, err := definition.Load(path)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", err)
			continue
		}
		if err := def.Validate(); err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s:\n%v\n", path, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %s (%d pages)\n", path, def.Title, len(def.Pages))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d definitions invalid", failed, len(args))
	}
	return nil
}
