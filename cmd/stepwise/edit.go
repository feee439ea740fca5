package main

import (
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/aymanbagabas/go-udiff"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/stepwise/internal/definition"
	"github.com/mark3labs/stepwise/internal/tui/theme"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <definition.yml>",
	Short: "Edit a wizard definition in $EDITOR",
	Long: `Open a wizard definition in $EDITOR.

The edit is made on a temporary copy. When the editor exits the copy is
validated; a valid copy replaces the file and the change is printed as a
unified diff, an invalid copy is discarded with the validation errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	path := args[0]
	original, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading definition: %w", err)
	}

	tmpfile, err := os.CreateTemp("", "stepwise-*.yml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write(original); err != nil {
		_ = tmpfile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	_ = tmpfile.Close()

	editorCmd, err := editor.Command("stepwise", tmpfile.Name())
	if err != nil {
		return fmt.Errorf("failed to find editor: %w", err)
	}
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	edited, err := os.ReadFile(tmpfile.Name())
	if err != nil {
		return fmt.Errorf("reading edited definition: %w", err)
	}

	out := cmd.OutOrStdout()
	if string(edited) == string(original) {
		fmt.Fprintln(out, "No changes")
		return nil
	}

	def, err := definition.Parse(edited)
	if err == nil {
		err = def.Validate()
	}
	if err != nil {
		return fmt.Errorf("edit discarded, definition is invalid:\n%w", err)
	}

	if err := os.WriteFile(path, edited, 0644); err != nil {
		return fmt.Errorf("failed to write definition: %w", err)
	}

	lipgloss.Fprintln(out, renderDiff(path, string(original), string(edited)))
	return nil
}

// renderDiff renders a colored unified diff between two versions of a file.
func renderDiff(path, before, after string) string {
	s := theme.Current().S()
	diff := udiff.Unified("a/"+path, "b/"+path, before, after)

	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			lines[i] = s.DiffInsert.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = s.DiffDelete.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
