package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/stepwise/internal/definition"
	"github.com/mark3labs/stepwise/internal/journal"
	"github.com/mark3labs/stepwise/internal/tui/theme"
	"github.com/spf13/cobra"
)

var historyFlags struct {
	wizardFlags
	json bool
}

var historyCmd = &cobra.Command{
	Use:   "history <definition.yml | wizard-name>",
	Short: "Summarize a wizard's journaled runs",
	Long: `Summarize the journaled runs of a wizard: runs started, page visits,
commits, vetoes, blocked steps, finishes and cancels.

The argument is either a definition file or the wizard name (the slug of
its title) as shown by 'stepwise show'.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyFlags.dataDir, "data-dir", "", "Data directory holding the journal (default: .stepwise)")
	historyCmd.Flags().BoolVar(&historyFlags.json, "json", false, "Print the summary as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(&historyFlags.wizardFlags)
	if err != nil {
		return err
	}

	name := args[0]
	if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
		def, err := definition.Load(name)
		if err != nil {
			return err
		}
		name = def.Name()
	}

	ctx := cmd.Context()
	j, closeJournal, err := openJournal(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeJournal()

	summary, err := j.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to load journal: %w", err)
	}

	out := cmd.OutOrStdout()
	if historyFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	lipgloss.Fprintln(out, renderSummary(summary))
	return nil
}

// renderSummary renders a journal summary as plain lines.
func renderSummary(sum *journal.Summary) string {
	s := theme.Current().S()
	var b strings.Builder

	b.WriteString(s.HeaderTitle.Render(sum.Wizard) + "\n")
	if len(sum.Records) == 0 {
		b.WriteString("No journaled runs")
		return b.String()
	}

	fmt.Fprintf(&b, "Last event: %s\n\n", sum.LastEvent.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Runs:      %d\n", sum.Runs)
	fmt.Fprintf(&b, "Commits:   %d\n", sum.Commits)
	fmt.Fprintf(&b, "Vetoes:    %d\n", sum.Vetoes)
	fmt.Fprintf(&b, "Blocked:   %d\n", sum.Blocked)
	fmt.Fprintf(&b, "Finishes:  %d\n", sum.Finishes)
	fmt.Fprintf(&b, "Cancels:   %d\n", sum.Cancels)

	if len(sum.Visits) > 0 {
		ids := make([]string, 0, len(sum.Visits))
		for id := range sum.Visits {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		b.WriteString("\nPage visits:\n")
		for _, id := range ids {
			fmt.Fprintf(&b, "  %-24s %d\n", id, sum.Visits[id])
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
