package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mark3labs/stepwise/internal/definition"
	"github.com/mark3labs/stepwise/internal/tui/theme"
	"github.com/mark3labs/stepwise/internal/wizard"
	"github.com/spf13/cobra"
)

var showFlags struct {
	source bool
}

var showCmd = &cobra.Command{
	Use:   "show <definition.yml>",
	Short: "Print a wizard's pages and buttons",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showFlags.source, "source", false, "Print the highlighted YAML source instead of the outline")
}

func runShow(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	if showFlags.source {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading definition: %w", err)
		}
		lipgloss.Fprintln(out, highlightYAML(string(data)))
		return nil
	}

	def, err := definition.Load(path)
	if err != nil {
		return err
	}
	w, err := def.Build("")
	if err != nil {
		return err
	}

	lipgloss.Fprintln(out, renderOutline(def, w))
	return nil
}

// renderOutline renders the title line and one line per page with the id
// the engine resolved for it.
func renderOutline(def *definition.Definition, w *wizard.Wizard) string {
	s := theme.Current().S()
	var b strings.Builder

	pages := w.Pages().Pages()
	b.WriteString(s.HeaderTitle.Render(def.Title))
	fmt.Fprintf(&b, " (%s, %d pages)\n\n", def.Name(), len(pages))

	for i, p := range def.Pages {
		var flags []string
		if p.NextDisabled {
			flags = append(flags, "next disabled")
		}
		if p.PreviousDisabled {
			flags = append(flags, "previous disabled")
		}
		if p.StopCancel {
			flags = append(flags, "stops cancel")
		}
		for _, btn := range p.Buttons {
			flags = append(flags, btn.Type+" button")
		}

		line := fmt.Sprintf("%d. %s %s", i+1, p.Title, s.HintKey.Render(pages[i].ID()))
		if len(flags) > 0 {
			line += " " + s.HintDesc.Render("["+strings.Join(flags, ", ")+"]")
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// highlightYAML returns the YAML source with ANSI syntax highlighting.
// The source is returned unchanged when highlighting fails.
func highlightYAML(source string) string {
	lexer := lexers.Get("yaml")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Get("terminal256")
	}
	if formatter == nil {
		return source
	}

	style := styles.Get("catppuccin-mocha")
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return strings.TrimRight(buf.String(), "\n")
}
