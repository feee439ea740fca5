package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/stepwise/internal/logger"
	"github.com/mark3labs/stepwise/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀ ▀█▀ █▀▀ █▀█ █ █ █ █ █▀ █▀▀"
	logoText2 = "▄█  █  ██▄ █▀▀ ▀▄▀▄▀ █ ▄█ ██▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stepwise",
	Short: "Multi-step wizards defined in YAML, driven from the terminal or over MCP",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

stepwise runs multi-step wizards declared in a YAML definition file.
Pages are walked in order with next, back, finish and cancel; a page can
block moving on until it is ready, and commit listeners (shell hooks or an
MCP client) can veto a step. Every notification is journaled to an
embedded NATS JetStream stream.

Configuration precedence:
  CLI flags > STEPWISE_* env vars > ./stepwise.yml > ~/.config/stepwise/stepwise.yml > defaults`

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(setupCmd)
}
