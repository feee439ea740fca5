package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/stepwise/internal/wizard"
	"github.com/mark3labs/stepwise/internal/wizardmcp"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	wizardFlags
	port int
}

var serveCmd = &cobra.Command{
	Use:   "serve <definition.yml>",
	Short: "Serve a wizard over MCP for headless driving",
	Long: `Serve a wizard over MCP (streamable HTTP) so an agent or script can drive it.

Tools: wizard-state, wizard-next, wizard-previous, wizard-goto, wizard-finish,
wizard-cancel, wizard-click and wizard-set-page. Every tool returns the
outcome of the call and a snapshot of the pages and buttons.

The server keeps running after the wizard finishes or is cancelled so the
final state can still be read. Stop it with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	addWizardFlags(serveCmd, &serveFlags.wizardFlags)
	serveCmd.Flags().IntVarP(&serveFlags.port, "port", "p", -1, "Port to listen on, 0 picks a free port (default: mcp_port from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(&serveFlags.wizardFlags)
	if err != nil {
		return err
	}
	if serveFlags.port >= 0 {
		cfg.MCPPort = serveFlags.port
	}

	ctx := cmd.Context()
	host := wizard.NewModalHost()
	inst, err := openInstance(ctx, args[0], cfg, wizard.WithHost(host))
	if err != nil {
		return err
	}
	defer inst.Close()

	host.OnClose(func() {
		fmt.Fprintln(cmd.OutOrStdout(), "Wizard closed")
	})
	inst.wiz.Open()

	srv := wizardmcp.New(inst.wiz, inst.name, inst.journal)
	if _, err := srv.Start(ctx, cfg.MCPPort); err != nil {
		return fmt.Errorf("failed to start MCP server: %w", err)
	}
	defer func() {
		if err := srv.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "Error stopping MCP server: %v\n", err)
		}
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s at %s\n", inst.def.Title, srv.URL())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-sigChan:
		fmt.Fprintln(cmd.OutOrStdout(), "\nShutting down gracefully...")
	case <-ctx.Done():
	}
	return nil
}
