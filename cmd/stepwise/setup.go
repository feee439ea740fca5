package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/stepwise/internal/config"
	"github.com/mark3labs/stepwise/internal/definition"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project bool
	force   bool
	example string
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create stepwise configuration file",
	Long: `Create a stepwise configuration file with sensible defaults.

By default, creates a global config at ~/.config/stepwise/stepwise.yml.
Use --project to create a project-local config in the current directory.
Use --example to also write a starter wizard definition.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing files")
	setupCmd.Flags().StringVar(&setupFlags.example, "example", "", "Also write a starter wizard definition to this path")
}

func runSetup(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}
	if setupFlags.example != "" && !setupFlags.force && fileExists(setupFlags.example) {
		return fmt.Errorf("definition already exists at %s\n\nUse --force to overwrite", setupFlags.example)
	}

	cfg := &config.Config{
		IDPrefix:  config.DefaultIDPrefix,
		DataDir:   config.DefaultDataDir,
		LogLevel:  "info",
		Journal:   true,
		HooksFile: config.DefaultHooksFile,
	}

	var err error
	if setupFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config written to: %s\n", targetPath)

	if setupFlags.example != "" {
		if err := writeExample(setupFlags.example); err != nil {
			return err
		}
		fmt.Fprintf(out, "Example wizard written to: %s\n\n", setupFlags.example)
		fmt.Fprintf(out, "Run 'stepwise run %s' to try it.\n", setupFlags.example)
	}
	return nil
}

// exampleDefinition is the starter wizard written by setup --example.
func exampleDefinition() *definition.Definition {
	return &definition.Definition{
		Title: "Getting Started",
		Pages: []definition.Page{
			{
				ID:    "welcome",
				Title: "Welcome",
				Body:  "This wizard walks through three pages.\n\nPress **→** or **n** to continue.",
			},
			{
				ID:         "details",
				Title:      "Details",
				Body:       "Pages can block moving on, stop cancel, or add their own buttons.\n\nAn `on_commit` hook in `.stepwise.hooks.yml` can keep the wizard here.",
				StopCancel: true,
			},
			{
				ID:    "done",
				Title: "Done",
				Body:  "Press **→** to finish.",
				Buttons: []definition.Button{
					{Type: "finish", Label: "Done"},
				},
			},
		},
	}
}

func writeExample(path string) error {
	def := exampleDefinition()
	if err := def.Validate(); err != nil {
		return fmt.Errorf("example definition: %w", err)
	}
	data, err := def.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal example: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write example: %w", err)
	}
	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
