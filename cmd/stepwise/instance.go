package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/stepwise/internal/config"
	"github.com/mark3labs/stepwise/internal/definition"
	"github.com/mark3labs/stepwise/internal/hooks"
	"github.com/mark3labs/stepwise/internal/journal"
	"github.com/mark3labs/stepwise/internal/logger"
	"github.com/mark3labs/stepwise/internal/nats"
	"github.com/mark3labs/stepwise/internal/wizard"
	"github.com/spf13/cobra"
)

// wizardFlags are shared by the commands that build and drive a wizard.
type wizardFlags struct {
	dataDir   string
	idPrefix  string
	hooksFile string
	noJournal bool
}

func addWizardFlags(cmd *cobra.Command, f *wizardFlags) {
	cmd.Flags().StringVar(&f.dataDir, "data-dir", "", "Data directory for the journal and UI state (default: .stepwise)")
	cmd.Flags().StringVar(&f.idPrefix, "id-prefix", "", "Prefix for generated page ids (default: wizard-page-)")
	cmd.Flags().StringVar(&f.hooksFile, "hooks", "", "Hooks file (default: .stepwise.hooks.yml)")
	cmd.Flags().BoolVar(&f.noJournal, "no-journal", false, "Do not journal wizard events")
}

// loadConfig loads the config and applies flag overrides on top of it.
func loadConfig(f *wizardFlags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if f != nil {
		if f.dataDir != "" {
			cfg.DataDir = f.dataDir
		}
		if f.idPrefix != "" {
			cfg.IDPrefix = f.idPrefix
		}
		if f.hooksFile != "" {
			cfg.HooksFile = f.hooksFile
		}
		if f.noJournal {
			cfg.Journal = false
		}
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logger: %w", err)
	}
	return cfg, nil
}

// instance is a wizard built from a definition plus the services attached to it.
type instance struct {
	cfg     *config.Config
	def     *definition.Definition
	wiz     *wizard.Wizard
	name    string
	journal *journal.Journal

	closers []func()
}

// openInstance loads the definition at path, builds the wizard, and attaches
// the journal and hooks the config asks for. Close releases everything.
func openInstance(ctx context.Context, path string, cfg *config.Config, opts ...wizard.Option) (*instance, error) {
	def, err := definition.Load(path)
	if err != nil {
		return nil, err
	}

	w, err := def.Build(cfg.IDPrefix, opts...)
	if err != nil {
		return nil, err
	}

	rt := &instance{cfg: cfg, def: def, wiz: w, name: def.Name()}

	if cfg.Journal {
		j, closeJournal, err := openJournal(ctx, cfg)
		if err != nil {
			return nil, err
		}
		rt.journal = j
		rt.closers = append(rt.closers, closeJournal)
		rt.closers = append(rt.closers, j.Attach(ctx, w, rt.name))
		if err := j.Start(ctx, rt.name); err != nil {
			rt.Close()
			return nil, fmt.Errorf("failed to journal run start: %w", err)
		}
	}

	workDir, err := os.Getwd()
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	hooksCfg, err := hooks.LoadConfig(workDir, cfg.HooksFile)
	if err != nil {
		rt.Close()
		return nil, err
	}
	if hooksCfg != nil {
		logger.Info("Attaching hooks from %s", cfg.HooksFile)
		rt.closers = append(rt.closers, hooks.Attach(ctx, w, hooksCfg, workDir, rt.name))
	}

	// The first page loaded during Build, before anything was attached.
	if cur := w.CurrentPage(); cur != nil {
		w.SetCurrentPage(cur)
	}
	return rt, nil
}

// Close detaches listeners and shuts the journal down, newest first.
func (rt *instance) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	rt.closers = nil
}

// openJournal opens the journal store in the config's journal dir.
func openJournal(ctx context.Context, cfg *config.Config) (*journal.Journal, func(), error) {
	store, err := nats.Open(ctx, cfg.JournalDir())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open journal: %w", err)
	}

	closeFn := func() {
		if err := store.Close(); err != nil {
			logger.Warn("Journal shutdown: %v", err)
		}
	}
	return journal.New(store.JetStream(), store.Stream()), closeFn, nil
}
