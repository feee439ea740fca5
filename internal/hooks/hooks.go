package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/stepwise/internal/logger"
	"github.com/mark3labs/stepwise/internal/wizard"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default name of the hooks configuration file.
const ConfigFileName = ".stepwise.hooks.yml"

// LoadConfig loads the hooks configuration from path. A relative path is
// resolved against workDir.
// Returns nil if the config file doesn't exist (hooks are optional).
// Returns an error only if the file exists but cannot be parsed.
func LoadConfig(workDir, path string) (*Config, error) {
	if path == "" {
		path = ConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No hooks config found at %s", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hooks config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hooks config: %w", err)
	}

	logger.Debug("Loaded hooks config from %s (version: %d)", path, cfg.Version)
	return &cfg, nil
}

// Variables holds template variables that can be expanded in hook commands.
type Variables struct {
	Wizard string
	Page   string
	Event  string
}

// Execute runs a hook command and reports its output and exit status.
// Template variables in the command ({{wizard}}, {{page}}, {{event}}) are
// expanded before execution. Command failures and timeouts are reported in
// the Result, not as errors. Only context cancellation returns an error.
func Execute(ctx context.Context, hook *HookConfig, workDir string, vars Variables) (Result, error) {
	if hook == nil || hook.Command == "" {
		return Result{}, nil
	}

	command := expandVariables(hook.Command, vars)
	logger.Debug("Executing hook command: %s", command)

	timeout := hook.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(execCtx, "sh", "-c", command)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	if execCtx.Err() == context.DeadlineExceeded {
		logger.Warn("Hook command timed out after %ds: %s", timeout, command)
		return Result{
			Output:   fmt.Sprintf("[Hook timed out after %ds]\nPartial output:\n%s", timeout, stdout.String()),
			ExitCode: -1,
			TimedOut: true,
		}, nil
	}

	output := stdout.String()
	if stderr.Len() > 0 {
		output += "\n[stderr]\n" + stderr.String()
	}

	if err != nil {
		var exitErr *exec.ExitError
		code := -1
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		logger.Warn("Hook command failed: %v", err)
		return Result{Output: output, ExitCode: code}, nil
	}

	logger.Debug("Hook executed successfully, output length: %d bytes", len(output))
	return Result{Output: output}, nil
}

// Attach subscribes the configured hooks to w's notifications and returns a
// function that detaches them. Hooks run synchronously inside the listener
// so an on_commit hook can veto the commit it is called for.
func Attach(ctx context.Context, w *wizard.Wizard, cfg *Config, workDir, wizardName string) func() {
	if cfg == nil {
		return func() {}
	}

	return w.Subscribe(func(e wizard.Event) {
		hook := cfg.Hooks.For(e.Kind)
		if hook == nil {
			return
		}
		if e.Cancellable() && e.Prevented() {
			logger.Debug("Skipping on_commit hook on %s: commit already vetoed", e.PageID)
			return
		}

		vars := Variables{Wizard: wizardName, Page: e.PageID, Event: string(e.Kind)}
		res, err := Execute(ctx, hook, workDir, vars)
		if err != nil {
			logger.Warn("Hook for %s aborted: %v", e.Kind, err)
			if e.Cancellable() {
				e.PreventDefault()
			}
			return
		}
		if e.Cancellable() && !res.OK() {
			logger.Info("on_commit hook vetoed commit on %s (exit %d)", e.PageID, res.ExitCode)
			e.PreventDefault()
		}
	})
}

// For returns the hook bound to an event kind, or nil.
func (h HooksConfig) For(kind wizard.EventKind) *HookConfig {
	switch kind {
	case wizard.EventLoad:
		return h.OnLoad
	case wizard.EventCommit:
		return h.OnCommit
	case wizard.EventCancel:
		return h.OnCancel
	case wizard.EventFinish:
		return h.OnFinish
	}
	return nil
}

// expandVariables replaces {{variable}} placeholders in the command string.
func expandVariables(command string, vars Variables) string {
	r := strings.NewReplacer(
		"{{wizard}}", vars.Wizard,
		"{{page}}", vars.Page,
		"{{event}}", vars.Event,
	)
	return r.Replace(command)
}
