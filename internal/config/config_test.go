package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the global and project config locations at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	for _, key := range keys {
		t.Setenv(EnvName(key), "")
		_ = os.Unsetenv(EnvName(key))
	}
	return tmpDir
}

func TestGlobalPath(t *testing.T) {
	tests := []struct {
		name      string
		xdgConfig string
		want      string
	}{
		{
			name:      "with XDG_CONFIG_HOME set",
			xdgConfig: "/custom/config",
			want:      "/custom/config/stepwise/stepwise.yml",
		},
		{
			name:      "without XDG_CONFIG_HOME",
			xdgConfig: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdgConfig)

			got := GlobalPath()
			if tt.want != "" {
				if got != tt.want {
					t.Errorf("GlobalPath() = %v, want %v", got, tt.want)
				}
				return
			}
			if !filepath.IsAbs(got) {
				t.Errorf("GlobalPath() should return absolute path, got %v", got)
			}
			if !strings.HasSuffix(got, filepath.Join(".config", "stepwise", "stepwise.yml")) {
				t.Errorf("GlobalPath() = %v, want ~/.config/stepwise/stepwise.yml", got)
			}
		})
	}
}

func TestProjectPath(t *testing.T) {
	if got := ProjectPath(); got != "stepwise.yml" {
		t.Errorf("ProjectPath() = %v, want stepwise.yml", got)
	}
}

func TestEnvName(t *testing.T) {
	if got := EnvName("id_prefix"); got != "STEPWISE_ID_PREFIX" {
		t.Errorf("EnvName() = %v, want STEPWISE_ID_PREFIX", got)
	}
}

func TestExists(t *testing.T) {
	isolate(t)

	if Exists() {
		t.Fatal("Exists() = true, want false when no config files exist")
	}

	if err := os.WriteFile(ProjectPath(), []byte("log_level: debug\n"), 0644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false, want true when project config exists")
	}
	_ = os.Remove(ProjectPath())

	if err := WriteGlobal(&Config{LogLevel: "debug"}); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false, want true when global config exists")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.IDPrefix != DefaultIDPrefix {
		t.Errorf("IDPrefix = %q, want %q", cfg.IDPrefix, DefaultIDPrefix)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, DefaultDataDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if !cfg.Journal {
		t.Error("Journal = false, want true by default")
	}
	if cfg.HooksFile != DefaultHooksFile {
		t.Errorf("HooksFile = %q, want %q", cfg.HooksFile, DefaultHooksFile)
	}
	if cfg.MCPPort != 0 {
		t.Errorf("MCPPort = %d, want 0", cfg.MCPPort)
	}
	if got := cfg.JournalDir(); got != filepath.Join(DefaultDataDir, "data") {
		t.Errorf("JournalDir() = %q", got)
	}
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)

	if err := WriteGlobal(&Config{
		IDPrefix: "global-page-",
		DataDir:  ".global",
		LogLevel: "warn",
		Journal:  false,
		MCPPort:  9000,
	}); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}
	if err := os.WriteFile(ProjectPath(), []byte("data_dir: .project\nlog_level: debug\n"), 0644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}
	t.Setenv("STEPWISE_LOG_LEVEL", "error")
	t.Setenv("STEPWISE_MCP_PORT", "9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.IDPrefix != "global-page-" {
		t.Errorf("IDPrefix = %q, want value from global config", cfg.IDPrefix)
	}
	if cfg.DataDir != ".project" {
		t.Errorf("DataDir = %q, want project config to override global", cfg.DataDir)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want env to override files", cfg.LogLevel)
	}
	if cfg.MCPPort != 9100 {
		t.Errorf("MCPPort = %d, want 9100 from env", cfg.MCPPort)
	}
	if cfg.Journal {
		t.Error("Journal = true, want false from global config")
	}
}

func TestLoad_InvalidProjectConfig(t *testing.T) {
	isolate(t)

	if err := os.WriteFile(ProjectPath(), []byte("log_level: [unterminated\n"), 0644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want error for malformed yaml")
	}
}

func TestWriteProject(t *testing.T) {
	isolate(t)

	cfg := &Config{
		IDPrefix:  "setup-page-",
		DataDir:   ".project",
		LogLevel:  "info",
		Journal:   true,
		HooksFile: "hooks.yml",
	}
	if err := WriteProject(cfg); err != nil {
		t.Fatalf("WriteProject() error = %v", err)
	}

	data, err := os.ReadFile(ProjectPath())
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	content := string(data)
	for _, field := range []string{
		"id_prefix: setup-page-",
		"data_dir: .project",
		"log_level: info",
		"journal: true",
		"hooks_file: hooks.yml",
	} {
		if !strings.Contains(content, field) {
			t.Errorf("Config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}
