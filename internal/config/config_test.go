package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reservedwords.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /var/lib/keywords.db
  busy_timeout: 250ms
log:
  format: json
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Database.Path != "/var/lib/keywords.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Database.BusyTimeout != 250*time.Millisecond {
		t.Errorf("Database.BusyTimeout = %v", cfg.Database.BusyTimeout)
	}
	if cfg.Database.JournalMode != "wal" {
		t.Errorf("Database.JournalMode = %q, want default wal", cfg.Database.JournalMode)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "database: [", "parsing config"},
		{"level", "log:\n  level: loud\n", `unknown log.level "loud"`},
		{"format", "log:\n  format: xml\n", `unknown log.format "xml"`},
		{"empty path", "database:\n  path: \"\"\n", "database.path is empty"},
		{"duration", "database:\n  busy_timeout: soon\n", "parsing config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolveDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("Resolve() = %+v, want defaults", cfg)
	}
}

func TestResolveWorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(DefaultFile, []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestResolveMissingExplicitFile(t *testing.T) {
	if _, err := Resolve(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
