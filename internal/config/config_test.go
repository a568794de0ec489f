package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
facts:
  path: /etc/preflight/facts.yaml
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Facts.Source != "file" {
		t.Errorf("facts.source = %q, want file", cfg.Facts.Source)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Database.Path != "" {
		t.Errorf("database.path should default to empty, got %q", cfg.Database.Path)
	}
	if cfg.Checks.MinHostDiskGB != nil {
		t.Errorf("override should default to nil, got %v", cfg.Checks.MinHostDiskGB)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
host:
  name: node1.example.com
  group_names: [nodes]
facts:
  source: local
checks:
  min_host_disk_gb: 3
  playbook_context: upgrade
  disabled: [memory_availability]
logging:
  level: debug
  format: text
database:
  path: /var/lib/preflight/results.db
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Host.Name != "node1.example.com" {
		t.Errorf("host.name = %q", cfg.Host.Name)
	}
	if cfg.Checks.PlaybookContext != "upgrade" {
		t.Errorf("playbook_context = %q", cfg.Checks.PlaybookContext)
	}
	if cfg.Checks.MinHostDiskGB == nil {
		t.Error("override should be set")
	}
	if len(cfg.Checks.Disabled) != 1 {
		t.Errorf("disabled = %v", cfg.Checks.Disabled)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "invalid facts source",
			content: `
facts:
  source: ether
`,
		},
		{
			name: "local source without group names",
			content: `
facts:
  source: local
`,
		},
		{
			name: "invalid log level",
			content: `
facts:
  path: facts.yaml
logging:
  level: loud
`,
		},
		{
			name: "invalid log format",
			content: `
facts:
  path: facts.yaml
logging:
  format: xml
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}
