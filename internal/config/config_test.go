package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  path: "tb3.db"
auth:
  api_key: "test-key-123"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "tb3.db" {
		t.Errorf("database.path = %q, want %q", cfg.Database.Path, "tb3.db")
	}
	if cfg.Auth.APIKey != "test-key-123" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "test-key-123")
	}
	if cfg.Tailscale.Enabled {
		t.Error("tailscale.enabled should default to false")
	}
}

// TestEnvOverride verifies that TB3_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("TB3_DB_PATH", "/data/override.db")
	t.Setenv("TB3_SERVER_PORT", "9999")
	t.Setenv("TB3_AUTH_API_KEY", "env-key")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "/data/override.db" {
		t.Errorf("database.path = %q, want %q", cfg.Database.Path, "/data/override.db")
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "env-key" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "env-key")
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want YAML value preserved", cfg.Server.Host)
	}
}

// TestValidation verifies required fields are enforced.
func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing port", "database:\n  path: tb3.db\nauth:\n  api_key: k\n"},
		{"missing db path", "server:\n  port: 8080\nauth:\n  api_key: k\n"},
		{"missing api key", "server:\n  port: 8080\ndatabase:\n  path: tb3.db\n"},
		{"tailscale without hostname", "server:\n  port: 8080\ndatabase:\n  path: tb3.db\nauth:\n  api_key: k\ntailscale:\n  enabled: true\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeTemp(t, tc.yaml)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

// TestTailscaleNoPort verifies the port requirement is waived when tailscale
// provides the listener.
func TestTailscaleNoPort(t *testing.T) {
	yaml := "database:\n  path: tb3.db\nauth:\n  api_key: k\ntailscale:\n  enabled: true\n  hostname: tb3\n"
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Tailscale.Enabled || cfg.Tailscale.Hostname != "tb3" {
		t.Errorf("tailscale = %+v, want enabled with hostname tb3", cfg.Tailscale)
	}
}
