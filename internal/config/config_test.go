package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "aidlkit.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadFullManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[output]
format = "yaml"
pretty = true
path = "out/project.yaml"

[diagnostics]
hide = true
max = 50
jobs = 4
`)

	m, ok, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected manifest to be found")
	}
	if m.Root != dir {
		t.Errorf("expected root %q, got %q", dir, m.Root)
	}
	if m.Config.Output.Format != "yaml" || !m.Config.Output.Pretty {
		t.Errorf("unexpected output config: %+v", m.Config.Output)
	}
	if m.Config.Diagnostics.Max != 50 || m.Config.Diagnostics.Jobs != 4 || !m.Config.Diagnostics.Hide {
		t.Errorf("unexpected diagnostics config: %+v", m.Config.Diagnostics)
	}
}

func TestLoadFindsManifestInParent(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[output]\nformat = \"json\"\n")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	m, ok, err := Load(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected manifest in ancestor directory to be found")
	}
	if m.Root != dir {
		t.Errorf("expected root %q, got %q", dir, m.Root)
	}
}

func TestLoadMissingManifest(t *testing.T) {
	m, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || m != nil {
		t.Errorf("expected no manifest, got %+v", m)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[output]\nformat = \"xml\"\n")

	_, ok, err := Load(dir)
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !ok {
		t.Errorf("expected found=true for a manifest that exists but is invalid")
	}
	if !strings.Contains(err.Error(), "[output].format") {
		t.Errorf("expected format error, got %q", err)
	}
}

func TestLoadRejectsNegativeLimits(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[diagnostics]\nmax = -1\n")

	if _, _, err := Load(dir); err == nil {
		t.Fatalf("expected error for negative max")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[output\n")

	_, _, err := Load(dir)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse TOML") {
		t.Errorf("expected TOML parse error, got %q", err)
	}
}
