package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSourcesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	contents := "mirrors:\n  - https://example.test/catalog.json\n  - https://mirror.test/catalog.json\nhost_version: \"1.12.2\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadSourcesConfig(path)
	if err != nil {
		t.Fatalf("LoadSourcesConfig: %v", err)
	}
	if len(cfg.Mirrors) != 2 {
		t.Errorf("Mirrors = %v, want 2 entries", cfg.Mirrors)
	}
	if cfg.HostVersion != "1.12.2" {
		t.Errorf("HostVersion = %q, want 1.12.2", cfg.HostVersion)
	}
}

func TestLoadSourcesConfig_RejectsEmptyMirrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte("mirrors: []\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadSourcesConfig(path); err == nil {
		t.Error("LoadSourcesConfig with no mirrors should fail")
	}
}

func TestLoadSourcesConfig_MissingFile(t *testing.T) {
	if _, err := LoadSourcesConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadSourcesConfig on a missing file should fail")
	}
}
