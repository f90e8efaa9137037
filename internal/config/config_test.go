package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.Search.MaxDepth != 64 {
		t.Fatalf("MaxDepth = %d, want 64", cfg.Search.MaxDepth)
	}
	if cfg.Search.TranspositionMB != 64 {
		t.Fatalf("TranspositionMB = %d, want 64", cfg.Search.TranspositionMB)
	}
}

func TestLoadOverridesSomeFieldsAndKeepsDefaultsForOthers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	const contents = `
[search]
max_depth = 12
move_overhead_ms = 100
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search.MaxDepth != 12 {
		t.Fatalf("MaxDepth = %d, want 12 (overridden)", cfg.Search.MaxDepth)
	}
	if cfg.Search.MoveOverheadMS != 100 {
		t.Fatalf("MoveOverheadMS = %d, want 100 (overridden)", cfg.Search.MoveOverheadMS)
	}
	if cfg.Search.TranspositionMB != 64 {
		t.Fatalf("TranspositionMB = %d, want 64 (left at default)", cfg.Search.TranspositionMB)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}
