package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `fields = ["form", "lemma", "head", "deprel"]
meta = ["sent_id", "text"]
color = "black"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(cfg.Fields) != 4 || cfg.Fields[1] != "lemma" {
		t.Errorf("Fields = %v", cfg.Fields)
	}
	if len(cfg.Meta) != 2 || cfg.Meta[0] != "sent_id" {
		t.Errorf("Meta = %v", cfg.Meta)
	}
	if cfg.Color != "black" {
		t.Errorf("Color = %q, want black", cfg.Color)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error, got %v", err)
	}
	if cfg.Fields != nil || cfg.Color != "" {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err != nil {
		t.Errorf("empty path should not error, got %v", err)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("fields = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("invalid TOML should error")
	}
}
