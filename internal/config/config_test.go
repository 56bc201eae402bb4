package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFirstRunWritesTemplate(t *testing.T) {
	base := t.TempDir()

	cfg, err := Load(base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != filepath.Join(base, "sessions.json") {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if !cfg.BellEnabled() || cfg.Debug {
		t.Errorf("defaults = %+v, want bell on and debug off", cfg)
	}

	data, err := os.ReadFile(FilePath(base))
	if err != nil {
		t.Fatalf("template not written: %v", err)
	}
	if !strings.Contains(string(data), `"data_file"`) {
		t.Error("template missing data_file")
	}

	// The template itself must parse.
	again, err := Load(base)
	if err != nil {
		t.Fatalf("Load template: %v", err)
	}
	if again.DataFile != cfg.DataFile || again.BellEnabled() != cfg.BellEnabled() {
		t.Errorf("template config = %+v, want %+v", again, cfg)
	}
}

func TestLoadCustom(t *testing.T) {
	base := t.TempDir()
	content := `// my settings
{
  // keep sessions elsewhere
  "data_file": "logs/study.json",
  "bell": false,
  "debug": true
}`
	if err := os.WriteFile(FilePath(base), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != filepath.Join(base, "logs", "study.json") {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.BellEnabled() {
		t.Error("bell should be disabled")
	}
	if !cfg.Debug {
		t.Error("debug should be enabled")
	}
}

func TestLoadInvalid(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(FilePath(base), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(base); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestStripLineComments(t *testing.T) {
	in := "// header\n{\n   // indented\n  \"a\": \"http://x\"\n}"
	got := string(stripLineComments([]byte(in)))
	if strings.Contains(got, "header") || strings.Contains(got, "indented") {
		t.Errorf("comments not stripped: %q", got)
	}
	if !strings.Contains(got, `"http://x"`) {
		t.Errorf("inline // inside a value was stripped: %q", got)
	}
}

func TestResolveDataFileAbsolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "s.json")
	got, err := resolveDataFile("/unused", abs)
	if err != nil {
		t.Fatal(err)
	}
	if got != abs {
		t.Errorf("resolveDataFile = %q, want %q", got, abs)
	}
}
