package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"morph/internal/dialect"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[dialect]
typed = true
jsx = "classic"
jsx-pragma = "h"
jsx-fragment-pragma = "Fragment"

[[stages.prologue]]
name = "coverage"
[stages.prologue.options]
include = "src"

[[stages.epilogue]]
name = "banner"
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error: %v", err)
	}
	if m.Root != filepath.Dir(path) {
		t.Errorf("Root = %q, want %q", m.Root, filepath.Dir(path))
	}

	flags, err := m.Config.Dialect.Flags()
	if err != nil {
		t.Fatalf("Flags() error: %v", err)
	}
	want := dialect.Flags{
		Typed: true, JSX: dialect.JSXClassic,
		JSXPragma: "h", JSXFragmentPragma: "Fragment",
	}
	if flags != want {
		t.Errorf("Flags() = %+v, want %+v", flags, want)
	}

	prologue := m.Config.Stages.PrologueStages()
	if len(prologue) != 1 || prologue[0].Name != "coverage" {
		t.Fatalf("prologue = %+v", prologue)
	}
	opts, ok := prologue[0].Options.(map[string]any)
	if !ok || opts["include"] != "src" {
		t.Errorf("prologue options = %+v", prologue[0].Options)
	}

	epilogue := m.Config.Stages.EpilogueStages()
	if len(epilogue) != 1 || epilogue[0].Name != "banner" || epilogue[0].Options != nil {
		t.Errorf("epilogue = %+v", epilogue)
	}
}

func TestLoadManifest_Empty(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "")
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error: %v", err)
	}
	flags, err := m.Config.Dialect.Flags()
	if err != nil {
		t.Fatalf("Flags() error: %v", err)
	}
	if flags != (dialect.Flags{}) {
		t.Errorf("Flags() = %+v, want zero", flags)
	}
	if m.Config.Stages.PrologueStages() != nil || m.Config.Stages.EpilogueStages() != nil {
		t.Errorf("empty manifest declared stages")
	}
}

func TestLoadManifest_BadJSXMode(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[dialect]\njsx = \"sometimes\"\n")
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("LoadManifest() accepted unknown jsx mode")
	}
}

func TestLoadManifest_InvalidFlagCombo(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[dialect]\njsx = \"automatic\"\njsx-pragma = \"h\"\n")
	_, err := LoadManifest(path)
	if !errors.Is(err, dialect.ErrInvalidFlags) {
		t.Fatalf("LoadManifest() error = %v, want ErrInvalidFlags", err)
	}
}

func TestLoadManifest_UnnamedStage(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[[stages.prologue]]\n[stages.prologue.options]\nx = 1\n")
	_, err := LoadManifest(path)
	if !errors.Is(err, ErrStageNameMissing) {
		t.Fatalf("LoadManifest() error = %v, want ErrStageNameMissing", err)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[dialect]\ntyped = true\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if !ok {
		t.Fatalf("Discover() found nothing")
	}
	if m.Root != root {
		t.Errorf("Root = %q, want %q", m.Root, root)
	}
	if !m.Config.Dialect.Typed {
		t.Errorf("dialect defaults not loaded: %+v", m.Config.Dialect)
	}
}

func TestDiscover_NoManifest(t *testing.T) {
	m, ok, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if ok || m != nil {
		t.Fatalf("Discover() = %+v, %v on a bare directory", m, ok)
	}
}
