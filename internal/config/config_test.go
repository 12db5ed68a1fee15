package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := Load(filepath.Join(dir, "script.lox"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxCallDepth != 0 || cfg.TraceCalls != false || cfg.Builtins.ClockEpoch != nil {
		t.Errorf("got %+v, want zero-value Config", cfg)
	}
}

func TestLoadFromCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, fileName), "maxCallDepth: 64\ntraceCalls: true\n")
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := Load(filepath.Join(dir, "script.lox"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxCallDepth != 64 {
		t.Errorf("got MaxCallDepth %d, want 64", cfg.MaxCallDepth)
	}
	if !cfg.TraceCalls {
		t.Error("got TraceCalls false, want true")
	}
}

func TestLoadFromScriptDirectoryWhenCwdHasNone(t *testing.T) {
	cwd := t.TempDir()
	scriptDir := t.TempDir()
	writeConfig(t, filepath.Join(scriptDir, fileName), "maxCallDepth: 128\n")

	origCwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(cwd); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(origCwd)

	cfg, err := Load(filepath.Join(scriptDir, "script.lox"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxCallDepth != 128 {
		t.Errorf("got MaxCallDepth %d, want 128", cfg.MaxCallDepth)
	}
}

func TestLoadMalformedYAMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, fileName), "maxCallDepth: [this is not an int\n")
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	if _, err := Load(filepath.Join(dir, "script.lox")); err == nil {
		t.Fatal("expected a YAML parse error")
	}
}

func TestLoadClockEpochOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, fileName), "builtins:\n  clockEpoch: 1700000000\n")
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := Load(filepath.Join(dir, "script.lox"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Builtins.ClockEpoch == nil || *cfg.Builtins.ClockEpoch != 1700000000 {
		t.Errorf("got %+v, want ClockEpoch 1700000000", cfg.Builtins)
	}
}

func writeConfig(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}
