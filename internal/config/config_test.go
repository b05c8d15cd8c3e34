package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output != "text" {
		t.Errorf("Output = %q, want %q", cfg.Output, "text")
	}
	if cfg.LibraryDir != "" {
		t.Errorf("LibraryDir = %q, want empty", cfg.LibraryDir)
	}
	if !cfg.ValidateModels {
		t.Error("ValidateModels = false, want true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SYSLANG_OUTPUT", "json")
	t.Setenv("SYSLANG_LIBRARY_DIR", "/tmp/catalogs")
	t.Setenv("SYSLANG_VALIDATE_MODELS", "false")
	t.Setenv("SYSLANG_VERBOSE", "1")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if cfg.LibraryDir != "/tmp/catalogs" {
		t.Errorf("LibraryDir = %q", cfg.LibraryDir)
	}
	if cfg.ValidateModels {
		t.Error("ValidateModels = true, want false from env")
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true from env")
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "output: json\nvalidate_models: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SYSLANG_CONFIG", path)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json from project config", cfg.Output)
	}
	if cfg.ValidateModels {
		t.Error("ValidateModels = true, want explicit false from project config")
	}
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Setenv("SYSLANG_OUTPUT", "json")

	cfg, err := Load(&Config{Output: "text"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "text" {
		t.Errorf("Output = %q, want flag value text", cfg.Output)
	}
}
