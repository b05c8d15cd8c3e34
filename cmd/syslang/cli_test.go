package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/echopraxium/syslang/internal/model"
)

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.syslang.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	return path
}

func TestRunCheck_ValidModel(t *testing.T) {
	path := writeModel(t, "system:\n  name: Checked\nprinciples:\n  - name: Modularity\n")

	if err := runCheck(checkCmd, []string{path}); err != nil {
		t.Fatalf("runCheck failed: %v", err)
	}
}

func TestRunCheck_MissingSystem(t *testing.T) {
	path := writeModel(t, "principles:\n  - name: Modularity\n")

	err := runCheck(checkCmd, []string{path})
	if !errors.Is(err, model.ErrMissingSystem) {
		t.Errorf("error = %v, want ErrMissingSystem", err)
	}
}

func TestRunCheck_MissingFile(t *testing.T) {
	if err := runCheck(checkCmd, []string{filepath.Join(t.TempDir(), "absent.yml")}); err == nil {
		t.Error("runCheck succeeded on a missing file")
	}
}

func TestRunAnalyze_UnknownFormat(t *testing.T) {
	path := writeModel(t, "system:\n  name: Checked\n")
	t.Setenv("SYSLANG_OUTPUT", "xml")

	if err := runAnalyze(analyzeCmd, []string{path}); err == nil {
		t.Error("runAnalyze accepted unknown output format")
	}
}

func TestRunNew_ScaffoldLoads(t *testing.T) {
	out := filepath.Join(t.TempDir(), "scaffold.syslang.yml")
	newName = "Fresh System"
	newDomain = "testing"
	newScale = "unit"
	newOut = out
	t.Cleanup(func() {
		newName, newDomain, newScale = "", model.DefaultDomain, model.DefaultScale
		newOut = "system.syslang.yml"
	})

	if err := runNew(newCmd, nil); err != nil {
		t.Fatalf("runNew failed: %v", err)
	}

	m, err := model.LoadFile(out)
	if err != nil {
		t.Fatalf("scaffold does not load: %v", err)
	}
	if m.Name != "Fresh System" {
		t.Errorf("Name = %q, want %q", m.Name, "Fresh System")
	}
	if len(m.Principles) != 1 || m.Principles[0].Name != "Modularity" {
		t.Errorf("Principles = %v, want starter Modularity", m.Principles)
	}
}
