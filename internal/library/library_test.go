package library

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/echopraxium/syslang/internal/schema"
	"github.com/echopraxium/syslang/internal/types"
)

const minimalPrinciples = `{
	"categories": {"Structure": "Arrangement of components"},
	"principles": {
		"Modularity": {"description": "weak coupling", "category": "Structure"},
		"Bus": {"description": "shared medium", "category": "Structure"}
	}
}`

const minimalPatterns = `{
	"distribution_patterns": {
		"HubAndSpoke": {"description": "hubs", "parent_principle": "Bus"}
	}
}`

const minimalCompat = `{
	"compatibility_rules": [
		{"principles": ["Modularity", "Bus"], "relation": "compatible"}
	]
}`

func writeCatalogs(t *testing.T, principles, patterns, compat string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		PrinciplesFile:    principles,
		PatternsFile:      patterns,
		CompatibilityFile: compat,
	}
	for name, content := range files {
		if content == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadEmbedded(t *testing.T) {
	lib, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}

	def, ok := lib.Principle("Modularity")
	if !ok {
		t.Fatal("Modularity not in embedded library")
	}
	if def.Category != types.CategoryStructure {
		t.Errorf("Modularity category = %q, want %q", def.Category, types.CategoryStructure)
	}
	if def.HypothesisTemplate == "" {
		t.Error("Modularity has no hypothesis template")
	}

	if _, ok := lib.Pattern("HubAndSpoke"); !ok {
		t.Error("HubAndSpoke not in embedded library")
	}
}

func TestLoadEmbedded_CategoriesOrdered(t *testing.T) {
	lib, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}

	cats := lib.Categories()
	want := []string{"Structure", "Operator", "Dynamics", "Information"}
	if len(cats) != len(want) {
		t.Fatalf("categories = %d, want %d", len(cats), len(want))
	}
	for i, cat := range cats {
		if cat.Name != want[i] {
			t.Errorf("category[%d] = %q, want %q", i, cat.Name, want[i])
		}
		if cat.Description == "" {
			t.Errorf("category %q has no description", cat.Name)
		}
	}
}

func TestPrinciplesInCategory_Sorted(t *testing.T) {
	lib, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}

	names := lib.PrinciplesInCategory("Structure")
	if len(names) < 2 {
		t.Fatalf("Structure principles = %d, want at least 2", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestLoad_Directory(t *testing.T) {
	dir := writeCatalogs(t, minimalPrinciples, minimalPatterns, minimalCompat)

	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := lib.Principle("Bus"); !ok {
		t.Error("Bus not loaded")
	}

	pat, ok := lib.Pattern("HubAndSpoke")
	if !ok {
		t.Fatal("HubAndSpoke not loaded")
	}
	if pat.ParentPrinciple != "Bus" {
		t.Errorf("parent = %q, want %q", pat.ParentPrinciple, "Bus")
	}
}

func TestLoad_MissingCatalog(t *testing.T) {
	dir := writeCatalogs(t, minimalPrinciples, minimalPatterns, "")

	_, err := Load(dir)
	if !errors.Is(err, ErrCatalogMissing) {
		t.Errorf("error = %v, want ErrCatalogMissing", err)
	}
}

func TestLoad_InvalidCategory(t *testing.T) {
	bad := strings.Replace(minimalPrinciples, `"category": "Structure"`, `"category": "Bogus"`, 1)
	dir := writeCatalogs(t, bad, minimalPatterns, minimalCompat)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load accepted invalid category")
	}
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want wrapped *schema.ValidationError", err)
	}
	if got := schema.JoinPath(verr.Path); !strings.HasPrefix(got, "$.principles.") {
		t.Errorf("path = %q, want inside $.principles", got)
	}
}

func TestLoad_UnknownParent(t *testing.T) {
	orphan := `{"distribution_patterns": {"PowerLaw": {"description": "tail", "parent_principle": "Hierarchy"}}}`
	dir := writeCatalogs(t, minimalPrinciples, orphan, minimalCompat)

	_, err := Load(dir)
	if !errors.Is(err, ErrUnknownParent) {
		t.Errorf("error = %v, want ErrUnknownParent", err)
	}
}

func TestCompatibility_Symmetric(t *testing.T) {
	dir := writeCatalogs(t, minimalPrinciples, minimalPatterns, minimalCompat)
	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, pair := range [][2]string{{"Modularity", "Bus"}, {"Bus", "Modularity"}} {
		rule, ok := lib.Compatibility(pair[0], pair[1])
		if !ok {
			t.Fatalf("Compatibility(%q, %q) not found", pair[0], pair[1])
		}
		if rule.Relation != types.RelationCompatible {
			t.Errorf("relation = %q, want compatible", rule.Relation)
		}
	}

	if _, ok := lib.Compatibility("Modularity", "Nothing"); ok {
		t.Error("Compatibility returned a rule for an undeclared pair")
	}
}
