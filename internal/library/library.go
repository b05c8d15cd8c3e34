// Package library loads and serves the reference library: the principle
// catalog, distribution patterns, and compatibility rules. The library is
// immutable after load and safe to share across concurrent readers.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/echopraxium/syslang/embedded"
	"github.com/echopraxium/syslang/internal/schema"
	"github.com/echopraxium/syslang/internal/types"
)

// Catalog file names, identical for the embedded library and on-disk overrides.
const (
	PrinciplesFile    = "principles.json"
	PatternsFile      = "patterns.json"
	CompatibilityFile = "compatibility.json"
)

// CategoryInfo pairs a category name with its description for ordered listing.
type CategoryInfo struct {
	Name        string
	Description string
}

// Library is the loaded reference library. Read-only after construction.
type Library struct {
	categories map[string]string
	principles map[string]types.PrincipleDef
	patterns   map[string]types.PatternDef
	rules      []types.CompatibilityRule
}

// LoadEmbedded loads the catalogs bundled into the binary. A corrupt embedded
// library is a build defect, so errors here are fatal to the caller.
func LoadEmbedded() (*Library, error) {
	sub, err := fs.Sub(embedded.Data, "data")
	if err != nil {
		return nil, fmt.Errorf("embedded library: %w", err)
	}
	return load(sub)
}

// Load loads replacement catalogs from a directory. All three catalog files
// must be present; each is schema-validated before use.
func Load(dir string) (*Library, error) {
	return load(os.DirFS(dir))
}

func load(fsys fs.FS) (*Library, error) {
	lib := &Library{
		categories: make(map[string]string),
		principles: make(map[string]types.PrincipleDef),
		patterns:   make(map[string]types.PatternDef),
	}

	var principlesDoc struct {
		Categories map[string]string             `json:"categories"`
		Principles map[string]types.PrincipleDef `json:"principles"`
	}
	if err := loadCatalog(fsys, PrinciplesFile, "principles_schema.json", &principlesDoc); err != nil {
		return nil, err
	}
	lib.categories = principlesDoc.Categories
	for name, def := range principlesDoc.Principles {
		def.Name = name
		lib.principles[name] = def
	}

	var patternsDoc struct {
		DistributionPatterns map[string]types.PatternDef `json:"distribution_patterns"`
	}
	if err := loadCatalog(fsys, PatternsFile, "patterns_schema.json", &patternsDoc); err != nil {
		return nil, err
	}
	for name, def := range patternsDoc.DistributionPatterns {
		def.Name = name
		if _, ok := lib.principles[def.ParentPrinciple]; !ok {
			return nil, fmt.Errorf("%s: pattern %q parent %q: %w",
				PatternsFile, name, def.ParentPrinciple, ErrUnknownParent)
		}
		lib.patterns[name] = def
	}

	var compatDoc struct {
		CompatibilityRules []types.CompatibilityRule `json:"compatibility_rules"`
	}
	if err := loadCatalog(fsys, CompatibilityFile, "compatibility_schema.json", &compatDoc); err != nil {
		return nil, err
	}
	lib.rules = compatDoc.CompatibilityRules

	return lib, nil
}

// loadCatalog reads one catalog file, validates it against its companion
// schema, and decodes it into out. A corrupt catalog aborts the load.
func loadCatalog(fsys fs.FS, name, schemaName string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", name, ErrCatalogMissing)
		}
		return fmt.Errorf("read %s: %w", name, err)
	}

	schemaData, err := embedded.Schemas.ReadFile("schemas/" + schemaName)
	if err != nil {
		return fmt.Errorf("read schema %s: %w", schemaName, err)
	}
	s, err := schema.Parse(schemaData)
	if err != nil {
		return fmt.Errorf("%s: %w", schemaName, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if err := schema.Validate(doc, s); err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Principle looks up a principle definition by name.
func (l *Library) Principle(name string) (types.PrincipleDef, bool) {
	def, ok := l.principles[name]
	return def, ok
}

// Pattern looks up a distribution pattern by name.
func (l *Library) Pattern(name string) (types.PatternDef, bool) {
	def, ok := l.patterns[name]
	return def, ok
}

// canonicalCategories fixes the listing order of the built-in categories.
var canonicalCategories = []types.Category{
	types.CategoryStructure,
	types.CategoryOperator,
	types.CategoryDynamics,
	types.CategoryInformation,
}

// Categories returns the categories in canonical order (Structure, Operator,
// Dynamics, Information), with any non-canonical categories sorted after.
func (l *Library) Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(l.categories))
	seen := make(map[string]bool, len(l.categories))
	for _, c := range canonicalCategories {
		if desc, ok := l.categories[string(c)]; ok {
			out = append(out, CategoryInfo{Name: string(c), Description: desc})
			seen[string(c)] = true
		}
	}
	var extra []string
	for name := range l.categories {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		out = append(out, CategoryInfo{Name: name, Description: l.categories[name]})
	}
	return out
}

// PrinciplesInCategory returns the names of the category's principles in
// lexicographic order.
func (l *Library) PrinciplesInCategory(category string) []string {
	var names []string
	for name, def := range l.principles {
		if string(def.Category) == category {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// PatternNames returns all distribution pattern names in lexicographic order.
func (l *Library) PatternNames() []string {
	names := make([]string, 0, len(l.patterns))
	for name := range l.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compatibility returns the rule relating a and b, if one is declared.
// Rules are symmetric: the stored orientation does not matter.
func (l *Library) Compatibility(a, b string) (types.CompatibilityRule, bool) {
	for _, rule := range l.rules {
		if len(rule.Principles) != 2 {
			continue
		}
		x, y := rule.Principles[0], rule.Principles[1]
		if (x == a && y == b) || (x == b && y == a) {
			return rule, true
		}
	}
	return types.CompatibilityRule{}, false
}

// Rules returns a copy of all compatibility rules.
func (l *Library) Rules() []types.CompatibilityRule {
	return append([]types.CompatibilityRule(nil), l.rules...)
}
