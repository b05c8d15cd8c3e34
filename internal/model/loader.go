// Package model loads and saves syslang system model documents, normalizing
// them into the canonical in-memory representation. Every default is applied
// here, once, so downstream components never see missing fields.
package model

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/echopraxium/syslang/embedded"
	"github.com/echopraxium/syslang/internal/schema"
	"github.com/echopraxium/syslang/internal/types"
)

// Defaults applied during normalization.
const (
	DefaultName       = "Unnamed System"
	DefaultDomain     = "unspecified"
	DefaultScale      = "unspecified"
	DefaultConfidence = 1.0
)

// Load parses a model document and normalizes it. YAML syntax errors
// propagate from the decoder with their line information intact.
func Load(r io.Reader) (*types.SystemModel, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}

	doc, ok := root.(map[string]any)
	if !ok {
		return nil, ErrNotAMapping
	}

	system, ok := doc["system"].(map[string]any)
	if !ok || len(system) == 0 {
		return nil, ErrMissingSystem
	}

	m := &types.SystemModel{
		Name:        stringField(system, "name", DefaultName),
		Domain:      stringField(system, "domain", DefaultDomain),
		Scale:       stringField(system, "scale", DefaultScale),
		Description: stringField(system, "description", ""),
		Principles:  loadPrinciples(doc["principles"]),
		Components:  mapSlice(doc["components"]),
		Relations:   mapSlice(doc["relations"]),
		Tests:       mapField(doc["tests"]),
	}
	return m, nil
}

// LoadFile loads a model document from disk, tagging errors with the path.
func LoadFile(path string) (*types.SystemModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// loadPrinciples normalizes the principles sequence, preserving declaration
// order and duplicates. Entries without a name are skipped: partially
// specified documents are legal during iterative authoring.
func loadPrinciples(v any) []types.Principle {
	entries, ok := v.([]any)
	if !ok {
		return nil
	}

	var out []types.Principle
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		name, ok := entry["name"].(string)
		if !ok || name == "" {
			continue
		}

		p := types.Principle{
			Name:       name,
			Parameters: mapField(entry["parameters"]),
			Confidence: DefaultConfidence,
		}
		if c, ok := floatField(entry["confidence"]); ok {
			p.Confidence = c
		}
		out = append(out, p)
	}
	return out
}

// ValidateDocument checks raw document text against the bundled model schema.
// Non-fatal: callers report the violation and decide whether to continue.
func ValidateDocument(data []byte) error {
	schemaData, err := embedded.Schemas.ReadFile("schemas/model_schema.json")
	if err != nil {
		return fmt.Errorf("read model schema: %w", err)
	}
	s, err := schema.Parse(schemaData)
	if err != nil {
		return fmt.Errorf("model schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse model: %w", err)
	}
	return schema.Validate(doc, s)
}

// savedSystem mirrors the system section on save. All four fields are always
// written, matching what Load accepts.
type savedSystem struct {
	Name        string `yaml:"name"`
	Domain      string `yaml:"domain"`
	Scale       string `yaml:"scale"`
	Description string `yaml:"description"`
}

type savedPrinciple struct {
	Name       string         `yaml:"name"`
	Parameters map[string]any `yaml:"parameters,omitempty"`
	Confidence *float64       `yaml:"confidence,omitempty"`
}

type savedDocument struct {
	System     savedSystem      `yaml:"system"`
	Principles []savedPrinciple `yaml:"principles,omitempty"`
	Components []map[string]any `yaml:"components,omitempty"`
	Relations  []map[string]any `yaml:"relations,omitempty"`
	Tests      map[string]any   `yaml:"tests,omitempty"`
}

// Save writes the model as a document. Structural inverse of Load: empty
// optional sections are omitted entirely, and confidence is omitted when it
// equals the default 1.0.
func Save(w io.Writer, m *types.SystemModel) error {
	doc := savedDocument{
		System: savedSystem{
			Name:        m.Name,
			Domain:      m.Domain,
			Scale:       m.Scale,
			Description: m.Description,
		},
		Components: m.Components,
		Relations:  m.Relations,
		Tests:      m.Tests,
	}

	for _, p := range m.Principles {
		sp := savedPrinciple{Name: p.Name}
		if len(p.Parameters) > 0 {
			sp.Parameters = p.Parameters
		}
		if p.Confidence != DefaultConfidence {
			c := p.Confidence
			sp.Confidence = &c
		}
		doc.Principles = append(doc.Principles, sp)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return enc.Close()
}

// SaveFile writes the model to disk.
func SaveFile(path string, m *types.SystemModel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, m); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func stringField(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return fallback
}

func mapField(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func mapSlice(v any) []map[string]any {
	entries, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []map[string]any
	for _, e := range entries {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func floatField(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
