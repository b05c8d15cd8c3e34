// Package schema validates decoded JSON documents against the small JSON
// Schema subset the reference catalogs use. Validation is pure: the document
// is never mutated, and the first violation is reported with the structural
// path from the document root to the failing node.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Schema is the decoded form of a catalog schema document.
type Schema struct {
	// Type is one of object, array, string, number, boolean. Empty means any.
	Type string `json:"type,omitempty"`

	// Properties maps object field names to their sub-schemas.
	Properties map[string]*Schema `json:"properties,omitempty"`

	// Required lists object fields that must be present.
	Required []string `json:"required,omitempty"`

	// AdditionalProperties constrains object fields not named in Properties:
	// a boolean allows/forbids them, a schema validates each of them.
	AdditionalProperties *Additional `json:"additionalProperties,omitempty"`

	// Items validates every element of an array.
	Items *Schema `json:"items,omitempty"`

	// Enum restricts the value to one of the listed literals.
	Enum []any `json:"enum,omitempty"`

	// AnyOf passes when at least one sub-schema passes; OneOf when exactly one does.
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`

	// Minimum and Maximum bound numeric values.
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// MinItems and MaxItems bound array length.
	MinItems *int `json:"minItems,omitempty"`
	MaxItems *int `json:"maxItems,omitempty"`
}

// Additional models additionalProperties, which JSON Schema allows to be
// either a boolean or a schema.
type Additional struct {
	Allowed bool
	Schema  *Schema
}

// UnmarshalJSON accepts `true`, `false`, or a schema object.
func (a *Additional) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "true" || trimmed == "false" {
		a.Schema = nil
		return json.Unmarshal(data, &a.Allowed)
	}
	a.Allowed = true
	a.Schema = &Schema{}
	return json.Unmarshal(data, a.Schema)
}

// Parse decodes a schema document.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return &s, nil
}

// ValidationError is the first violation found in a document. Composite
// failures (anyOf/oneOf) carry the sub-schema failure messages as context.
type ValidationError struct {
	// Path is the sequence of keys and [indices] from the document root to
	// the failing node. Empty for a root-level failure.
	Path []string

	// Message describes the violation.
	Message string

	// Context holds sub-failure messages for composite violations.
	Context []string
}

func (e *ValidationError) Error() string {
	loc := JoinPath(e.Path)
	if len(e.Context) > 0 {
		return fmt.Sprintf("%s: %s (%s)", loc, e.Message, strings.Join(e.Context, "; "))
	}
	return fmt.Sprintf("%s: %s", loc, e.Message)
}

// JoinPath renders a structural path in dotted form, with array indices
// attached to their parent segment ("rules[2].relation"). The root is "$".
func JoinPath(path []string) string {
	var b strings.Builder
	b.WriteString("$")
	for _, seg := range path {
		if !strings.HasPrefix(seg, "[") {
			b.WriteString(".")
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Validate checks a decoded JSON tree against s.
func Validate(doc any, s *Schema) error {
	return validate(doc, s, nil)
}

func validate(doc any, s *Schema, path []string) error {
	if s == nil {
		return nil
	}

	if len(s.Enum) > 0 {
		if err := validateEnum(doc, s, path); err != nil {
			return err
		}
	}

	if len(s.AnyOf) > 0 {
		if err := validateComposite(doc, s.AnyOf, path, false); err != nil {
			return err
		}
	}
	if len(s.OneOf) > 0 {
		if err := validateComposite(doc, s.OneOf, path, true); err != nil {
			return err
		}
	}

	switch s.Type {
	case "":
		return nil
	case "object":
		obj, ok := doc.(map[string]any)
		if !ok {
			return fail(path, "expected object, got %s", typeName(doc))
		}
		return validateObject(obj, s, path)
	case "array":
		arr, ok := doc.([]any)
		if !ok {
			return fail(path, "expected array, got %s", typeName(doc))
		}
		return validateArray(arr, s, path)
	case "string":
		if _, ok := doc.(string); !ok {
			return fail(path, "expected string, got %s", typeName(doc))
		}
		return nil
	case "number":
		n, ok := asNumber(doc)
		if !ok {
			return fail(path, "expected number, got %s", typeName(doc))
		}
		if s.Minimum != nil && n < *s.Minimum {
			return fail(path, "value %v below minimum %v", n, *s.Minimum)
		}
		if s.Maximum != nil && n > *s.Maximum {
			return fail(path, "value %v above maximum %v", n, *s.Maximum)
		}
		return nil
	case "boolean":
		if _, ok := doc.(bool); !ok {
			return fail(path, "expected boolean, got %s", typeName(doc))
		}
		return nil
	default:
		return fail(path, "schema declares unknown type %q", s.Type)
	}
}

func validateObject(obj map[string]any, s *Schema, path []string) error {
	for _, req := range s.Required {
		if _, ok := obj[req]; !ok {
			return fail(path, "missing required field %q", req)
		}
	}

	// Deterministic traversal so the first reported violation is stable.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		child := childPath(path, k)
		if sub, ok := s.Properties[k]; ok {
			if err := validate(obj[k], sub, child); err != nil {
				return err
			}
			continue
		}
		if s.AdditionalProperties == nil {
			continue
		}
		if s.AdditionalProperties.Schema != nil {
			if err := validate(obj[k], s.AdditionalProperties.Schema, child); err != nil {
				return err
			}
			continue
		}
		if !s.AdditionalProperties.Allowed {
			return fail(path, "unexpected field %q", k)
		}
	}
	return nil
}

func validateArray(arr []any, s *Schema, path []string) error {
	if s.MinItems != nil && len(arr) < *s.MinItems {
		return fail(path, "array has %d items, needs at least %d", len(arr), *s.MinItems)
	}
	if s.MaxItems != nil && len(arr) > *s.MaxItems {
		return fail(path, "array has %d items, allows at most %d", len(arr), *s.MaxItems)
	}
	if s.Items == nil {
		return nil
	}
	for i, el := range arr {
		if err := validate(el, s.Items, childPath(path, fmt.Sprintf("[%d]", i))); err != nil {
			return err
		}
	}
	return nil
}

func validateEnum(doc any, s *Schema, path []string) error {
	for _, allowed := range s.Enum {
		if reflect.DeepEqual(doc, allowed) {
			return nil
		}
	}
	return fail(path, "value %v not in enum %v", doc, s.Enum)
}

func validateComposite(doc any, subs []*Schema, path []string, exactlyOne bool) error {
	var matches int
	var context []string
	for i, sub := range subs {
		if err := validate(doc, sub, path); err != nil {
			context = append(context, fmt.Sprintf("option %d: %v", i+1, err))
		} else {
			matches++
		}
	}
	if matches == 0 {
		e := fail(path, "matches none of %d sub-schemas", len(subs))
		e.Context = context
		return e
	}
	if exactlyOne && matches > 1 {
		return fail(path, "matches %d sub-schemas, expected exactly one", matches)
	}
	return nil
}

func fail(path []string, format string, args ...any) *ValidationError {
	return &ValidationError{
		Path:    append([]string(nil), path...),
		Message: fmt.Sprintf(format, args...),
	}
}

func childPath(path []string, seg string) []string {
	return append(path[:len(path):len(path)], seg)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func typeName(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64, int, json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
