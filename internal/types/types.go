// Package types defines the data structures shared across the syslang pipeline.
package types

// Category classifies a principle in the reference library.
type Category string

const (
	// CategoryStructure covers spatial/organizational patterns (Modularity, Hierarchy...).
	CategoryStructure Category = "Structure"

	// CategoryOperator covers transformational patterns applied to other principles.
	CategoryOperator Category = "Operator"

	// CategoryDynamics covers temporal/behavioral patterns (Feedback, Homeostasis...).
	CategoryDynamics Category = "Dynamics"

	// CategoryInformation covers signaling and encoding patterns.
	CategoryInformation Category = "Information"
)

// ParameterSpec describes one parameter a principle or pattern accepts.
type ParameterSpec struct {
	// Description is the human-readable meaning of the parameter.
	Description string `json:"description"`

	// Values, when present, enumerates the allowed values.
	Values []string `json:"values,omitempty"`
}

// PrincipleDef is a reference-library principle definition. Immutable after load.
type PrincipleDef struct {
	// Name is the unique principle key (set from the catalog map key on load).
	Name string `json:"-"`

	// Description is the one-line summary shown in listings.
	Description string `json:"description"`

	// Category is the single category the principle belongs to.
	Category Category `json:"category"`

	// Parameters is the schema of parameters a model may supply.
	Parameters map[string]ParameterSpec `json:"parameters,omitempty"`

	// HypothesisTemplate is a string with {param}-style placeholders.
	// Placeholders must reference a declared parameter or the literal "threshold".
	HypothesisTemplate string `json:"hypothesis_template,omitempty"`

	// DefaultThreshold substitutes an unresolved {threshold} placeholder.
	// Numeric or descriptive (e.g. "bimodal distribution").
	DefaultThreshold any `json:"default_threshold,omitempty"`

	// MetaPrinciple marks principles that operate on other principles.
	MetaPrinciple bool `json:"meta_principle,omitempty"`

	// Operator marks transformational principles.
	Operator bool `json:"operator,omitempty"`
}

// PatternDef is a distribution pattern: a specialization of a parent principle.
type PatternDef struct {
	// Name is the unique pattern key (set from the catalog map key on load).
	Name string `json:"-"`

	// Description is the one-line summary shown in listings.
	Description string `json:"description"`

	// ParentPrinciple must name an existing PrincipleDef.
	ParentPrinciple string `json:"parent_principle"`

	// SpecificParameters narrows the parent's parameter schema.
	SpecificParameters map[string]ParameterSpec `json:"specific_parameters,omitempty"`
}

// Relation is the declared compatibility between two principles or patterns.
type Relation string

const (
	// RelationCompatible means the pair reinforces or coexists cleanly.
	RelationCompatible Relation = "compatible"

	// RelationIncompatible means the pair conflicts structurally.
	RelationIncompatible Relation = "incompatible"

	// RelationConditional means compatibility depends on a stated condition.
	RelationConditional Relation = "conditional"
)

// CompatibilityRule relates a pair of principle or pattern names.
// Rules are symmetric: a rule for (A, B) also covers (B, A).
type CompatibilityRule struct {
	// Principles is the pair of names the rule relates.
	Principles []string `json:"principles"`

	// Relation is one of compatible, incompatible, conditional.
	Relation Relation `json:"relation"`

	// Condition explains when a conditional pair is compatible.
	Condition string `json:"condition,omitempty"`
}

// Principle is a principle declared by a system model, with concrete
// parameter values. Unknown names are legal and degrade hypothesis quality.
type Principle struct {
	// Name is the declared principle name (free text).
	Name string `yaml:"name"`

	// Parameters maps parameter names to model-supplied values.
	Parameters map[string]any `yaml:"parameters,omitempty"`

	// Confidence is the modeler's confidence in [0,1]. Defaults to 1.0.
	Confidence float64 `yaml:"confidence"`
}

// SystemModel is the canonical in-memory form of one model document.
type SystemModel struct {
	// Name is the system name.
	Name string `yaml:"name"`

	// Domain is the discipline the system belongs to (e.g. "biology").
	Domain string `yaml:"domain"`

	// Scale is the system's characteristic scale (e.g. "organism").
	Scale string `yaml:"scale"`

	// Description is free-text prose about the system.
	Description string `yaml:"description"`

	// Principles are the declared principles, in declaration order.
	Principles []Principle `yaml:"principles"`

	// Components and Relations are opaque pass-through structures; the core
	// does not interpret them.
	Components []map[string]any `yaml:"components"`
	Relations  []map[string]any `yaml:"relations"`

	// Tests is the optional free-form test section (refutable, metrics, limits).
	Tests map[string]any `yaml:"tests"`
}

// Hypothesis is one synthesized, falsifiable statement. Created fresh per
// analysis run, never persisted.
type Hypothesis struct {
	// Principle is the declared principle name the hypothesis derives from.
	Principle string `json:"principle"`

	// Description is the hypothesis statement.
	Description string `json:"description"`

	// Test is the suggested test procedure, when the principle is curated.
	Test string `json:"test,omitempty"`

	// Metric is the machine-checkable metric name, when curated.
	Metric string `json:"metric,omitempty"`

	// Threshold is the metric threshold: a value or a descriptive range.
	Threshold string `json:"threshold,omitempty"`

	// Unresolved lists template placeholders that had no matching parameter
	// and no default. The placeholders remain literal in Description.
	Unresolved []string `json:"unresolved,omitempty"`
}
