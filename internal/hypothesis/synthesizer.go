// Package hypothesis synthesizes falsifiable hypotheses from a model's
// declared principles and the reference library. Synthesis never fails:
// unknown principles degrade to a generic hypothesis instead of erroring.
package hypothesis

import (
	"fmt"
	"strings"

	"github.com/echopraxium/syslang/internal/library"
	"github.com/echopraxium/syslang/internal/types"
)

// thresholdPlaceholder is the one placeholder resolvable from the library
// definition rather than from model parameters.
const thresholdPlaceholder = "threshold"

// metricSpec is a machine-checkable test attached to a curated principle.
type metricSpec struct {
	Metric    string
	Threshold string
	Test      string
}

// curatedMetrics maps well-known principle names to structured metrics.
// Principles outside this mapping get narrative-only hypotheses from the
// library template mechanism.
var curatedMetrics = map[string]metricSpec{
	"Modularity": {
		Metric:    "modularity_index",
		Threshold: "0.3",
		Test:      "Partition the interaction graph and compare intra-module to inter-module link density",
	},
	"Bus": {
		Metric:    "connection_ratio",
		Threshold: "0.5",
		Test:      "Measure the share of inter-component traffic passing through the shared medium",
	},
	"Hierarchy": {
		Metric:    "hierarchy_depth",
		Threshold: "2-4 levels",
		Test:      "Count control levels from the top authority down to leaf components",
	},
	"Polarity": {
		Metric:    "polarity_index",
		Threshold: "bimodal distribution",
		Test:      "Plot the component distribution along the declared axis and test for two modes",
	},
}

// Synthesize produces one hypothesis per declared principle, in declaration
// order. Duplicate declarations produce duplicate hypotheses.
func Synthesize(m *types.SystemModel, lib *library.Library) []types.Hypothesis {
	out := make([]types.Hypothesis, 0, len(m.Principles))
	for _, p := range m.Principles {
		out = append(out, synthesizeOne(p, lib))
	}
	return out
}

func synthesizeOne(p types.Principle, lib *library.Library) types.Hypothesis {
	h := types.Hypothesis{Principle: p.Name}

	def, known := lib.Principle(p.Name)
	if !known || def.HypothesisTemplate == "" {
		h.Description = fmt.Sprintf("System should exhibit %s characteristics", p.Name)
		if !known {
			return h
		}
	} else {
		h.Description, h.Unresolved = resolve(def, p.Parameters)
	}

	if spec, ok := curatedMetrics[p.Name]; ok {
		h.Metric = spec.Metric
		h.Threshold = spec.Threshold
		h.Test = spec.Test
	}
	return h
}

// resolve substitutes {param} placeholders with model-supplied values, falls
// back to the definition's default for {threshold}, and leaves anything else
// literal, reporting the unresolved names.
func resolve(def types.PrincipleDef, params map[string]any) (string, []string) {
	var b strings.Builder
	var unresolved []string

	for _, tok := range tokenize(def.HypothesisTemplate) {
		if !tok.placeholder {
			b.WriteString(tok.text)
			continue
		}
		if v, ok := params[tok.text]; ok {
			b.WriteString(formatValue(v))
			continue
		}
		if tok.text == thresholdPlaceholder && def.DefaultThreshold != nil {
			b.WriteString(formatValue(def.DefaultThreshold))
			continue
		}
		b.WriteString("{" + tok.text + "}")
		unresolved = append(unresolved, tok.text)
	}
	return b.String(), unresolved
}

// Conflict is a declared principle pair the compatibility catalog flags.
type Conflict struct {
	// A and B are the declared principle names, in declaration order.
	A, B string

	// Relation is incompatible or conditional.
	Relation types.Relation

	// Condition explains when a conditional pair is acceptable.
	Condition string
}

// Conflicts cross-references the model's declared principles against the
// compatibility catalog and returns the pairs declared incompatible or
// conditional. Each distinct pair is reported once.
func Conflicts(m *types.SystemModel, lib *library.Library) []Conflict {
	var out []Conflict
	seen := make(map[string]bool)

	for i := 0; i < len(m.Principles); i++ {
		for j := i + 1; j < len(m.Principles); j++ {
			a, b := m.Principles[i].Name, m.Principles[j].Name
			if a == b {
				continue
			}
			key := pairKey(a, b)
			if seen[key] {
				continue
			}
			seen[key] = true

			rule, ok := lib.Compatibility(a, b)
			if !ok || rule.Relation == types.RelationCompatible {
				continue
			}
			out = append(out, Conflict{
				A:         a,
				B:         b,
				Relation:  rule.Relation,
				Condition: rule.Condition,
			})
		}
	}
	return out
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}
