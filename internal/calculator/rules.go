// internal/calculator/rules.go
package calculator

import "strings"

// RuleKind is the closed set of quantity rule categories. Materials resolve
// to exactly one rule at catalog-load time; dispatch is a switch, not string
// comparison scattered across call sites.
type RuleKind int

const (
	RuleDefault RuleKind = iota
	RuleAreaWithWastage
	RulePerimeterBased
	RuleSpacingBased
	RuleFixedMinimum
)

// QuantityRule is a tagged variant; only the fields of its kind are set.
type QuantityRule struct {
	Kind RuleKind

	Layers int // AreaWithWastage: default layer count (solution may override)

	Spacing        float64 // SpacingBased: fixture spacing in meters
	ExtraAllowance float64 // SpacingBased: multiplier for corners/edges (1.0 = none)

	Minimum int     // FixedMinimum: floor for the unit count
	PerArea float64 // FixedMinimum: units per square meter
}

// ruleTable maps material name patterns to rules. First match wins; matching
// is case-insensitive substring.
var ruleTable = []struct {
	pattern string
	rule    QuantityRule
}{
	// Layered area materials carry the wastage multiplier.
	{"plasterboard", QuantityRule{Kind: RuleAreaWithWastage, Layers: 1}},
	{"soundboard", QuantityRule{Kind: RuleAreaWithWastage, Layers: 1}},
	{"mineral wool", QuantityRule{Kind: RuleAreaWithWastage, Layers: 1}},
	{"rockwool", QuantityRule{Kind: RuleAreaWithWastage, Layers: 1}},

	// Sealants and tapes run the perimeter.
	{"sealant", QuantityRule{Kind: RulePerimeterBased}},
	{"mastic", QuantityRule{Kind: RulePerimeterBased}},
	{"tape", QuantityRule{Kind: RulePerimeterBased}},

	// Fixing systems are spaced along the span. Clip systems get a 10%
	// allowance for corners and edges.
	{"resilient bar", QuantityRule{Kind: RuleSpacingBased, Spacing: 0.4, ExtraAllowance: 1.0}},
	{"furring channel", QuantityRule{Kind: RuleSpacingBased, Spacing: 0.4, ExtraAllowance: 1.0}},
	{"clip", QuantityRule{Kind: RuleSpacingBased, Spacing: 0.6, ExtraAllowance: 1.10}},

	// Screws come boxed; one box covers any single surface.
	{"screw", QuantityRule{Kind: RuleFixedMinimum, Minimum: 1, PerArea: 0}},
}

// ResolveRule picks the quantity rule for a material name.
func ResolveRule(name string) QuantityRule {
	lower := strings.ToLower(name)
	for _, entry := range ruleTable {
		if strings.Contains(lower, entry.pattern) {
			return entry.rule
		}
	}
	return QuantityRule{Kind: RuleDefault}
}
