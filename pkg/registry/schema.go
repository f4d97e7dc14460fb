// pkg/registry/schema.go
package registry

import "soundproofing-calculator/internal/models"

// SolutionRegistry is the on-disk catalog overlay. Operators drop a JSON
// file next to the config to extend or replace the embedded solution set
// without a redeploy.
type SolutionRegistry struct {
	Version     string            `json:"version"`
	LastUpdated string            `json:"lastUpdated"`
	Solutions   []models.Solution `json:"solutions"`
}

// registrySchema validates the structural shape of a registry file before
// it is unmarshalled into domain types.
const registrySchema = `{
	"type": "object",
	"required": ["version", "solutions"],
	"properties": {
		"version":     {"type": "string"},
		"lastUpdated": {"type": "string"},
		"solutions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["code_name", "display_name", "surface_type", "materials", "stc_rating"],
				"properties": {
					"code_name":    {"type": "string", "minLength": 1},
					"display_name": {"type": "string", "minLength": 1},
					"surface_type": {"enum": ["walls", "ceiling", "floor"]},
					"materials": {
						"type": "array",
						"minItems": 1,
						"items": {
							"type": "object",
							"required": ["name"],
							"properties": {
								"name":     {"type": "string", "minLength": 1},
								"coverage": {"type": "number", "minimum": 0},
								"layers":   {"type": "integer", "minimum": 0}
							}
						}
					},
					"labor_rate":              {"type": "number", "minimum": 0, "maximum": 1},
					"sound_reduction":         {"type": "number", "minimum": 0},
					"stc_rating":              {"type": "number", "minimum": 0},
					"variant":                 {"enum": ["standard", "sp15"]},
					"installation_complexity": {"type": "integer", "minimum": 1, "maximum": 10},
					"classification":          {"enum": ["impact", "airborne"]}
				}
			}
		}
	}
}`
