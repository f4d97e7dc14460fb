// internal/models/solution.go
package models

// Variant selects the build-up flavor of a solution. SP15 variants add a
// soundboard layer: two plasterboard layers and a fixed STC bonus instead of
// a separate solution subtype.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantSP15     Variant = "sp15"
)

// STC points added by the SP15 upgrade.
const sp15Bonus = 4

// FrequencyRange is the band a solution is effective across, in Hz.
type FrequencyRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// SolutionMaterial references a catalog material with per-solution overrides.
type SolutionMaterial struct {
	Name     string  `json:"name"`
	Coverage float64 `json:"coverage,omitempty"` // 0 means use the catalog value
	Layers   int     `json:"layers,omitempty"`   // 0 means variant-dependent default
}

// Solution is a named constructive recipe for one surface type. Immutable at
// calculation time; scoring works on defensive copies.
type Solution struct {
	CodeName               string             `json:"code_name"`
	DisplayName            string             `json:"display_name"`
	SurfaceType            SurfaceType        `json:"surface_type"`
	Materials              []SolutionMaterial `json:"materials"`
	LaborRate              float64            `json:"labor_rate,omitempty"` // 0 means configured default
	SoundReduction         float64            `json:"sound_reduction"`
	STCRating              float64            `json:"stc_rating"`
	FrequencyRange         FrequencyRange     `json:"frequency_range"`
	Variant                Variant            `json:"variant,omitempty"`
	InstallationComplexity int                `json:"installation_complexity"` // 1..10
	Features               []string           `json:"features,omitempty"`
	Classification         string             `json:"classification,omitempty"` // "impact" or "airborne"

	// Measured curves from the catalog. When present they take precedence
	// over STC-derived synthesis.
	FrequencyResponse map[int]float64 `json:"frequency_response,omitempty"`
	TransmissionLoss  map[int]float64 `json:"transmission_loss,omitempty"`
}

// EffectiveSTC returns the rating including the variant bonus.
func (s *Solution) EffectiveSTC() float64 {
	if s.Variant == VariantSP15 {
		return s.STCRating + sp15Bonus
	}
	return s.STCRating
}

// PlasterboardLayers returns the layer count the variant implies.
func (s *Solution) PlasterboardLayers() int {
	if s.Variant == VariantSP15 {
		return 2
	}
	return 1
}

// Clone returns a deep copy. Taken before any scoring step that adjusts a
// rating field, so the catalog copy stays pristine.
func (s *Solution) Clone() *Solution {
	cp := *s

	cp.Materials = make([]SolutionMaterial, len(s.Materials))
	copy(cp.Materials, s.Materials)

	cp.Features = make([]string, len(s.Features))
	copy(cp.Features, s.Features)

	if s.FrequencyResponse != nil {
		cp.FrequencyResponse = make(map[int]float64, len(s.FrequencyResponse))
		for k, v := range s.FrequencyResponse {
			cp.FrequencyResponse[k] = v
		}
	}
	if s.TransmissionLoss != nil {
		cp.TransmissionLoss = make(map[int]float64, len(s.TransmissionLoss))
		for k, v := range s.TransmissionLoss {
			cp.TransmissionLoss[k] = v
		}
	}

	return &cp
}
