// internal/models/recommendation.go
package models

// RankedSolution pairs a scored candidate with its component scores.
type RankedSolution struct {
	Solution *Solution          `json:"solution"`
	Score    float64            `json:"score"`
	Details  map[string]float64 `json:"details,omitempty"`
}

// Recommendation is the output of one request. Never mutated after
// construction.
type Recommendation struct {
	RequestID    string                           `json:"request_id"`
	Primary      map[SurfaceType][]RankedSolution `json:"primary"`
	Alternatives []RankedSolution                 `json:"alternatives"`
	Reasoning    []string                         `json:"reasoning"`
	Costs        *CostSummary                     `json:"costs,omitempty"`
}
