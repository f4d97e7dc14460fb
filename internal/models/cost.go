// internal/models/cost.go
package models

// CostItem is the derived purchase line for one material on one surface.
// Quantity is a whole number of purchasable units, always rounded up.
type CostItem struct {
	Material  string  `json:"material"`
	Quantity  int     `json:"quantity"`
	UnitCost  float64 `json:"unit_cost"`
	TotalCost float64 `json:"total_cost"`
}

// CostBreakdown is the per-surface materials and labor estimate. Derived,
// recomputed per request and cache-eligible.
type CostBreakdown struct {
	Surface       SurfaceType `json:"surface"`
	Solution      string      `json:"solution,omitempty"`
	Items         []CostItem  `json:"items"`
	MaterialsCost float64     `json:"materials_cost"`
	LaborCost     float64     `json:"labor_cost"`
	TotalCost     float64     `json:"total_cost"`
}

// CostSummary aggregates breakdowns across treated surfaces.
type CostSummary struct {
	Surfaces  []CostBreakdown `json:"surfaces"`
	TotalCost float64         `json:"total_cost"`
}

// Add appends a breakdown and keeps the running total.
func (s *CostSummary) Add(b CostBreakdown) {
	s.Surfaces = append(s.Surfaces, b)
	s.TotalCost += b.TotalCost
}
