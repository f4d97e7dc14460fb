// internal/models/material.go
package models

// BandValues holds low/mid/high band coefficients in [0,1].
type BandValues struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// Material is one catalog record. Records are immutable once loaded; the
// catalog owns them and hands out copies.
//
// Coverage is the area (or length) one unit covers in the cost calculation.
// The acoustic combiner reuses the same field as its aggregation weight;
// results depend on that sharing, so do not split the field.
type Material struct {
	Name            string     `json:"name"`
	UnitCost        float64    `json:"cost"`
	Coverage        float64    `json:"coverage"`
	Density         float64    `json:"density"`
	Thickness       float64    `json:"thickness"`
	Absorption      BandValues `json:"absorption"`
	Damping         float64    `json:"damping"`
	Decoupling      float64    `json:"decoupling"`
	STCContribution float64    `json:"stc_rating"`
}

// EmptyMaterial is the default profile returned for an unknown name. Callers
// get a usable zero record, never an exception.
func EmptyMaterial(name string) Material {
	return Material{Name: name}
}
