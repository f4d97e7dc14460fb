// internal/models/acoustic.go
package models

// FrequencyBands are the six octave bands (Hz) the calculator models.
var FrequencyBands = []int{125, 250, 500, 1000, 2000, 4000}

// AcousticProfile is the derived acoustic character of a solution, combined
// from its materials and optionally adjusted for a room and noise profile.
type AcousticProfile struct {
	STCRating         float64         `json:"stc_rating"`
	Density           float64         `json:"density"`
	Thickness         float64         `json:"thickness"`
	Absorption        BandValues      `json:"absorption"`
	Damping           float64         `json:"damping"`
	Decoupling        float64         `json:"decoupling"`
	FrequencyResponse map[int]float64 `json:"frequency_response"` // band -> 0..1
	TransmissionLoss  map[int]float64 `json:"transmission_loss"`  // band -> dB
}

// MeanAbsorption averages the three absorption bands.
func (p AcousticProfile) MeanAbsorption() float64 {
	return (p.Absorption.Low + p.Absorption.Mid + p.Absorption.High) / 3
}
