// internal/models/noise.go
package models

import (
	"strings"

	"soundproofing-calculator/internal/common/errors"
)

// NoiseType is one of the known noise categories.
type NoiseType string

const (
	NoiseMusic     NoiseType = "music"
	NoiseSpeech    NoiseType = "speech"
	NoiseTV        NoiseType = "tv"
	NoiseTraffic   NoiseType = "traffic"
	NoiseAircraft  NoiseType = "aircraft"
	NoiseFootsteps NoiseType = "footsteps"
	NoiseMachinery NoiseType = "machinery"
)

// NoiseTraits describes the acoustic character of a noise category.
type NoiseTraits struct {
	TypicalLow     float64 // Hz
	TypicalHigh    float64 // Hz
	PeakFrequency  float64 // Hz
	Classification string  // "airborne" or "impact"
}

var noiseTraits = map[NoiseType]NoiseTraits{
	NoiseMusic:     {TypicalLow: 63, TypicalHigh: 4000, PeakFrequency: 125, Classification: "airborne"},
	NoiseSpeech:    {TypicalLow: 125, TypicalHigh: 4000, PeakFrequency: 500, Classification: "airborne"},
	NoiseTV:        {TypicalLow: 80, TypicalHigh: 4000, PeakFrequency: 1000, Classification: "airborne"},
	NoiseTraffic:   {TypicalLow: 50, TypicalHigh: 1000, PeakFrequency: 250, Classification: "airborne"},
	NoiseAircraft:  {TypicalLow: 100, TypicalHigh: 2000, PeakFrequency: 500, Classification: "airborne"},
	NoiseFootsteps: {TypicalLow: 63, TypicalHigh: 500, PeakFrequency: 125, Classification: "impact"},
	NoiseMachinery: {TypicalLow: 31, TypicalHigh: 1000, PeakFrequency: 250, Classification: "impact"},
}

var knownDirections = map[string]struct{}{
	"north": {}, "south": {}, "east": {}, "west": {}, "above": {}, "below": {},
}

// NoiseProfile describes the noise problem stated by the user. Constructed
// per request via NewNoiseProfile; invalid input fails construction instead
// of defaulting.
type NoiseProfile struct {
	Type      NoiseType `json:"type"`
	Intensity int       `json:"intensity"` // 0..10 inclusive
	Direction []string  `json:"direction"`
	Time      []string  `json:"time,omitempty"`
}

// NewNoiseProfile validates and builds a NoiseProfile.
func NewNoiseProfile(noiseType string, intensity int, directions []string, times []string) (*NoiseProfile, error) {
	nt := NoiseType(strings.ToLower(strings.TrimSpace(noiseType)))
	if _, ok := noiseTraits[nt]; !ok {
		return nil, errors.NewInvalidNoiseTypeError(noiseType)
	}
	if intensity < 0 || intensity > 10 {
		return nil, errors.NewInvalidIntensityError(intensity)
	}

	normalized := make([]string, 0, len(directions))
	for _, d := range directions {
		dir := strings.ToLower(strings.TrimSpace(d))
		if _, ok := knownDirections[dir]; !ok {
			return nil, errors.NewInvalidDirectionError(d)
		}
		normalized = append(normalized, dir)
	}

	return &NoiseProfile{
		Type:      nt,
		Intensity: intensity,
		Direction: normalized,
		Time:      times,
	}, nil
}

// Validate re-checks construction invariants. Needed for profiles decoded
// straight from a request body, which bypass NewNoiseProfile.
func (n *NoiseProfile) Validate() error {
	if _, ok := noiseTraits[n.Type]; !ok {
		return errors.NewInvalidNoiseTypeError(string(n.Type))
	}
	if n.Intensity < 0 || n.Intensity > 10 {
		return errors.NewInvalidIntensityError(n.Intensity)
	}
	for _, d := range n.Direction {
		if _, ok := knownDirections[strings.ToLower(strings.TrimSpace(d))]; !ok {
			return errors.NewInvalidDirectionError(d)
		}
	}
	return nil
}

// Traits returns the acoustic character of the profile's noise category.
func (n *NoiseProfile) Traits() NoiseTraits {
	return noiseTraits[n.Type]
}

// AffectedSurfaces derives which surfaces the noise implicates. Horizontal
// directions map to walls, above to the ceiling, below to the floor. Unknown
// directions never reach here; construction rejects them.
func (n *NoiseProfile) AffectedSurfaces() []SurfaceType {
	seen := map[SurfaceType]bool{}
	for _, d := range n.Direction {
		switch strings.ToLower(strings.TrimSpace(d)) {
		case "north", "south", "east", "west":
			seen[SurfaceWalls] = true
		case "above":
			seen[SurfaceCeiling] = true
		case "below":
			seen[SurfaceFloor] = true
		}
	}

	// Stable walls/ceiling/floor order so downstream output is deterministic.
	out := make([]SurfaceType, 0, 3)
	for _, s := range []SurfaceType{SurfaceWalls, SurfaceCeiling, SurfaceFloor} {
		if seen[s] {
			out = append(out, s)
		}
	}
	return out
}
