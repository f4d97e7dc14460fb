// internal/calculator/acoustics.go
package calculator

import (
	"context"
	"math"
	"time"

	"soundproofing-calculator/internal/cache"
	"soundproofing-calculator/internal/common/logger"
	"soundproofing-calculator/internal/models"
)

// Transmission loss offsets per band relative to STC; 500 Hz sits at the
// rating itself. Declared approximation, not measured data.
var transmissionLossOffsets = map[int]float64{
	125:  -10,
	250:  -5,
	500:  0,
	1000: 5,
	2000: 10,
	4000: 15,
}

// Frequency response shape factors per band, scaled by the normalized STC.
var frequencyResponseFactors = map[int]float64{
	125:  0.70,
	250:  0.80,
	500:  0.90,
	1000: 1.00,
	2000: 0.95,
	4000: 0.90,
}

// RoomAcoustics are the reflection/absorption/resonance/reverberation
// characteristics looked up per room type.
type RoomAcoustics struct {
	Reflectivity      float64
	Absorption        float64
	ResonanceLow      float64 // Hz
	ResonanceHigh     float64 // Hz
	Reverberation     float64
	DominantChallenge string // "reflectivity", "reverberation" or "resonance"
}

var defaultRoomAcoustics = RoomAcoustics{
	Reflectivity:      0.30,
	Absorption:        0.20,
	ResonanceLow:      100,
	ResonanceHigh:     250,
	Reverberation:     0.40,
	DominantChallenge: "reflectivity",
}

var roomAcousticsByType = map[string]RoomAcoustics{
	"bedroom":     {Reflectivity: 0.25, Absorption: 0.30, ResonanceLow: 80, ResonanceHigh: 200, Reverberation: 0.30, DominantChallenge: "reflectivity"},
	"living_room": {Reflectivity: 0.30, Absorption: 0.25, ResonanceLow: 80, ResonanceHigh: 250, Reverberation: 0.40, DominantChallenge: "reverberation"},
	"home_office": {Reflectivity: 0.35, Absorption: 0.20, ResonanceLow: 100, ResonanceHigh: 300, Reverberation: 0.45, DominantChallenge: "reflectivity"},
	"home_studio": {Reflectivity: 0.15, Absorption: 0.50, ResonanceLow: 60, ResonanceHigh: 150, Reverberation: 0.20, DominantChallenge: "resonance"},
	"kitchen":     {Reflectivity: 0.45, Absorption: 0.10, ResonanceLow: 120, ResonanceHigh: 350, Reverberation: 0.55, DominantChallenge: "reverberation"},
	"bathroom":    {Reflectivity: 0.55, Absorption: 0.05, ResonanceLow: 150, ResonanceHigh: 400, Reverberation: 0.65, DominantChallenge: "reverberation"},
	"hallway":     {Reflectivity: 0.40, Absorption: 0.10, ResonanceLow: 100, ResonanceHigh: 300, Reverberation: 0.60, DominantChallenge: "resonance"},
}

// RoomAcousticsFor looks up characteristics for a room type, falling back to
// the default profile for unknown or empty types.
func RoomAcousticsFor(roomType string) RoomAcoustics {
	if ra, ok := roomAcousticsByType[roomType]; ok {
		return ra
	}
	return defaultRoomAcoustics
}

// SolutionSource supplies catalog solutions by code name.
type SolutionSource interface {
	Get(ctx context.Context, codeName string) (*models.Solution, error)
}

// AcousticCalculator synthesizes acoustic profiles for solutions.
type AcousticCalculator struct {
	solutions SolutionSource
	materials MaterialSource
	cache     cache.Cache
	logger    logger.Logger

	acousticTTL time.Duration
}

func NewAcousticCalculator(solutions SolutionSource, materials MaterialSource, cch cache.Cache, log logger.Logger, ttl time.Duration) *AcousticCalculator {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &AcousticCalculator{
		solutions:   solutions,
		materials:   materials,
		cache:       cch,
		logger:      log.WithFields(map[string]interface{}{"component": "acoustic-calculator"}),
		acousticTTL: ttl,
	}
}

// CombineMaterialProperties aggregates material properties weighted by each
// material's coverage value. Zero total coverage yields an all-zero profile
// rather than a division by zero. The weighted mean is commutative, so the
// result is independent of material order.
func CombineMaterialProperties(materials []models.Material) models.AcousticProfile {
	var totalWeight float64
	for _, m := range materials {
		totalWeight += m.Coverage
	}
	if totalWeight == 0 {
		return models.AcousticProfile{
			FrequencyResponse: map[int]float64{},
			TransmissionLoss:  map[int]float64{},
		}
	}

	var profile models.AcousticProfile
	for _, m := range materials {
		w := m.Coverage
		profile.STCRating += m.STCContribution * w
		profile.Density += m.Density * w
		profile.Thickness += m.Thickness * w
		profile.Absorption.Low += m.Absorption.Low * w
		profile.Absorption.Mid += m.Absorption.Mid * w
		profile.Absorption.High += m.Absorption.High * w
		profile.Damping += m.Damping * w
		profile.Decoupling += m.Decoupling * w
	}

	profile.STCRating /= totalWeight
	profile.Density /= totalWeight
	profile.Thickness /= totalWeight
	profile.Absorption.Low /= totalWeight
	profile.Absorption.Mid /= totalWeight
	profile.Absorption.High /= totalWeight
	profile.Damping /= totalWeight
	profile.Decoupling /= totalWeight

	profile.FrequencyResponse = DeriveFrequencyResponse(profile.STCRating)
	profile.TransmissionLoss = DeriveTransmissionLoss(profile.STCRating)

	return profile
}

// DeriveTransmissionLoss synthesizes the 6-band loss curve from a scalar STC.
func DeriveTransmissionLoss(stc float64) map[int]float64 {
	out := make(map[int]float64, len(models.FrequencyBands))
	for _, band := range models.FrequencyBands {
		out[band] = stc + transmissionLossOffsets[band]
	}
	return out
}

// DeriveFrequencyResponse synthesizes the 6-band response curve from a scalar
// STC, normalized against a 100-point rating and clamped at 1.0.
func DeriveFrequencyResponse(stc float64) map[int]float64 {
	normalized := stc / 100
	if normalized > 1 {
		normalized = 1
	}
	if normalized < 0 {
		normalized = 0
	}

	out := make(map[int]float64, len(models.FrequencyBands))
	for _, band := range models.FrequencyBands {
		out[band] = frequencyResponseFactors[band] * normalized
	}
	return out
}

// AdjustSTCForRoom applies the room adjustment pipeline to a raw STC rating.
// The four adjustments are a sequential multiplicative pipeline and their
// order is part of the contract: reflectivity, then absorption, then the
// resonance dip, then reverberation.
func AdjustSTCForRoom(stc float64, ra RoomAcoustics, noisePeak float64) float64 {
	stc *= 1 - ra.Reflectivity
	stc *= 1 + ra.Absorption
	if noisePeak >= ra.ResonanceLow && noisePeak <= ra.ResonanceHigh {
		stc *= 0.9
	}
	stc *= 1 - ra.Reverberation*0.5
	return stc
}

// EstimateSTCRating estimates the effective STC of a solution under a noise
// intensity: louder problems erode up to five points off the base rating.
func (c *AcousticCalculator) EstimateSTCRating(ctx context.Context, solutionID string, intensity int) (int, error) {
	solution, err := c.solutions.Get(ctx, solutionID)
	if err != nil {
		return 0, err
	}

	factor := float64(intensity) / 10
	if factor > 1 {
		factor = 1
	}
	stc := solution.EffectiveSTC() - 5*factor
	if stc < 0 {
		stc = 0
	}
	if stc > 100 {
		stc = 100
	}
	return int(stc), nil
}

// resolveMaterials expands a solution's material list into catalog records
// with per-solution coverage overrides applied.
func (c *AcousticCalculator) resolveMaterials(ctx context.Context, solution *models.Solution) ([]models.Material, error) {
	out := make([]models.Material, 0, len(solution.Materials))
	for _, sm := range solution.Materials {
		mat, err := c.materials.Get(ctx, sm.Name)
		if err != nil {
			return nil, err
		}
		if sm.Coverage > 0 {
			mat.Coverage = sm.Coverage
		}
		out = append(out, mat)
	}
	return out, nil
}

// AdjustForRoom derives the solution's acoustic profile adjusted for the room
// and noise under consideration. Measured catalog curves take precedence over
// STC-derived synthesis.
func (c *AcousticCalculator) AdjustForRoom(ctx context.Context, solution *models.Solution, room *models.RoomProfile, noise *models.NoiseProfile) (models.AcousticProfile, error) {
	key := cache.AcousticKey(solution.CodeName, room.RoomType, noise.Type)
	var cached models.AcousticProfile
	if c.cache != nil && c.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	materials, err := c.resolveMaterials(ctx, solution)
	if err != nil {
		return models.AcousticProfile{}, err
	}
	profile := CombineMaterialProperties(materials)

	ra := RoomAcousticsFor(room.RoomType)
	profile.STCRating = AdjustSTCForRoom(solution.EffectiveSTC(), ra, noise.Traits().PeakFrequency)

	if len(solution.FrequencyResponse) > 0 {
		profile.FrequencyResponse = solution.FrequencyResponse
	} else {
		profile.FrequencyResponse = DeriveFrequencyResponse(profile.STCRating)
	}
	if len(solution.TransmissionLoss) > 0 {
		profile.TransmissionLoss = solution.TransmissionLoss
	} else {
		profile.TransmissionLoss = DeriveTransmissionLoss(profile.STCRating)
	}

	c.logger.Debug("acoustic profile adjusted", map[string]interface{}{
		"solution":    solution.CodeName,
		"roomType":    room.RoomType,
		"noiseType":   string(noise.Type),
		"adjustedSTC": profile.STCRating,
	})

	if c.cache != nil {
		c.cache.Set(ctx, key, profile, c.acousticTTL)
	}

	return profile, nil
}

// CalculateCompatibility scores how well a solution suits a room/noise pair,
// in [0,1].
func (c *AcousticCalculator) CalculateCompatibility(ctx context.Context, solutionID, roomType string, noiseType models.NoiseType) (float64, error) {
	solution, err := c.solutions.Get(ctx, solutionID)
	if err != nil {
		return 0, err
	}

	score := 0.8

	ra := RoomAcousticsFor(roomType)
	if challengeSurface(ra.DominantChallenge) == solution.SurfaceType {
		score += 0.1
	}

	noise, err := models.NewNoiseProfile(string(noiseType), 5, nil, nil)
	if err != nil {
		return 0, err
	}
	traits := noise.Traits()

	coversLow := solution.FrequencyRange.Low <= traits.TypicalLow
	coversHigh := solution.FrequencyRange.High >= traits.TypicalHigh
	switch {
	case coversLow && coversHigh:
		score += 0.1
	case coversLow || coversHigh:
		score += 0.05
	}

	if solution.Classification != "" && solution.Classification == traits.Classification {
		score += 0.1
	}

	return math.Min(score, 1.0), nil
}

// challengeSurface maps a room's dominant acoustic challenge to the surface
// type best placed to address it.
func challengeSurface(challenge string) models.SurfaceType {
	switch challenge {
	case "reverberation":
		return models.SurfaceCeiling
	case "resonance":
		return models.SurfaceFloor
	default:
		return models.SurfaceWalls
	}
}
