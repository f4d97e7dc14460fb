// internal/engine/ranking.go
package engine

import (
	"context"
	"sort"
	"strings"
	"time"

	"soundproofing-calculator/internal/calculator"
	"soundproofing-calculator/internal/common/metrics"
	"soundproofing-calculator/internal/models"
)

// Score component caps. Components are computed independently and summed to
// a 0-100 total.
const (
	maxReductionScore    = 30.0
	maxFrequencyScore    = 25.0
	maxAbsorptionScore   = 25.0
	maxBudgetScore       = 10.0
	maxInstallationScore = 10.0
)

// criticalBands groups the modeled octave bands into the low/mid/high
// critical ranges used for frequency matching. Mid carries double weight.
var criticalBands = []struct {
	name    string
	lowHz   float64
	highHz  float64
	weight  float64
	centers []int
}{
	{name: "low", lowHz: 125, highHz: 500, weight: 1, centers: []int{125, 250}},
	{name: "mid", lowHz: 500, highHz: 2000, weight: 2, centers: []int{500, 1000}},
	{name: "high", lowHz: 2000, highHz: 4000, weight: 1, centers: []int{2000, 4000}},
}

// RankInputs carry the request context candidates are scored against.
type RankInputs struct {
	Room                *models.RoomProfile
	Noise               *models.NoiseProfile
	Budget              float64 // 0 means no budget constraint
	SpecialRequirements []string
}

// neededReduction derives the dB reduction target from the stated intensity.
func neededReduction(noise *models.NoiseProfile) float64 {
	return 20 + 5*float64(noise.Intensity)
}

// reductionScore awards up to 30 points for STC adequacy against the needed
// reduction. Non-positive inputs award nothing.
func reductionScore(stc, needed float64) float64 {
	if stc <= 0 || needed <= 0 {
		return 0
	}
	score := stc / needed * maxReductionScore
	if score > maxReductionScore {
		score = maxReductionScore
	}
	return score
}

// frequencyScore awards up to 25 points for response overlap with the
// noise's critical bands, weighting the mid band double.
func frequencyScore(response map[int]float64, traits models.NoiseTraits) float64 {
	var weighted, totalWeight float64

	for _, band := range criticalBands {
		// A band is critical when the noise's typical range overlaps it.
		if traits.TypicalHigh < band.lowHz || traits.TypicalLow > band.highHz {
			continue
		}

		var sum float64
		for _, center := range band.centers {
			sum += response[center]
		}
		match := sum / float64(len(band.centers))

		weighted += match * band.weight
		totalWeight += band.weight
	}

	if totalWeight == 0 {
		return 0
	}
	return weighted / totalWeight * maxFrequencyScore
}

// absorptionDampingScore awards up to 25 points combining absorption boosted
// by room reflectivity with damping boosted when the noise excites the
// room's resonance band.
func absorptionDampingScore(profile models.AcousticProfile, ra calculator.RoomAcoustics, traits models.NoiseTraits) float64 {
	absorptionScore := profile.MeanAbsorption() * (1 + ra.Reflectivity*0.5) * 15

	resonanceFactor := 1.0
	for _, freq := range []float64{traits.TypicalLow, traits.PeakFrequency, traits.TypicalHigh} {
		if freq >= ra.ResonanceLow && freq <= ra.ResonanceHigh {
			resonanceFactor = 1.5
			break
		}
	}
	dampingScore := profile.Damping * 10 * resonanceFactor

	score := absorptionScore + dampingScore
	if score > maxAbsorptionScore {
		score = maxAbsorptionScore
	}
	return score
}

// budgetScore awards up to 10 points for headroom under the stated budget.
// Solutions over budget are excluded from budget points, not penalized.
func budgetScore(cost, budget float64) float64 {
	if budget <= 0 || cost <= 0 || cost > budget {
		return 0
	}
	return (budget - cost) / budget * maxBudgetScore
}

// installationScore awards up to 10 points: 8 for simplicity plus a 2 point
// bonus when every stated special requirement appears in the solution's
// feature list.
func installationScore(solution *models.Solution, requirements []string) float64 {
	complexity := solution.InstallationComplexity
	if complexity < 0 {
		complexity = 0
	}
	if complexity > 10 {
		complexity = 10
	}
	score := float64(10-complexity) / 10 * 8

	if len(requirements) > 0 && hasAllFeatures(solution.Features, requirements) {
		score += 2
	}
	return score
}

func hasAllFeatures(features, requirements []string) bool {
	have := make(map[string]struct{}, len(features))
	for _, f := range features {
		have[strings.ToLower(strings.TrimSpace(f))] = struct{}{}
	}
	for _, req := range requirements {
		if _, ok := have[strings.ToLower(strings.TrimSpace(req))]; !ok {
			return false
		}
	}
	return true
}

// scoreCandidate computes the full multi-factor score for one candidate. The
// solution is cloned first so rating adjustments never touch the catalog
// copy.
func (e *Engine) scoreCandidate(ctx context.Context, candidate *models.Solution, inputs RankInputs) (models.RankedSolution, error) {
	solution := candidate.Clone()

	profile, err := e.acoustics.AdjustForRoom(ctx, solution, inputs.Room, inputs.Noise)
	if err != nil {
		return models.RankedSolution{}, err
	}
	solution.STCRating = profile.STCRating

	ra := calculator.RoomAcousticsFor(inputs.Room.RoomType)
	traits := inputs.Noise.Traits()

	details := map[string]float64{
		"reduction":    reductionScore(profile.STCRating, neededReduction(inputs.Noise)),
		"frequency":    frequencyScore(profile.FrequencyResponse, traits),
		"absorption":   absorptionDampingScore(profile, ra, traits),
		"installation": installationScore(solution, inputs.SpecialRequirements),
	}

	if inputs.Budget > 0 && e.costs != nil {
		breakdown, err := e.costs.ComputeCosts(ctx, solution, inputs.Room)
		if err != nil {
			return models.RankedSolution{}, err
		}
		details["budget"] = budgetScore(breakdown.TotalCost, inputs.Budget)
	}

	var total float64
	for _, v := range details {
		total += v
	}

	return models.RankedSolution{Solution: solution, Score: total, Details: details}, nil
}

// RankSolutions scores candidates and orders them best-first. Ties keep
// catalog order (stable sort). A failing candidate is logged and skipped;
// ranking continues with the rest.
func (e *Engine) RankSolutions(ctx context.Context, candidates []*models.Solution, inputs RankInputs) []models.RankedSolution {
	ranked := make([]models.RankedSolution, 0, len(candidates))

	for _, candidate := range candidates {
		start := time.Now()
		rs, err := e.scoreCandidate(ctx, candidate, inputs)
		if err != nil {
			stdErr := e.errHandler.Handle(candidate.CodeName, err)
			metrics.CandidatesSkipped.WithLabelValues(string(candidate.SurfaceType), string(stdErr.Code)).Inc()
			continue
		}
		metrics.CandidatesScored.WithLabelValues(string(candidate.SurfaceType)).Inc()
		metrics.ScoringDuration.WithLabelValues(string(candidate.SurfaceType)).Observe(time.Since(start).Seconds())
		ranked = append(ranked, rs)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
