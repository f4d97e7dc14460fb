// internal/calculator/acoustics_test.go
package calculator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundproofing-calculator/internal/cache"
	"soundproofing-calculator/internal/common/errors"
	"soundproofing-calculator/internal/common/logger"
	"soundproofing-calculator/internal/models"
)

// ==========================
// Stubs
// ==========================

type stubSolutions struct {
	byCode map[string]*models.Solution
}

func (s *stubSolutions) Get(_ context.Context, codeName string) (*models.Solution, error) {
	if sol, ok := s.byCode[codeName]; ok {
		return sol.Clone(), nil
	}
	return nil, errors.NewSolutionNotFoundError(codeName)
}

func newAcousticCalc(t *testing.T, solutions *stubSolutions, materials *stubMaterials) *AcousticCalculator {
	t.Helper()
	return NewAcousticCalculator(solutions, materials, cache.NewMemory(), logger.NewTestLogger(t), 0)
}

// ==========================
// Property combination
// ==========================

func TestCombineMaterialProperties_ZeroCoverage(t *testing.T) {
	profile := CombineMaterialProperties([]models.Material{
		{Name: "a", Coverage: 0, STCContribution: 30},
		{Name: "b", Coverage: 0, STCContribution: 40},
	})

	assert.Zero(t, profile.STCRating)
	assert.Zero(t, profile.Damping)
	assert.NotNil(t, profile.FrequencyResponse)
	assert.NotNil(t, profile.TransmissionLoss)
	assert.Empty(t, profile.FrequencyResponse)
}

func TestCombineMaterialProperties_WeightedMean(t *testing.T) {
	mats := []models.Material{
		{Name: "heavy", Coverage: 3, STCContribution: 40, Damping: 0.6},
		{Name: "light", Coverage: 1, STCContribution: 20, Damping: 0.2},
	}

	profile := CombineMaterialProperties(mats)

	// (40*3 + 20*1) / 4 = 35
	assert.InDelta(t, 35.0, profile.STCRating, 1e-9)
	// (0.6*3 + 0.2*1) / 4 = 0.5
	assert.InDelta(t, 0.5, profile.Damping, 1e-9)
}

func TestCombineMaterialProperties_OrderIndependent(t *testing.T) {
	mats := []models.Material{
		{Name: "a", Coverage: 2.88, STCContribution: 30, Damping: 0.2, Absorption: models.BandValues{Mid: 0.1}},
		{Name: "b", Coverage: 0.25, STCContribution: 6, Damping: 0.2, Absorption: models.BandValues{Mid: 0.01}},
		{Name: "c", Coverage: 4.32, STCContribution: 8, Damping: 0.3, Absorption: models.BandValues{Mid: 0.8}},
	}
	reversed := []models.Material{mats[2], mats[1], mats[0]}

	a := CombineMaterialProperties(mats)
	b := CombineMaterialProperties(reversed)

	assert.InDelta(t, a.STCRating, b.STCRating, 1e-9)
	assert.InDelta(t, a.Damping, b.Damping, 1e-9)
	assert.InDelta(t, a.Absorption.Mid, b.Absorption.Mid, 1e-9)
}

// ==========================
// Curve synthesis
// ==========================

func TestDeriveTransmissionLoss(t *testing.T) {
	curve := DeriveTransmissionLoss(50)

	assert.InDelta(t, 40.0, curve[125], 1e-9)
	assert.InDelta(t, 45.0, curve[250], 1e-9)
	assert.InDelta(t, 50.0, curve[500], 1e-9)
	assert.InDelta(t, 55.0, curve[1000], 1e-9)
	assert.InDelta(t, 60.0, curve[2000], 1e-9)
	assert.InDelta(t, 65.0, curve[4000], 1e-9)
}

func TestDeriveFrequencyResponse(t *testing.T) {
	curve := DeriveFrequencyResponse(50)

	assert.InDelta(t, 0.35, curve[125], 1e-9)
	assert.InDelta(t, 0.50, curve[1000], 1e-9)
	assert.InDelta(t, 0.45, curve[4000], 1e-9)

	// Ratings above 100 clamp to the shape factors themselves.
	clamped := DeriveFrequencyResponse(130)
	assert.InDelta(t, 0.70, clamped[125], 1e-9)
	assert.InDelta(t, 1.00, clamped[1000], 1e-9)
}

// ==========================
// Room adjustment pipeline
// ==========================

func TestAdjustSTCForRoom(t *testing.T) {
	ra := RoomAcoustics{
		Reflectivity:  0.3,
		Absorption:    0.4,
		ResonanceLow:  100,
		ResonanceHigh: 250,
		Reverberation: 0.6,
	}

	// 50 * 0.7 * 1.4 * 0.9 * 0.7 = 30.87
	got := AdjustSTCForRoom(50, ra, 125)
	assert.InDelta(t, 30.87, got, 1e-9)
}

func TestAdjustSTCForRoom_NoResonanceDip(t *testing.T) {
	ra := RoomAcoustics{
		Reflectivity:  0.3,
		Absorption:    0.4,
		ResonanceLow:  100,
		ResonanceHigh: 250,
		Reverberation: 0.6,
	}

	// Peak outside the resonance band skips the 10% dip.
	got := AdjustSTCForRoom(50, ra, 1000)
	assert.InDelta(t, 34.3, got, 1e-9)
}

func TestRoomAcousticsFor_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, defaultRoomAcoustics, RoomAcousticsFor("observatory"))
	assert.Equal(t, defaultRoomAcoustics, RoomAcousticsFor(""))
	assert.NotEqual(t, defaultRoomAcoustics, RoomAcousticsFor("home_studio"))
}

// ==========================
// AdjustForRoom
// ==========================

func TestAdjustForRoom_MeasuredCurvesTakePrecedence(t *testing.T) {
	measured := map[int]float64{125: 0.2, 250: 0.3, 500: 0.4, 1000: 0.5, 2000: 0.6, 4000: 0.7}

	solution := &models.Solution{
		CodeName:    "Measured",
		SurfaceType: models.SurfaceWalls,
		STCRating:   50,
		Materials:   []models.SolutionMaterial{{Name: "12.5mm Sound Plasterboard"}},

		FrequencyResponse: measured,
	}

	materials := newStubMaterials(
		models.Material{Name: "12.5mm Sound Plasterboard", Coverage: 2.88, STCContribution: 30},
	)
	calc := newAcousticCalc(t, &stubSolutions{}, materials)

	noise, err := models.NewNoiseProfile("music", 5, []string{"north"}, nil)
	require.NoError(t, err)

	profile, err := calc.AdjustForRoom(context.Background(), solution, testRoom(), noise)
	require.NoError(t, err)

	assert.Equal(t, measured, profile.FrequencyResponse)
	// Transmission loss was not measured, so it is synthesized.
	assert.NotEmpty(t, profile.TransmissionLoss)
}

func TestAdjustForRoom_AdjustsSTC(t *testing.T) {
	solution := &models.Solution{
		CodeName:    "Plain",
		SurfaceType: models.SurfaceWalls,
		STCRating:   50,
		Materials:   []models.SolutionMaterial{{Name: "12.5mm Sound Plasterboard"}},
	}

	materials := newStubMaterials(
		models.Material{Name: "12.5mm Sound Plasterboard", Coverage: 2.88, STCContribution: 30},
	)
	calc := newAcousticCalc(t, &stubSolutions{}, materials)

	noise, err := models.NewNoiseProfile("music", 5, []string{"north"}, nil)
	require.NoError(t, err)

	room := testRoom() // bedroom
	profile, err := calc.AdjustForRoom(context.Background(), solution, room, noise)
	require.NoError(t, err)

	ra := RoomAcousticsFor(room.RoomType)
	want := AdjustSTCForRoom(50, ra, noise.Traits().PeakFrequency)
	assert.InDelta(t, want, profile.STCRating, 1e-9)
	assert.Less(t, profile.STCRating, 50.0)
}

// ==========================
// Estimation and compatibility
// ==========================

func TestEstimateSTCRating(t *testing.T) {
	solutions := &stubSolutions{byCode: map[string]*models.Solution{
		"Wall": {CodeName: "Wall", STCRating: 50, Variant: models.VariantStandard},
		"SP15": {CodeName: "SP15", STCRating: 50, Variant: models.VariantSP15},
	}}
	calc := newAcousticCalc(t, solutions, newStubMaterials())

	tests := []struct {
		name      string
		code      string
		intensity int
		want      int
	}{
		{name: "quiet problem keeps the rating", code: "Wall", intensity: 0, want: 50},
		{name: "loud problem erodes five points", code: "Wall", intensity: 10, want: 45},
		{name: "midway erosion", code: "Wall", intensity: 5, want: 47},
		{name: "variant bonus applies before erosion", code: "SP15", intensity: 0, want: 54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.EstimateSTCRating(context.Background(), tt.code, tt.intensity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEstimateSTCRating_UnknownSolution(t *testing.T) {
	calc := newAcousticCalc(t, &stubSolutions{}, newStubMaterials())

	_, err := calc.EstimateSTCRating(context.Background(), "Missing", 5)
	require.Error(t, err)
	assert.True(t, errors.IsDataUnavailable(err))
}

func TestCalculateCompatibility(t *testing.T) {
	solutions := &stubSolutions{byCode: map[string]*models.Solution{
		"FullMatch": {
			CodeName:       "FullMatch",
			SurfaceType:    models.SurfaceCeiling,
			FrequencyRange: models.FrequencyRange{Low: 20, High: 8000},
			Classification: "airborne",
		},
		"Partial": {
			CodeName:       "Partial",
			SurfaceType:    models.SurfaceWalls,
			FrequencyRange: models.FrequencyRange{Low: 200, High: 8000},
			Classification: "impact",
		},
	}}
	calc := newAcousticCalc(t, solutions, newStubMaterials())

	// kitchen's dominant challenge is reverberation, addressed at the
	// ceiling: 0.8 + 0.1 + 0.1 + 0.1 clamps to 1.0.
	score, err := calc.CalculateCompatibility(context.Background(), "FullMatch", "kitchen", models.NoiseMusic)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)

	// walls do not address reverberation, range covers only the high end,
	// classification mismatches: 0.8 + 0.05.
	score, err = calc.CalculateCompatibility(context.Background(), "Partial", "kitchen", models.NoiseMusic)
	require.NoError(t, err)
	assert.InDelta(t, 0.85, score, 1e-9)
}
