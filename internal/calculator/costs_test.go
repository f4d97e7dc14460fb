// internal/calculator/costs_test.go
package calculator

import (
	"context"
	"strings"
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

type stubMaterials struct {
	byName map[string]models.Material
}

func (s *stubMaterials) Get(_ context.Context, name string) (models.Material, error) {
	if m, ok := s.byName[strings.ToLower(name)]; ok {
		return m, nil
	}
	return models.EmptyMaterial(name), nil
}

func newStubMaterials(mats ...models.Material) *stubMaterials {
	byName := make(map[string]models.Material, len(mats))
	for _, m := range mats {
		byName[strings.ToLower(m.Name)] = m
	}
	return &stubMaterials{byName: byName}
}

func testRoom() *models.RoomProfile {
	return &models.RoomProfile{
		Dimensions: models.Dimensions{Length: 5, Width: 4, Height: 2},
		RoomType:   "bedroom",
	}
}

// ==========================
// Quantity rules
// ==========================

func TestComputeQuantity(t *testing.T) {
	plasterboard := models.Material{Name: "12.5mm Sound Plasterboard", Coverage: 2.88}
	sealant := models.Material{Name: "Acoustic Sealant", Coverage: 3}
	bar := models.Material{Name: "Resilient Bar"}
	clip := models.Material{Name: "Genie Clip"}
	screws := models.Material{Name: "Acoustic Screws Box"}

	tests := []struct {
		name    string
		mat     models.Material
		layers  int
		dims    SurfaceDims
		wantQty int
	}{
		{
			// ceil(10 * 2 * 1.10 / 2.88) = ceil(7.64) = 8
			name:    "double layer plasterboard with wastage",
			mat:     plasterboard,
			layers:  2,
			dims:    SurfaceDims{Area: 10},
			wantQty: 8,
		},
		{
			// ceil(10 * 1 * 1.10 / 2.88) = ceil(3.82) = 4
			name:    "single layer plasterboard",
			mat:     plasterboard,
			layers:  1,
			dims:    SurfaceDims{Area: 10},
			wantQty: 4,
		},
		{
			// ceil(14 / 3) = 5
			name:    "sealant along the perimeter",
			mat:     sealant,
			dims:    SurfaceDims{Perimeter: 14},
			wantQty: 5,
		},
		{
			// ceil(4 / 0.4) = 10
			name:    "resilient bars along the span",
			mat:     bar,
			dims:    SurfaceDims{Span: 4},
			wantQty: 10,
		},
		{
			// ceil(4 / 0.6 * 1.10) = ceil(7.33) = 8
			name:    "clips with corner allowance",
			mat:     clip,
			dims:    SurfaceDims{Span: 4},
			wantQty: 8,
		},
		{
			name:    "screws are one box regardless of area",
			mat:     screws,
			dims:    SurfaceDims{Area: 200},
			wantQty: 1,
		},
		{
			name:    "screws on a tiny surface still one box",
			mat:     screws,
			dims:    SurfaceDims{Area: 0.1},
			wantQty: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := ResolveRule(tt.mat.Name)
			qty, err := ComputeQuantity(tt.mat, rule, tt.layers, tt.dims, 1.10)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQty, qty)
		})
	}
}

func TestComputeQuantity_NonPositiveCoverage(t *testing.T) {
	mat := models.Material{Name: "12.5mm Sound Plasterboard", Coverage: 0}
	rule := ResolveRule(mat.Name)

	_, err := ComputeQuantity(mat, rule, 1, SurfaceDims{Area: 10}, 1.10)
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeInvalidCoverage, stdErr.Code)
}

// ==========================
// Surface dimension resolution
// ==========================

func TestResolveSurfaceDims(t *testing.T) {
	room := testRoom()

	walls := ResolveSurfaceDims(models.SurfaceWalls, room)
	assert.InDelta(t, 10.0, walls.Area, 1e-9) // 5 x 2
	assert.InDelta(t, 14.0, walls.Perimeter, 1e-9)
	assert.InDelta(t, 5.0, walls.Span, 1e-9)

	ceiling := ResolveSurfaceDims(models.SurfaceCeiling, room)
	assert.InDelta(t, 20.0, ceiling.Area, 1e-9) // 5 x 4
	assert.InDelta(t, 18.0, ceiling.Perimeter, 1e-9)
}

func TestResolveSurfaceDims_BlockageSubtraction(t *testing.T) {
	room := testRoom()
	room.Blockages = map[models.SurfaceType][]models.Blockage{
		models.SurfaceWalls: {{Width: 1.2, Height: 1.0}},
	}

	walls := ResolveSurfaceDims(models.SurfaceWalls, room)
	assert.InDelta(t, 8.8, walls.Area, 1e-9)
}

func TestResolveSurfaceDims_AreaFloor(t *testing.T) {
	room := testRoom()
	// Blockage larger than the wall itself; area floors instead of going
	// negative.
	room.Blockages = map[models.SurfaceType][]models.Blockage{
		models.SurfaceWalls: {{Width: 10, Height: 10}},
	}

	walls := ResolveSurfaceDims(models.SurfaceWalls, room)
	assert.InDelta(t, 0.1, walls.Area, 1e-9)
}

// ==========================
// Full breakdown
// ==========================

func TestComputeCosts(t *testing.T) {
	materials := newStubMaterials(
		models.Material{Name: "12.5mm Sound Plasterboard", UnitCost: 10, Coverage: 2.88},
		models.Material{Name: "Acoustic Sealant", UnitCost: 7, Coverage: 3},
		models.Material{Name: "Acoustic Screws Box", UnitCost: 14, Coverage: 1},
	)

	calc := NewCostCalculator(materials, cache.NewMemory(), logger.NewTestLogger(t),
		WithLaborRate(0.35), WithWastageFactor(1.10))

	solution := &models.Solution{
		CodeName:    "TestWall",
		SurfaceType: models.SurfaceWalls,
		Variant:     models.VariantStandard,
		Materials: []models.SolutionMaterial{
			{Name: "12.5mm Sound Plasterboard"},
			{Name: "Acoustic Sealant"},
			{Name: "Acoustic Screws Box"},
		},
	}

	breakdown, err := calc.ComputeCosts(context.Background(), solution, testRoom())
	require.NoError(t, err)

	require.Len(t, breakdown.Items, 3)
	assert.Equal(t, models.SurfaceWalls, breakdown.Surface)

	// plasterboard: ceil(10*1*1.10/2.88)=4 -> 40
	// sealant: ceil(14/3)=5 -> 35
	// screws: 1 -> 14
	assert.InDelta(t, 89.0, breakdown.MaterialsCost, 1e-9)
	assert.InDelta(t, 89.0*0.35, breakdown.LaborCost, 1e-9)
	assert.InDelta(t, 89.0*1.35, breakdown.TotalCost, 1e-9)
}

func TestComputeCosts_SP15DoublesPlasterboard(t *testing.T) {
	materials := newStubMaterials(
		models.Material{Name: "12.5mm Sound Plasterboard", UnitCost: 10, Coverage: 2.88},
	)

	calc := NewCostCalculator(materials, cache.NewMemory(), logger.NewTestLogger(t))

	standard := &models.Solution{
		CodeName:    "WallStandard",
		SurfaceType: models.SurfaceWalls,
		Variant:     models.VariantStandard,
		Materials:   []models.SolutionMaterial{{Name: "12.5mm Sound Plasterboard"}},
	}
	sp15 := standard.Clone()
	sp15.CodeName = "WallSP15"
	sp15.Variant = models.VariantSP15

	stdBreakdown, err := calc.ComputeCosts(context.Background(), standard, testRoom())
	require.NoError(t, err)
	sp15Breakdown, err := calc.ComputeCosts(context.Background(), sp15, testRoom())
	require.NoError(t, err)

	assert.Equal(t, 4, stdBreakdown.Items[0].Quantity)
	assert.Equal(t, 8, sp15Breakdown.Items[0].Quantity)
}

func TestComputeCosts_LaborRateOverride(t *testing.T) {
	materials := newStubMaterials(
		models.Material{Name: "12.5mm Sound Plasterboard", UnitCost: 10, Coverage: 2.88},
	)

	calc := NewCostCalculator(materials, nil, logger.NewTestLogger(t), WithLaborRate(0.35))

	solution := &models.Solution{
		CodeName:    "HighSkillWall",
		SurfaceType: models.SurfaceWalls,
		LaborRate:   0.6,
		Materials:   []models.SolutionMaterial{{Name: "12.5mm Sound Plasterboard"}},
	}

	breakdown, err := calc.ComputeCosts(context.Background(), solution, testRoom())
	require.NoError(t, err)
	assert.InDelta(t, breakdown.MaterialsCost*0.6, breakdown.LaborCost, 1e-9)
}

func TestComputeCosts_InvalidRoomRejected(t *testing.T) {
	calc := NewCostCalculator(newStubMaterials(), nil, logger.NewTestLogger(t))

	solution := &models.Solution{CodeName: "Any", SurfaceType: models.SurfaceWalls}
	room := &models.RoomProfile{Dimensions: models.Dimensions{Length: -1, Width: 3, Height: 2}}

	_, err := calc.ComputeCosts(context.Background(), solution, room)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestComputeCosts_CachesResult(t *testing.T) {
	materials := newStubMaterials(
		models.Material{Name: "12.5mm Sound Plasterboard", UnitCost: 10, Coverage: 2.88},
	)
	cch := cache.NewMemory()
	calc := NewCostCalculator(materials, cch, logger.NewTestLogger(t))

	solution := &models.Solution{
		CodeName:    "CachedWall",
		SurfaceType: models.SurfaceWalls,
		Materials:   []models.SolutionMaterial{{Name: "12.5mm Sound Plasterboard"}},
	}

	first, err := calc.ComputeCosts(context.Background(), solution, testRoom())
	require.NoError(t, err)
	second, err := calc.ComputeCosts(context.Background(), solution, testRoom())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, cch.Stats().Hits, int64(1))
}

func TestComputeCosts_BlockedRoomNotServedFromUnblockedEntry(t *testing.T) {
	materials := newStubMaterials(
		models.Material{Name: "12.5mm Sound Plasterboard", UnitCost: 10, Coverage: 2.88},
	)
	cch := cache.NewMemory()
	calc := NewCostCalculator(materials, cch, logger.NewTestLogger(t))

	solution := &models.Solution{
		CodeName:    "KeyedWall",
		SurfaceType: models.SurfaceWalls,
		Materials:   []models.SolutionMaterial{{Name: "12.5mm Sound Plasterboard"}},
	}

	// Warm the cache with the unblocked room: wall area 10 -> 4 boards.
	open, err := calc.ComputeCosts(context.Background(), solution, testRoom())
	require.NoError(t, err)
	assert.InDelta(t, 40.0, open.MaterialsCost, 1e-9)

	// Same dimensions with a 6 m^2 blockage: wall area 4 -> 2 boards.
	blocked := testRoom()
	blocked.Blockages = map[models.SurfaceType][]models.Blockage{
		models.SurfaceWalls: {{Width: 3, Height: 2}},
	}
	warm, err := calc.ComputeCosts(context.Background(), solution, blocked)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, warm.MaterialsCost, 1e-9,
		"blockages change the usable area and must not share a cache entry")

	// And the warm calculator still agrees with a cold one.
	cold := NewCostCalculator(materials, cache.NewMemory(), logger.NewTestLogger(t))
	fresh, err := cold.ComputeCosts(context.Background(), solution, blocked)
	require.NoError(t, err)
	assert.Equal(t, fresh, warm)
}
