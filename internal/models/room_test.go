// internal/models/room_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"soundproofing-calculator/internal/common/errors"
)

func TestRoomProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dims    Dimensions
		wantErr bool
	}{
		{name: "valid room", dims: Dimensions{Length: 4, Width: 3, Height: 2.4}},
		{name: "zero length rejected", dims: Dimensions{Length: 0, Width: 3, Height: 2.4}, wantErr: true},
		{name: "negative width rejected", dims: Dimensions{Length: 4, Width: -1, Height: 2.4}, wantErr: true},
		{name: "zero height rejected", dims: Dimensions{Length: 4, Width: 3, Height: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := &RoomProfile{Dimensions: tt.dims}
			err := room.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBlockedArea(t *testing.T) {
	room := &RoomProfile{
		Dimensions: Dimensions{Length: 4, Width: 3, Height: 2.4},
		Blockages: map[SurfaceType][]Blockage{
			SurfaceWalls: {
				{Width: 1.2, Height: 1.0, Position: "window"},
				{Width: 0.8, Height: 2.0, Position: "door"},
			},
			SurfaceFloor: {
				{Width: 1.0, Length: 0.5},
			},
		},
	}

	assert.InDelta(t, 2.8, room.BlockedArea(SurfaceWalls), 1e-9)
	assert.InDelta(t, 0.5, room.BlockedArea(SurfaceFloor), 1e-9)
	assert.Zero(t, room.BlockedArea(SurfaceCeiling))
}

func TestSolution_CloneIsDeep(t *testing.T) {
	original := &Solution{
		CodeName:  "Test",
		Materials: []SolutionMaterial{{Name: "Plasterboard"}},
		Features:  []string{"decoupled"},
		FrequencyResponse: map[int]float64{
			500: 0.9,
		},
	}

	cp := original.Clone()
	cp.Materials[0].Name = "Changed"
	cp.Features[0] = "changed"
	cp.FrequencyResponse[500] = 0.1
	cp.STCRating = 99

	assert.Equal(t, "Plasterboard", original.Materials[0].Name)
	assert.Equal(t, "decoupled", original.Features[0])
	assert.Equal(t, 0.9, original.FrequencyResponse[500])
	assert.Zero(t, original.STCRating)
}

func TestSolution_VariantBehavior(t *testing.T) {
	standard := &Solution{STCRating: 50, Variant: VariantStandard}
	sp15 := &Solution{STCRating: 50, Variant: VariantSP15}

	assert.Equal(t, 50.0, standard.EffectiveSTC())
	assert.Equal(t, 54.0, sp15.EffectiveSTC())
	assert.Equal(t, 1, standard.PlasterboardLayers())
	assert.Equal(t, 2, sp15.PlasterboardLayers())
}
