// internal/models/room.go
package models

import (
	"fmt"

	"soundproofing-calculator/internal/common/errors"
)

// Dimensions holds room measurements in meters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Blockage is a fixed obstruction (window, door, chimney breast) that reduces
// the treatable area of one surface. Vertical blockages carry width x height,
// horizontal ones width x length.
type Blockage struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height,omitempty"`
	Length   float64 `json:"length,omitempty"`
	Position string  `json:"position,omitempty"`
}

// Area returns the blocked area in square meters.
func (b Blockage) Area() float64 {
	if b.Height > 0 {
		return b.Width * b.Height
	}
	return b.Width * b.Length
}

// RoomProfile describes the room under treatment. Constructed per request,
// never persisted.
type RoomProfile struct {
	Dimensions Dimensions                `json:"dimensions"`
	Surfaces   []SurfaceType             `json:"surfaces"`
	RoomType   string                    `json:"room_type,omitempty"`
	Blockages  map[SurfaceType][]Blockage `json:"blockages,omitempty"`
}

// Validate checks construction-time invariants.
func (r *RoomProfile) Validate() error {
	d := r.Dimensions
	if d.Length <= 0 || d.Width <= 0 || d.Height <= 0 {
		return errors.NewInvalidDimensionsError(
			fmt.Sprintf("length: %v, width: %v, height: %v", d.Length, d.Width, d.Height))
	}
	return nil
}

// HasSurface reports whether the profile includes the given surface.
func (r *RoomProfile) HasSurface(s SurfaceType) bool {
	for _, surface := range r.Surfaces {
		if surface == s {
			return true
		}
	}
	return false
}

// BlockedArea sums the blockage area registered for one surface.
func (r *RoomProfile) BlockedArea(s SurfaceType) float64 {
	var total float64
	for _, b := range r.Blockages[s] {
		total += b.Area()
	}
	return total
}
