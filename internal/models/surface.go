// internal/models/surface.go
package models

// SurfaceType identifies one treatable boundary of a room.
type SurfaceType string

const (
	SurfaceWalls   SurfaceType = "walls"
	SurfaceCeiling SurfaceType = "ceiling"
	SurfaceFloor   SurfaceType = "floor"
)

// Horizontal reports whether area math uses length x width instead of
// length x height.
func (s SurfaceType) Horizontal() bool {
	return s == SurfaceCeiling || s == SurfaceFloor
}
