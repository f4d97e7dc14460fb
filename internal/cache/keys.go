// internal/cache/keys.go
package cache

import (
	"fmt"
	"sort"
	"strings"

	"soundproofing-calculator/internal/models"
)

// Key builders must be deterministic for identical inputs so semantically
// identical requests hit the same entries.

// Key joins a namespace prefix and parts with the cache separator.
func Key(ns string, parts ...string) string {
	return ns + ":" + strings.Join(parts, ":")
}

// MaterialKey addresses one catalog material record.
func MaterialKey(name string) string {
	return Key("material", strings.ToLower(strings.TrimSpace(name)))
}

// MaterialSetKey addresses a derived value over a set of materials. Names are
// sorted so permutations of the same set share an entry.
func MaterialSetKey(ns string, names []string) string {
	sorted := make([]string, len(names))
	for i, n := range names {
		sorted[i] = strings.ToLower(strings.TrimSpace(n))
	}
	sort.Strings(sorted)
	return Key(ns, sorted...)
}

// SolutionsKey addresses the candidate list for one surface.
func SolutionsKey(surface models.SurfaceType) string {
	return Key("solutions", string(surface))
}

// CostKey addresses a cost breakdown for a solution at given dimensions.
// The surface's blocked area participates in the key: it changes the usable
// area and therefore the breakdown, so rooms with identical dimensions but
// different blockages must not share an entry.
func CostKey(solution string, d models.Dimensions, blockedArea float64) string {
	return Key("cost", solution, dimensionTuple(d), fmt.Sprintf("b%.2f", blockedArea))
}

// AcousticKey addresses a room/noise-adjusted acoustic profile.
func AcousticKey(solution, roomType string, noiseType models.NoiseType) string {
	if roomType == "" {
		roomType = "default"
	}
	return Key("acoustic", solution, roomType, string(noiseType))
}

func dimensionTuple(d models.Dimensions) string {
	return fmt.Sprintf("%.2fx%.2fx%.2f", d.Length, d.Width, d.Height)
}
