// internal/catalog/materials.go
package catalog

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"soundproofing-calculator/internal/cache"
	"soundproofing-calculator/internal/common/logger"
	"soundproofing-calculator/internal/models"
)

// Materials is the catalog accessor for material records. The store is
// authoritative; cached entries are point-in-time snapshots invalidated by
// TTL. An unreachable store degrades to the embedded seed data.
type Materials struct {
	db     *sql.DB
	cache  cache.Cache
	logger logger.Logger
	ttl    time.Duration

	seed map[string]models.Material
}

func NewMaterials(db *sql.DB, cch cache.Cache, log logger.Logger, ttl time.Duration) *Materials {
	if ttl <= 0 {
		ttl = time.Hour
	}

	seed := make(map[string]models.Material, len(SeedMaterials))
	for _, m := range SeedMaterials {
		seed[strings.ToLower(m.Name)] = m
	}

	return &Materials{
		db:     db,
		cache:  cch,
		logger: log.WithFields(map[string]interface{}{"component": "material-catalog"}),
		ttl:    ttl,
		seed:   seed,
	}
}

const materialQuery = `
	SELECT name, unit_cost, coverage, density, thickness,
	       absorption_low, absorption_mid, absorption_high,
	       damping, decoupling, stc_contribution
	FROM materials WHERE lower(name) = lower($1)`

// Get returns the material record for a name. Unknown names yield the empty
// default profile, never an error; the caller decides whether that matters.
func (m *Materials) Get(ctx context.Context, name string) (models.Material, error) {
	key := cache.MaterialKey(name)
	var cached models.Material
	if m.cache != nil && m.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	if mat, ok := m.fetch(ctx, name); ok {
		if m.cache != nil {
			m.cache.Set(ctx, key, mat, m.ttl)
		}
		return mat, nil
	}

	m.logger.Warn("material not found, returning empty profile", map[string]interface{}{
		"material": name,
	})
	return models.EmptyMaterial(name), nil
}

func (m *Materials) fetch(ctx context.Context, name string) (models.Material, bool) {
	if m.db != nil {
		var mat models.Material
		row := m.db.QueryRowContext(ctx, materialQuery, name)
		err := row.Scan(
			&mat.Name, &mat.UnitCost, &mat.Coverage, &mat.Density, &mat.Thickness,
			&mat.Absorption.Low, &mat.Absorption.Mid, &mat.Absorption.High,
			&mat.Damping, &mat.Decoupling, &mat.STCContribution,
		)
		if err == nil {
			return mat, true
		}
		if err != sql.ErrNoRows {
			m.logger.Warn("material query failed, falling back to seed data", map[string]interface{}{
				"material": name,
				"error":    err.Error(),
			})
		}
	}

	mat, ok := m.seed[strings.ToLower(strings.TrimSpace(name))]
	return mat, ok
}
