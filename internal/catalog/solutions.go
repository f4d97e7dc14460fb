// internal/catalog/solutions.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"soundproofing-calculator/internal/cache"
	"soundproofing-calculator/internal/common/database"
	"soundproofing-calculator/internal/common/errors"
	"soundproofing-calculator/internal/common/logger"
	"soundproofing-calculator/internal/models"
)

// Solutions is the catalog accessor for constructive solutions. Documents
// live in an Elasticsearch index; the embedded seed set serves as fallback
// when the index is unreachable or empty. Callers always receive defensive
// copies.
type Solutions struct {
	es     *database.ElasticsearchClient
	index  string
	cache  cache.Cache
	logger logger.Logger
	ttl    time.Duration

	seed []models.Solution
}

func NewSolutions(es *database.ElasticsearchClient, index string, cch cache.Cache, log logger.Logger, ttl time.Duration) *Solutions {
	if index == "" {
		index = "solutions"
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Solutions{
		es:     es,
		index:  index,
		cache:  cch,
		logger: log.WithFields(map[string]interface{}{"component": "solution-catalog"}),
		ttl:    ttl,
		seed:   SeedSolutions,
	}
}

// UseRegistry overlays registry entries onto the embedded seed set. An
// entry sharing a code name with a seed solution replaces it; others are
// appended in file order.
func (s *Solutions) UseRegistry(extra []models.Solution) {
	merged := make([]models.Solution, len(s.seed))
	copy(merged, s.seed)

	for _, sol := range extra {
		replaced := false
		for i := range merged {
			if strings.EqualFold(merged[i].CodeName, sol.CodeName) {
				merged[i] = sol
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, sol)
		}
	}

	s.seed = merged

	// Drop any cached per-surface lists so the overlay is visible at once.
	if s.cache != nil {
		for _, surface := range []models.SurfaceType{models.SurfaceWalls, models.SurfaceCeiling, models.SurfaceFloor} {
			s.cache.Delete(context.Background(), cache.SolutionsKey(surface))
		}
	}

	s.logger.Info("solution registry applied", map[string]interface{}{
		"entries": len(extra),
		"total":   len(merged),
	})
}

// searchResponse is the slice of the ES response body we care about.
type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source models.Solution `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// BySurface returns the candidate solutions for one surface in catalog
// order.
func (s *Solutions) BySurface(ctx context.Context, surface models.SurfaceType) ([]*models.Solution, error) {
	key := cache.SolutionsKey(surface)
	var cached []models.Solution
	if s.cache != nil && s.cache.Get(ctx, key, &cached) {
		return clones(cached), nil
	}

	found := s.search(ctx, surface)
	if found == nil {
		found = s.seedBySurface(surface)
	}
	if len(found) == 0 {
		return nil, errors.NewNoCandidatesError(string(surface))
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, found, s.ttl)
	}
	return clones(found), nil
}

// Get returns one solution by code name.
func (s *Solutions) Get(ctx context.Context, codeName string) (*models.Solution, error) {
	for _, surface := range []models.SurfaceType{models.SurfaceWalls, models.SurfaceCeiling, models.SurfaceFloor} {
		candidates, err := s.BySurface(ctx, surface)
		if err != nil {
			continue
		}
		for _, candidate := range candidates {
			if strings.EqualFold(candidate.CodeName, codeName) {
				return candidate, nil
			}
		}
	}
	return nil, errors.NewSolutionNotFoundError(codeName)
}

// search queries the document index; any failure degrades to nil so the
// caller falls back to seed data.
func (s *Solutions) search(ctx context.Context, surface models.SurfaceType) []models.Solution {
	if s.es == nil {
		return nil
	}

	query := fmt.Sprintf(`{"query":{"term":{"surface_type":%q}},"size":50}`, string(surface))
	body, err := s.es.Search(ctx, s.index, []byte(query))
	if err != nil {
		s.logger.Warn("solution index unavailable, falling back to seed data", map[string]interface{}{
			"surface": string(surface),
			"error":   err.Error(),
		})
		return nil
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		s.logger.Warn("solution index returned malformed response", map[string]interface{}{
			"surface": string(surface),
			"error":   err.Error(),
		})
		return nil
	}
	if len(resp.Hits.Hits) == 0 {
		return nil
	}

	out := make([]models.Solution, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		out = append(out, hit.Source)
	}
	return out
}

func (s *Solutions) seedBySurface(surface models.SurfaceType) []models.Solution {
	var out []models.Solution
	for _, sol := range s.seed {
		if sol.SurfaceType == surface {
			out = append(out, sol)
		}
	}
	return out
}

func clones(solutions []models.Solution) []*models.Solution {
	out := make([]*models.Solution, len(solutions))
	for i := range solutions {
		out[i] = solutions[i].Clone()
	}
	return out
}
