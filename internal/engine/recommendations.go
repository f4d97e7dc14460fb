// internal/engine/recommendations.go
package engine

import (
	"context"
	"fmt"

	"soundproofing-calculator/internal/calculator"
	"soundproofing-calculator/internal/common/errors"
	"soundproofing-calculator/internal/common/logger"
	"soundproofing-calculator/internal/common/metrics"
	"soundproofing-calculator/internal/models"

	"github.com/google/uuid"
)

// primaryCount is the surface selection policy: walls keep the top two
// ranked candidates, ceiling and floor keep the top one.
func primaryCount(surface models.SurfaceType) int {
	if surface == models.SurfaceWalls {
		return 2
	}
	return 1
}

// SolutionsManager supplies candidate solutions from the catalog.
type SolutionsManager interface {
	Get(ctx context.Context, codeName string) (*models.Solution, error)
	BySurface(ctx context.Context, surface models.SurfaceType) ([]*models.Solution, error)
}

// Request is one recommendation request as handed over by the API layer.
type Request struct {
	Noise               *models.NoiseProfile `json:"noise"`
	Room                *models.RoomProfile  `json:"room"`
	Budget              float64              `json:"budget,omitempty"`
	SpecialRequirements []string             `json:"special_requirements,omitempty"`
	IncludeCosts        bool                 `json:"include_costs,omitempty"`
}

// Engine ranks candidate solutions per affected surface and assembles the
// recommendation. Collaborators are injected once at construction; requests
// run strictly sequentially within their own call.
type Engine struct {
	solutions  SolutionsManager
	acoustics  *calculator.AcousticCalculator
	costs      *calculator.CostCalculator
	logger     logger.Logger
	errHandler *errors.ErrorHandler
}

func New(solutions SolutionsManager, acoustics *calculator.AcousticCalculator, costs *calculator.CostCalculator, log logger.Logger) *Engine {
	log = log.WithFields(map[string]interface{}{"component": "recommendation-engine"})
	return &Engine{
		solutions:  solutions,
		acoustics:  acoustics,
		costs:      costs,
		logger:     log,
		errHandler: errors.NewErrorHandler(log),
	}
}

// GenerateRecommendations produces the primary/alternative selections for a
// request. Missing collaborators or empty candidate sets degrade to empty
// results with a reasoning entry; they never abort the whole request.
func (e *Engine) GenerateRecommendations(ctx context.Context, req Request) *models.Recommendation {
	rec := &models.Recommendation{
		RequestID: uuid.NewString(),
		Primary:   make(map[models.SurfaceType][]models.RankedSolution),
	}

	if req.Noise == nil || req.Room == nil {
		rec.Reasoning = append(rec.Reasoning, "request incomplete: noise and room profiles are both required")
		metrics.RecommendationsServed.WithLabelValues("invalid").Inc()
		return rec
	}
	if err := req.Noise.Validate(); err != nil {
		stdErr := e.errHandler.Handle("noise", err)
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("noise profile rejected: %s", stdErr.Message))
		metrics.RecommendationsServed.WithLabelValues("invalid").Inc()
		return rec
	}
	if err := req.Room.Validate(); err != nil {
		stdErr := e.errHandler.Handle("room", err)
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("room profile rejected: %s", stdErr.Message))
		metrics.RecommendationsServed.WithLabelValues("invalid").Inc()
		return rec
	}
	if e.solutions == nil || e.acoustics == nil {
		e.logger.Error("engine missing collaborators", map[string]interface{}{
			"haveSolutions": e.solutions != nil,
			"haveAcoustics": e.acoustics != nil,
		})
		rec.Reasoning = append(rec.Reasoning, "recommendation engine unavailable: catalog or acoustic calculator not configured")
		metrics.RecommendationsServed.WithLabelValues("degraded").Inc()
		return rec
	}

	inputs := RankInputs{
		Room:                req.Room,
		Noise:               req.Noise,
		Budget:              req.Budget,
		SpecialRequirements: req.SpecialRequirements,
	}

	rec.Reasoning = append(rec.Reasoning, fmt.Sprintf(
		"%s noise at intensity %d implicates %d surface(s)",
		req.Noise.Type, req.Noise.Intensity, len(req.Noise.AffectedSurfaces())))

	var costs models.CostSummary

	for _, surface := range req.Noise.AffectedSurfaces() {
		if len(req.Room.Surfaces) > 0 && !req.Room.HasSurface(surface) {
			rec.Reasoning = append(rec.Reasoning, fmt.Sprintf(
				"%s affected by the noise but not selected for treatment", surface))
			continue
		}

		candidates, err := e.solutions.BySurface(ctx, surface)
		if err != nil {
			e.errHandler.Handle(string(surface), err)
			rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("no candidates available for %s", surface))
			continue
		}
		if len(candidates) == 0 {
			e.errHandler.Handle(string(surface), errors.NewNoCandidatesError(string(surface)))
			rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("no candidates available for %s", surface))
			continue
		}

		ranked := e.RankSolutions(ctx, candidates, inputs)
		if len(ranked) == 0 {
			rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("all candidates for %s failed scoring", surface))
			continue
		}

		keep := primaryCount(surface)
		if keep > len(ranked) {
			keep = len(ranked)
		}
		rec.Primary[surface] = ranked[:keep]
		rec.Alternatives = append(rec.Alternatives, ranked[keep:]...)

		top := ranked[0]
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf(
			"%s: recommended %q scoring %.1f of 100", surface, top.Solution.DisplayName, top.Score))

		if req.IncludeCosts && e.costs != nil {
			breakdown, err := e.costs.ComputeCosts(ctx, top.Solution, req.Room)
			if err != nil {
				e.errHandler.Handle(string(surface), err)
			} else {
				costs.Add(breakdown)
			}
		}
	}

	if len(costs.Surfaces) > 0 {
		rec.Costs = &costs
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf(
			"estimated total cost across %d surface(s): %.2f", len(costs.Surfaces), costs.TotalCost))
	}

	status := "ok"
	if len(rec.Primary) == 0 {
		status = "empty"
	}
	metrics.RecommendationsServed.WithLabelValues(status).Inc()

	e.logger.Info("recommendation generated", map[string]interface{}{
		"requestId":    rec.RequestID,
		"surfaces":     len(rec.Primary),
		"alternatives": len(rec.Alternatives),
	})

	return rec
}
