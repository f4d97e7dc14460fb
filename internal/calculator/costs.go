// internal/calculator/costs.go
package calculator

import (
	"context"
	"math"
	"strings"
	"time"

	"soundproofing-calculator/internal/cache"
	"soundproofing-calculator/internal/common/errors"
	"soundproofing-calculator/internal/common/logger"
	"soundproofing-calculator/internal/models"
)

// Usable area never drops below this after blockage subtraction; degenerate
// zero or negative areas would break every downstream division.
const minUsableArea = 0.1

// MaterialSource supplies catalog material records by name.
type MaterialSource interface {
	Get(ctx context.Context, name string) (models.Material, error)
}

// CostCalculator derives material quantities and costs for one surface.
type CostCalculator struct {
	materials MaterialSource
	cache     cache.Cache
	logger    logger.Logger

	laborRate float64 // default fraction of materials cost
	wastage   float64 // over-order multiplier for area materials
	costTTL   time.Duration
}

// CostOption tweaks calculator construction.
type CostOption func(*CostCalculator)

func WithLaborRate(rate float64) CostOption {
	return func(c *CostCalculator) { c.laborRate = rate }
}

func WithWastageFactor(factor float64) CostOption {
	return func(c *CostCalculator) { c.wastage = factor }
}

func WithCostTTL(ttl time.Duration) CostOption {
	return func(c *CostCalculator) { c.costTTL = ttl }
}

func NewCostCalculator(materials MaterialSource, cch cache.Cache, log logger.Logger, opts ...CostOption) *CostCalculator {
	c := &CostCalculator{
		materials: materials,
		cache:     cch,
		logger:    log.WithFields(map[string]interface{}{"component": "cost-calculator"}),
		laborRate: 0.35,
		wastage:   1.10,
		costTTL:   10 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SurfaceDims are the resolved measurements quantity rules work from.
type SurfaceDims struct {
	Area      float64 // usable area after blockage subtraction, m^2
	Perimeter float64 // m
	Span      float64 // dimension fixture spacing runs along, m
}

// ResolveSurfaceDims computes area and perimeter for one surface of the room.
// Walls use length x height, horizontal surfaces length x width. Blockage
// area is subtracted and the result floored at the minimum usable area.
func ResolveSurfaceDims(surface models.SurfaceType, room *models.RoomProfile) SurfaceDims {
	d := room.Dimensions

	var area, perimeter float64
	if surface.Horizontal() {
		area = d.Length * d.Width
		perimeter = 2 * (d.Length + d.Width)
	} else {
		area = d.Length * d.Height
		perimeter = 2 * (d.Length + d.Height)
	}

	area -= room.BlockedArea(surface)
	if area < minUsableArea {
		area = minUsableArea
	}

	return SurfaceDims{Area: area, Perimeter: perimeter, Span: d.Length}
}

// ComputeQuantity derives the whole-unit purchase count for one material.
// Every path rounds up; under-ordering is the failure mode to avoid.
func ComputeQuantity(mat models.Material, rule QuantityRule, layers int, dims SurfaceDims, wastage float64) (int, error) {
	switch rule.Kind {
	case RuleAreaWithWastage:
		if mat.Coverage <= 0 {
			return 0, errors.NewInvalidCoverageError(mat.Name, mat.Coverage)
		}
		if layers < 1 {
			layers = rule.Layers
		}
		if layers < 1 {
			layers = 1
		}
		return int(math.Ceil(dims.Area * float64(layers) * wastage / mat.Coverage)), nil

	case RulePerimeterBased:
		if mat.Coverage <= 0 {
			return 0, errors.NewInvalidCoverageError(mat.Name, mat.Coverage)
		}
		return int(math.Ceil(dims.Perimeter / mat.Coverage)), nil

	case RuleSpacingBased:
		allowance := rule.ExtraAllowance
		if allowance <= 0 {
			allowance = 1.0
		}
		return int(math.Ceil(dims.Span / rule.Spacing * allowance)), nil

	case RuleFixedMinimum:
		qty := int(math.Ceil(dims.Area * rule.PerArea))
		if qty < rule.Minimum {
			qty = rule.Minimum
		}
		return qty, nil

	default:
		if mat.Coverage <= 0 {
			return 0, errors.NewInvalidCoverageError(mat.Name, mat.Coverage)
		}
		return int(math.Ceil(dims.Area / mat.Coverage)), nil
	}
}

// ComputeCosts derives the full cost breakdown for a solution applied to one
// surface of the room. A non-positive coverage on any required material
// aborts the surface calculation.
func (c *CostCalculator) ComputeCosts(ctx context.Context, solution *models.Solution, room *models.RoomProfile) (models.CostBreakdown, error) {
	if err := room.Validate(); err != nil {
		return models.CostBreakdown{}, err
	}

	key := cache.CostKey(solution.CodeName, room.Dimensions, room.BlockedArea(solution.SurfaceType))
	var cached models.CostBreakdown
	if c.cache != nil && c.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	dims := ResolveSurfaceDims(solution.SurfaceType, room)

	breakdown := models.CostBreakdown{
		Surface:  solution.SurfaceType,
		Solution: solution.CodeName,
		Items:    make([]models.CostItem, 0, len(solution.Materials)),
	}

	for _, sm := range solution.Materials {
		mat, err := c.materials.Get(ctx, sm.Name)
		if err != nil {
			return models.CostBreakdown{}, err
		}
		if sm.Coverage > 0 {
			mat.Coverage = sm.Coverage
		}

		rule := ResolveRule(mat.Name)
		layers := sm.Layers
		if layers == 0 && rule.Kind == RuleAreaWithWastage && strings.Contains(strings.ToLower(mat.Name), "plasterboard") {
			layers = solution.PlasterboardLayers()
		}

		quantity, err := ComputeQuantity(mat, rule, layers, dims, c.wastage)
		if err != nil {
			return models.CostBreakdown{}, err
		}

		item := models.CostItem{
			Material:  mat.Name,
			Quantity:  quantity,
			UnitCost:  mat.UnitCost,
			TotalCost: float64(quantity) * mat.UnitCost,
		}
		breakdown.Items = append(breakdown.Items, item)
		breakdown.MaterialsCost += item.TotalCost
	}

	rate := solution.LaborRate
	if rate <= 0 {
		rate = c.laborRate
	}
	breakdown.LaborCost = breakdown.MaterialsCost * rate
	breakdown.TotalCost = breakdown.MaterialsCost + breakdown.LaborCost

	c.logger.Debug("cost breakdown computed", map[string]interface{}{
		"solution":      solution.CodeName,
		"surface":       string(solution.SurfaceType),
		"materialsCost": breakdown.MaterialsCost,
		"totalCost":     breakdown.TotalCost,
	})

	if c.cache != nil {
		c.cache.Set(ctx, key, breakdown, c.costTTL)
	}

	return breakdown, nil
}
