package industry

import (
	"context"
	"fmt"
	"time"

	"github.com/tvarnsen/indyplan/internal/catalog"
	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/logger"
	"github.com/tvarnsen/indyplan/internal/metrics"
)

// CostReporter prices a finished expansion. Implemented by the pricing
// package; optional.
type CostReporter interface {
	Report(ctx context.Context, materials domain.AggregateMaterials, product domain.RecipeProduct) (*domain.CostReport, error)
}

// ExpandRequest describes one bill-of-materials calculation.
type ExpandRequest struct {
	RecipeID        domain.RecipeID
	Runs            int64
	EfficiencyLevel int
	Efficiencies    domain.EfficiencyLevels
	Facility        *domain.Facility
	WithPricing     bool
}

// ExpandResult is the outcome of one expansion. A recipe unknown to the
// catalog yields empty materials, a nil breakdown, and a nil product rather
// than an error.
type ExpandResult struct {
	Materials domain.AggregateMaterials `json:"materials"`
	Breakdown *domain.ProductionNode    `json:"breakdown,omitempty"`
	Product   *domain.RecipeProduct     `json:"product,omitempty"`
	Pricing   *domain.CostReport        `json:"pricing,omitempty"`
}

// Service defines the bill-of-materials expansion operations.
type Service interface {
	Expand(ctx context.Context, req ExpandRequest) (*ExpandResult, error)
}

type service struct {
	catalog  catalog.Lookup
	bonus    *BonusComposer
	reporter CostReporter
}

// NewService creates a new expansion service. reporter may be nil when no
// pricing collaborator is available.
func NewService(lookup catalog.Lookup, reporter CostReporter) Service {
	return &service{
		catalog:  lookup,
		bonus:    NewBonusComposer(lookup),
		reporter: reporter,
	}
}

// Expand walks the recipe graph depth-first and aggregates every raw
// material needed. Catalog failures degrade to empty defaults so the caller
// always gets a best-effort partial result; the only errors returned are for
// invalid input.
func (s *service) Expand(ctx context.Context, req ExpandRequest) (*ExpandResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Expand called", "recipeID", req.RecipeID, "runs", req.Runs, "efficiencyLevel", req.EfficiencyLevel)

	if req.Runs < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidRuns, req.Runs)
	}
	if req.EfficiencyLevel < 0 || req.EfficiencyLevel > MaxEfficiencyLevel {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidEfficiency, req.EfficiencyLevel)
	}

	start := time.Now()
	metrics.ExpansionsTotal.Inc()
	defer func() {
		metrics.ExpansionDuration.Observe(time.Since(start).Seconds())
	}()

	walk := &expansion{
		catalog:      s.catalog,
		bonus:        s.bonus,
		efficiencies: req.Efficiencies,
		facility:     req.Facility,
		memo:         make(map[memoKey]*subResult),
	}

	sub, found := walk.expand(ctx, req.RecipeID, req.Runs, req.EfficiencyLevel, 0)
	if !found {
		log.Warn("Recipe not found", "recipeID", req.RecipeID)
		return &ExpandResult{Materials: domain.AggregateMaterials{}}, nil
	}

	result := &ExpandResult{
		Materials: sub.materials,
		Breakdown: sub.node,
		Product: &domain.RecipeProduct{
			OutputID:       sub.node.Product.OutputID,
			OutputQuantity: sub.node.Product.OutputQuantity,
		},
	}

	if req.WithPricing && s.reporter != nil {
		report, err := s.reporter.Report(ctx, result.Materials, *result.Product)
		if err != nil {
			log.Warn("Cost report unavailable", "recipeID", req.RecipeID, "error", err)
		} else {
			result.Pricing = report
		}
	}

	log.Info("Expand finished", "recipeID", req.RecipeID, "materials", len(result.Materials))
	return result, nil
}

// memoKey identifies a sub-expansion within one request. The facility is
// constant for the whole request, so it is not part of the key.
type memoKey struct {
	recipeID domain.RecipeID
	runs     int64
	level    int
}

type subResult struct {
	node      *domain.ProductionNode
	materials domain.AggregateMaterials
	// truncated marks a result whose subtree was cut off by the depth
	// guard. Such results are never memoized: the same recipe reached at
	// a shallower depth must get a fresh, complete walk.
	truncated bool
}

// expansion is the per-request walk state. It is owned by one Expand call
// and never shared; concurrent requests each carry their own.
type expansion struct {
	catalog      catalog.Lookup
	bonus        *BonusComposer
	efficiencies domain.EfficiencyLevels
	facility     *domain.Facility
	memo         map[memoKey]*subResult
}

// expand computes one node of the tree. Returns found=false when the recipe
// has no product in the catalog. Each call mutates only its own accumulator
// and merges child results after they resolve, so a suspended catalog call
// never holds partial shared state.
func (e *expansion) expand(ctx context.Context, recipeID domain.RecipeID, runs int64, level int, depth int) (*subResult, bool) {
	log := logger.FromContext(ctx)

	if depth > MaxDepth {
		log.Warn("Recursion depth limit reached, abandoning subtree",
			"recipeID", recipeID, "depth", depth)
		metrics.DepthLimitHits.Inc()
		return &subResult{
			node:      &domain.ProductionNode{RecipeID: recipeID, Runs: runs, EfficiencyLevel: level},
			materials: domain.AggregateMaterials{},
			truncated: true,
		}, true
	}

	key := memoKey{recipeID: recipeID, runs: runs, level: level}
	if cached, ok := e.memo[key]; ok {
		return cached, true
	}

	product, err := e.catalog.GetRecipeProduct(ctx, recipeID)
	if err != nil {
		log.Error("Product lookup failed", "recipeID", recipeID, "error", err)
		metrics.CatalogDegradations.Inc()
		return nil, false
	}
	if product == nil {
		return nil, false
	}

	outputGroup, err := e.catalog.GetItemGroup(ctx, product.OutputID)
	if err != nil {
		log.Warn("Item group lookup failed, rig bonuses disabled for node",
			"itemID", product.OutputID, "error", err)
		metrics.CatalogDegradations.Inc()
		outputGroup = 0
	}

	lines, err := e.catalog.GetRecipeMaterials(ctx, recipeID)
	if err != nil {
		log.Error("Material lookup failed, treating recipe as having no materials",
			"recipeID", recipeID, "error", err)
		metrics.CatalogDegradations.Inc()
		lines = nil
	}

	node := &domain.ProductionNode{
		RecipeID:        recipeID,
		Runs:            runs,
		EfficiencyLevel: level,
		Product: domain.RecipeProduct{
			OutputID:       product.OutputID,
			OutputQuantity: product.OutputQuantity * runs,
		},
	}
	aggregate := make(domain.AggregateMaterials)
	truncated := false

	for _, line := range lines {
		// Zero or negative base quantity contributes nothing.
		if line.BaseQuantity <= 0 {
			continue
		}
		quantity := e.bonus.AdjustedQuantity(ctx, line.BaseQuantity, level, runs, e.facility, outputGroup)

		producer, err := e.catalog.GetRecipeForProduct(ctx, line.MaterialID)
		if err != nil {
			log.Warn("Reverse lookup failed, treating material as raw",
				"materialID", line.MaterialID, "error", err)
			metrics.CatalogDegradations.Inc()
			producer = 0
		}

		if producer != 0 {
			sub, ok := e.expand(ctx, producer, quantity, e.efficiencies.Level(producer), depth+1)
			if ok {
				aggregate.Merge(sub.materials)
				node.Intermediates = append(node.Intermediates, sub.node)
				truncated = truncated || sub.truncated
				continue
			}
			// The producing recipe vanished between lookups; fall through
			// and buy the material instead.
		}

		aggregate[line.MaterialID] += quantity
		node.RawMaterials = append(node.RawMaterials, domain.MaterialLine{
			MaterialID: line.MaterialID,
			Name:       e.itemName(ctx, line.MaterialID),
			Quantity:   quantity,
		})
	}

	result := &subResult{node: node, materials: aggregate, truncated: truncated}
	if !truncated {
		e.memo[key] = result
	}
	return result, true
}

// itemName resolves a display name. Display only; failures degrade to empty.
func (e *expansion) itemName(ctx context.Context, id domain.ItemID) string {
	name, err := e.catalog.GetItemName(ctx, id)
	if err != nil {
		return ""
	}
	return name
}
