package invention

import (
	"context"
	"fmt"

	"github.com/tvarnsen/indyplan/internal/catalog"
	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/logger"
	"github.com/tvarnsen/indyplan/internal/metrics"
)

// OptimizerResult holds the cost-minimizing option, the no-catalyst
// baseline, and every evaluated option for client-side sorting.
type OptimizerResult struct {
	Best       domain.InventionOutcome   `json:"best"`
	NoCatalyst domain.InventionOutcome   `json:"no_catalyst"`
	AllOptions []domain.InventionOutcome `json:"all_options"`
}

// Service defines the invention planning operations.
type Service interface {
	BuildJob(ctx context.Context, recipeID domain.RecipeID, baseProbability float64) (*domain.InventionJob, error)
	FindBestDecryptor(ctx context.Context, job domain.InventionJob, prices domain.PriceMap, skills domain.Skills) (*OptimizerResult, error)
}

type service struct {
	catalog catalog.Lookup
}

// NewService creates a new invention service.
func NewService(lookup catalog.Lookup) Service {
	return &service{catalog: lookup}
}

// BuildJob seeds an invention job from the catalog: the invention recipe's
// material lines and its candidate output.
func (s *service) BuildJob(ctx context.Context, recipeID domain.RecipeID, baseProbability float64) (*domain.InventionJob, error) {
	product, err := s.catalog.GetRecipeProduct(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invention product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrRecipeNotFound, recipeID)
	}

	materials, err := s.catalog.GetRecipeMaterials(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invention materials: %w", err)
	}

	return &domain.InventionJob{
		BaseProbability:  baseProbability,
		Materials:        materials,
		CandidateOutputs: []domain.RecipeProduct{*product},
	}, nil
}

// FindBestDecryptor evaluates the no-catalyst baseline plus every decryptor
// in the catalog and returns the option minimizing cost per output unit.
// Ties keep the first-seen option, so the baseline wins them. A missing
// decryptor price counts as 0 rather than excluding the option. A failed
// decryptor listing degrades to the baseline alone.
func (s *service) FindBestDecryptor(ctx context.Context, job domain.InventionJob, prices domain.PriceMap, skills domain.Skills) (*OptimizerResult, error) {
	log := logger.FromContext(ctx)
	log.Info("FindBestDecryptor called", "baseProbability", job.BaseProbability)

	baseline := EvaluateCost(job, prices, Probability(job.BaseProbability, skills, 1.0), nil, 0)

	result := &OptimizerResult{
		Best:       baseline,
		NoCatalyst: baseline,
		AllOptions: []domain.InventionOutcome{baseline},
	}

	decryptors, err := s.catalog.GetAllDecryptors(ctx)
	if err != nil {
		log.Error("Decryptor listing failed, returning baseline only", "error", err)
		metrics.CatalogDegradations.Inc()
		return result, nil
	}

	for i := range decryptors {
		d := decryptors[i]
		probability := Probability(job.BaseProbability, skills, d.ProbabilityMultiplier)
		outcome := EvaluateCost(job, prices, probability, &d, prices.Price(d.ID))
		result.AllOptions = append(result.AllOptions, outcome)
		metrics.DecryptorsCompared.Inc()

		if outcome.CostPerOutputUnit < result.Best.CostPerOutputUnit {
			result.Best = outcome
		}
	}

	log.Info("Decryptor optimization finished",
		"options", len(result.AllOptions),
		"costPerOutputUnit", result.Best.CostPerOutputUnit)
	return result, nil
}
