package invention

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvarnsen/indyplan/internal/catalog"
	"github.com/tvarnsen/indyplan/internal/domain"
)

// failingDecryptorLookup fails the decryptor listing only.
type failingDecryptorLookup struct {
	catalog.Lookup
}

func (f *failingDecryptorLookup) GetAllDecryptors(context.Context) ([]domain.Decryptor, error) {
	return nil, errors.New("catalog offline")
}

func inventionStore() *catalog.MemoryStore {
	store := catalog.NewMemoryStore()
	store.AddItem(12345, "Light Frigate Hull", 25)
	store.AddItem(20410, "Datacore - High Energy Physics", 333)
	store.AddItem(11399, "Morphite", 18)
	store.AddRecipe(300, domain.RecipeProduct{OutputID: 12345, OutputQuantity: 10},
		[]domain.RecipeMaterial{
			{MaterialID: 20410, BaseQuantity: 2},
			{MaterialID: 11399, BaseQuantity: 1},
		})
	store.AddDecryptor(domain.Decryptor{ID: 34201, Name: "Accelerant", ProbabilityMultiplier: 1.2, OutputCountModifier: 1})
	store.AddDecryptor(domain.Decryptor{ID: 34202, Name: "Attainment", ProbabilityMultiplier: 1.8, OutputCountModifier: 4})
	store.AddDecryptor(domain.Decryptor{ID: 34203, Name: "Augmentation", ProbabilityMultiplier: 0.6, OutputCountModifier: 9})
	return store
}

func TestBuildJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Job is seeded from the catalog", func(t *testing.T) {
		svc := NewService(inventionStore())

		job, err := svc.BuildJob(ctx, 300, 0.3)

		require.NoError(t, err)
		assert.Equal(t, 0.3, job.BaseProbability)
		assert.Len(t, job.Materials, 2)
		require.Len(t, job.CandidateOutputs, 1)
		assert.Equal(t, int64(10), job.BaseOutputRuns())
	})

	t.Run("Unknown recipe is an error", func(t *testing.T) {
		svc := NewService(inventionStore())

		_, err := svc.BuildJob(ctx, 999, 0.3)

		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestFindBestDecryptor(t *testing.T) {
	ctx := context.Background()
	skills := domain.Skills{EncryptionLevel: 5, DatacoreLevel1: 4, DatacoreLevel2: 4}
	prices := domain.PriceMap{
		20410: 100_000,
		11399: 50_000,
		34201: 500_000,
		34202: 1_500_000,
		34203: 200_000,
	}

	buildJob := func(t *testing.T, svc Service) domain.InventionJob {
		job, err := svc.BuildJob(ctx, 300, 0.3)
		require.NoError(t, err)
		return *job
	}

	t.Run("Best option minimizes cost per output unit", func(t *testing.T) {
		svc := NewService(inventionStore())

		result, err := svc.FindBestDecryptor(ctx, buildJob(t, svc), prices, skills)

		require.NoError(t, err)
		assert.Len(t, result.AllOptions, 4, "baseline plus every decryptor")
		for _, option := range result.AllOptions {
			assert.LessOrEqual(t, result.Best.CostPerOutputUnit, option.CostPerOutputUnit)
		}
		assert.Nil(t, result.NoCatalyst.Decryptor)
	})

	t.Run("Baseline wins ties", func(t *testing.T) {
		store := catalog.NewMemoryStore()
		store.AddItem(12345, "Light Frigate Hull", 25)
		store.AddRecipe(300, domain.RecipeProduct{OutputID: 12345, OutputQuantity: 10}, nil)
		// Identical to no catalyst: multiplier 1, no output change, free.
		store.AddDecryptor(domain.Decryptor{ID: 34209, Name: "Placebo", ProbabilityMultiplier: 1.0})
		svc := NewService(store)

		result, err := svc.FindBestDecryptor(ctx, buildJob(t, svc), prices, skills)

		require.NoError(t, err)
		assert.Nil(t, result.Best.Decryptor, "tie should keep the baseline")
	})

	t.Run("Missing catalyst price counts as zero", func(t *testing.T) {
		svc := NewService(inventionStore())

		result, err := svc.FindBestDecryptor(ctx, buildJob(t, svc), domain.PriceMap{}, skills)

		require.NoError(t, err)
		for _, option := range result.AllOptions {
			assert.Equal(t, 0.0, option.CatalystCost)
		}
	})

	t.Run("Failed decryptor listing degrades to the baseline", func(t *testing.T) {
		svc := NewService(&failingDecryptorLookup{Lookup: inventionStore()})

		result, err := svc.FindBestDecryptor(ctx, buildJob(t, svc), prices, skills)

		require.NoError(t, err)
		assert.Len(t, result.AllOptions, 1)
		assert.Equal(t, result.NoCatalyst, result.Best)
	})
}
