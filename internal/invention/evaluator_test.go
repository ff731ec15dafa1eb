package invention

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tvarnsen/indyplan/internal/domain"
)

func TestProbability(t *testing.T) {
	t.Run("Skill multipliers stack on the base", func(t *testing.T) {
		// 0.3 * (1 + 5/40) * (1 + (4+4)/30) = 0.4275
		got := Probability(0.3, domain.Skills{EncryptionLevel: 5, DatacoreLevel1: 4, DatacoreLevel2: 4}, 1.0)
		assert.InDelta(t, 0.4275, got, 1e-9)
	})

	t.Run("Zero skills leave the base unchanged", func(t *testing.T) {
		assert.InDelta(t, 0.34, Probability(0.34, domain.Skills{}, 1.0), 1e-9)
	})

	t.Run("Catalyst multiplier scales the result", func(t *testing.T) {
		base := Probability(0.3, domain.Skills{EncryptionLevel: 5}, 1.0)
		boosted := Probability(0.3, domain.Skills{EncryptionLevel: 5}, 1.8)
		assert.InDelta(t, base*1.8, boosted, 1e-9)
	})

	t.Run("Zero multiplier means no catalyst", func(t *testing.T) {
		assert.Equal(t, Probability(0.3, domain.Skills{}, 1.0), Probability(0.3, domain.Skills{}, 0))
	})

	t.Run("Result is capped at 1", func(t *testing.T) {
		got := Probability(0.9, domain.Skills{EncryptionLevel: 1000, DatacoreLevel1: 1000}, 1.8)
		assert.Equal(t, 1.0, got)
	})

	t.Run("Non-positive base yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Probability(0, domain.Skills{EncryptionLevel: 5}, 1.8))
		assert.Equal(t, 0.0, Probability(-0.1, domain.Skills{EncryptionLevel: 5}, 1.8))
	})

	t.Run("Higher skills never lower the probability", func(t *testing.T) {
		prev := 0.0
		for level := 0; level <= 5; level++ {
			p := Probability(0.3, domain.Skills{EncryptionLevel: level}, 1.0)
			assert.GreaterOrEqual(t, p, prev)
			prev = p
		}
	})
}

func TestEvaluateCost(t *testing.T) {
	job := domain.InventionJob{
		BaseProbability: 0.3,
		Materials: []domain.RecipeMaterial{
			{MaterialID: 20410, BaseQuantity: 2},
			{MaterialID: 11399, BaseQuantity: 1},
		},
		CandidateOutputs: []domain.RecipeProduct{{OutputID: 12345, OutputQuantity: 10}},
	}
	prices := domain.PriceMap{20410: 100_000, 11399: 50_000}

	t.Run("Costs compose from materials, job fee, and catalyst", func(t *testing.T) {
		outcome := EvaluateCost(job, prices, 0.5, nil, 0)

		assert.InDelta(t, 250_000, outcome.MaterialCost, 1e-6)
		assert.InDelta(t, 250_000*JobCostRate, outcome.JobCost, 1e-6)
		assert.InDelta(t, (250_000+250_000*JobCostRate)/0.5, outcome.CostPerSuccess, 1e-6)
		assert.Equal(t, int64(10), outcome.OutputRunsPerUnit)
		assert.InDelta(t, outcome.CostPerSuccess/10, outcome.CostPerOutputUnit, 1e-6)
	})

	t.Run("Catalyst price and output modifier are included", func(t *testing.T) {
		catalyst := &domain.Decryptor{ID: 34202, OutputCountModifier: 4}
		outcome := EvaluateCost(job, prices, 0.5, catalyst, 1_000_000)

		assert.InDelta(t, 1_000_000, outcome.CatalystCost, 1e-6)
		assert.Equal(t, int64(14), outcome.OutputRunsPerUnit)
		assert.InDelta(t, (250_000+1_000_000+250_000*JobCostRate)/0.5/14, outcome.CostPerOutputUnit, 1e-6)
	})

	t.Run("Missing material prices count as zero", func(t *testing.T) {
		outcome := EvaluateCost(job, domain.PriceMap{}, 0.5, nil, 0)
		assert.Equal(t, 0.0, outcome.MaterialCost)
		assert.Equal(t, 0.0, outcome.CostPerSuccess)
	})

	t.Run("Zero probability never divides", func(t *testing.T) {
		outcome := EvaluateCost(job, prices, 0, nil, 0)
		assert.Equal(t, 0.0, outcome.CostPerSuccess)
		assert.Equal(t, 0.0, outcome.CostPerOutputUnit)
	})

	t.Run("Zero output runs fall back to cost per success", func(t *testing.T) {
		noOutput := domain.InventionJob{
			BaseProbability: 0.3,
			Materials:       job.Materials,
		}
		outcome := EvaluateCost(noOutput, prices, 0.5, nil, 0)
		assert.Equal(t, int64(0), outcome.OutputRunsPerUnit)
		assert.Equal(t, outcome.CostPerSuccess, outcome.CostPerOutputUnit)
	})
}
