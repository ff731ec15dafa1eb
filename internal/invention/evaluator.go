package invention

import (
	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/metrics"
)

// Probability computes the adjusted invention success chance. Skill levels
// default to 0; a zero catalyst multiplier means "no catalyst" and is
// treated as 1.0. The result is clamped to [0, 1].
func Probability(baseProbability float64, skills domain.Skills, catalystMultiplier float64) float64 {
	if baseProbability <= 0 {
		return 0
	}
	if catalystMultiplier == 0 {
		catalystMultiplier = 1.0
	}

	p := baseProbability *
		(1 + float64(skills.EncryptionLevel)/encryptionSkillDivisor) *
		(1 + float64(skills.DatacoreLevel1+skills.DatacoreLevel2)/datacoreSkillDivisor) *
		catalystMultiplier

	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// EvaluateCost computes the economics of one invention option. A missing
// material or catalyst price counts as 0. Division by a zero probability or
// zero output count is guarded; the result never carries NaN or Inf.
func EvaluateCost(job domain.InventionJob, prices domain.PriceMap, probability float64, catalyst *domain.Decryptor, catalystPrice float64) domain.InventionOutcome {
	metrics.InventionEvaluations.Inc()

	materialCost := 0.0
	for _, line := range job.Materials {
		materialCost += prices.Price(line.MaterialID) * float64(line.BaseQuantity)
	}

	jobCost := materialCost * JobCostRate
	totalPerAttempt := materialCost + catalystPrice + jobCost

	costPerSuccess := 0.0
	if probability > 0 {
		costPerSuccess = totalPerAttempt / probability
	}

	outputRuns := job.BaseOutputRuns()
	if catalyst != nil {
		outputRuns += catalyst.OutputCountModifier
	}

	costPerOutputUnit := costPerSuccess
	if outputRuns > 0 {
		costPerOutputUnit = costPerSuccess / float64(outputRuns)
	}

	return domain.InventionOutcome{
		Decryptor:         catalyst,
		Probability:       probability,
		MaterialCost:      materialCost,
		CatalystCost:      catalystPrice,
		JobCost:           jobCost,
		CostPerSuccess:    costPerSuccess,
		OutputRunsPerUnit: outputRuns,
		CostPerOutputUnit: costPerOutputUnit,
	}
}
