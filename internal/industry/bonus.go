package industry

import (
	"context"
	"math"

	"github.com/tvarnsen/indyplan/internal/catalog"
	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/logger"
	"github.com/tvarnsen/indyplan/internal/metrics"
)

// adjustedQuantity computes one material line's adjusted quantity. The
// multiplications are applied strictly in this order because it affects the
// final rounded result: efficiency level, then structure, then rigs.
// Malformed numeric input collapses to 0; the result never rounds below the
// run count.
func adjustedQuantity(baseQuantity int64, efficiencyLevel int, runs int64, structureBonus bool, rigBonusPercent float64) int64 {
	if baseQuantity <= 0 || runs <= 0 {
		return 0
	}
	if efficiencyLevel < 0 {
		efficiencyLevel = 0
	}
	if efficiencyLevel > MaxEfficiencyLevel {
		efficiencyLevel = MaxEfficiencyLevel
	}

	quantity := float64(runs) * float64(baseQuantity) * (1 - float64(efficiencyLevel)/100)
	if structureBonus {
		quantity *= 1 - StructureMaterialReduction
	}
	if rigBonusPercent != 0 {
		quantity *= 1 + rigBonusPercent/100
	}

	adjusted := int64(math.Ceil(quantity))
	if adjusted < runs {
		adjusted = runs
	}
	return adjusted
}

// BonusComposer resolves facility bonuses against the catalog and applies
// them to material quantities.
type BonusComposer struct {
	catalog catalog.Lookup
}

// NewBonusComposer creates a composer backed by the given catalog.
func NewBonusComposer(lookup catalog.Lookup) *BonusComposer {
	return &BonusComposer{catalog: lookup}
}

// AdjustedQuantity applies efficiency, structure, and rig bonuses to one
// material line. A rig bonus applies only when the facility mounts at least
// one rig and the rig's target group matches the output item's group. A
// failed rig lookup degrades to no rig bonus.
func (b *BonusComposer) AdjustedQuantity(ctx context.Context, baseQuantity int64, efficiencyLevel int, runs int64, facility *domain.Facility, outputGroup domain.GroupID) int64 {
	rigBonus := 0.0
	if facility.HasRigs() && outputGroup != 0 {
		pct, err := b.catalog.GetRigBonus(ctx, facility.Rigs, outputGroup, facility.SecurityStatus)
		if err != nil {
			logger.FromContext(ctx).Warn("Rig bonus lookup failed, applying no rig bonus",
				"group", outputGroup, "error", err)
			metrics.CatalogDegradations.Inc()
		} else {
			rigBonus = pct
		}
	}
	return adjustedQuantity(baseQuantity, efficiencyLevel, runs, facility.HasStructureBonus(), rigBonus)
}
