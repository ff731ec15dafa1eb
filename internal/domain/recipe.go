package domain

// RecipeMaterial is a single material line of a recipe, as stored in the
// static reference dataset.
type RecipeMaterial struct {
	MaterialID   ItemID `json:"material_id"`
	BaseQuantity int64  `json:"base_quantity"`
}

// RecipeProduct is the output of one recipe.
type RecipeProduct struct {
	OutputID       ItemID `json:"output_id"`
	OutputQuantity int64  `json:"output_quantity"`
}

// MaterialLine is a resolved material requirement within a production node.
type MaterialLine struct {
	MaterialID ItemID `json:"material_id"`
	Name       string `json:"name,omitempty"`
	Quantity   int64  `json:"quantity"`
}

// ProductionNode is one level of a bill-of-materials breakdown. It is owned
// exclusively by the calculation that built it and is discarded once the
// caller consumes the result.
type ProductionNode struct {
	RecipeID        RecipeID          `json:"recipe_id"`
	Runs            int64             `json:"runs"`
	EfficiencyLevel int               `json:"efficiency_level"`
	RawMaterials    []MaterialLine    `json:"raw_materials,omitempty"`
	Intermediates   []*ProductionNode `json:"intermediates,omitempty"`
	Product         RecipeProduct     `json:"product"`
}

// AggregateMaterials is the flattened raw-material total of a whole
// expansion, accumulated by key-wise addition as the recursion unwinds.
type AggregateMaterials map[ItemID]int64

// Merge adds every quantity in other into m.
func (m AggregateMaterials) Merge(other AggregateMaterials) {
	for id, qty := range other {
		m[id] += qty
	}
}

// EfficiencyLevels is the caller's owned-recipe efficiency context.
// Recipes absent from the map default to level 0.
type EfficiencyLevels map[RecipeID]int

// Level returns the efficiency level for a recipe, 0 when unknown.
// Safe to call on a nil map.
func (e EfficiencyLevels) Level(id RecipeID) int {
	if e == nil {
		return 0
	}
	return e[id]
}

// PriceMap holds caller-supplied unit prices by item id. Missing entries are
// treated as price 0 rather than failing a calculation.
type PriceMap map[ItemID]float64

// Price returns the unit price for an item, 0 when unknown.
func (p PriceMap) Price(id ItemID) float64 {
	if p == nil {
		return 0
	}
	return p[id]
}
