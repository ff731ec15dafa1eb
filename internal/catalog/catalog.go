package catalog

import (
	"context"

	"github.com/tvarnsen/indyplan/internal/domain"
)

// Lookup defines read-only queries against the static reference dataset.
// Implementations must be safe for concurrent reads; calculations may run
// concurrently against the same Lookup.
type Lookup interface {
	// GetRecipeMaterials returns the material lines of a recipe. An unknown
	// recipe yields an empty slice, not an error.
	GetRecipeMaterials(ctx context.Context, recipeID domain.RecipeID) ([]domain.RecipeMaterial, error)

	// GetRecipeProduct returns the output of a recipe, or nil when the
	// recipe does not exist.
	GetRecipeProduct(ctx context.Context, recipeID domain.RecipeID) (*domain.RecipeProduct, error)

	// GetRecipeForProduct is the reverse lookup "which recipe produces this
	// item". Returns 0 when the item has no known producing recipe.
	GetRecipeForProduct(ctx context.Context, itemID domain.ItemID) (domain.RecipeID, error)

	// GetItemGroup returns the item's classification group, 0 when unknown.
	GetItemGroup(ctx context.Context, itemID domain.ItemID) (domain.GroupID, error)

	// GetItemName returns the item's display name. Display only, never on a
	// critical path; unknown items yield an empty string.
	GetItemName(ctx context.Context, itemID domain.ItemID) (string, error)

	// GetAllDecryptors returns the catalog of decryptor variants.
	GetAllDecryptors(ctx context.Context) ([]domain.Decryptor, error)

	// GetRigBonus returns the material bonus percent granted by the mounted
	// rigs for an output group at the given security status. 0 when no rig
	// matches.
	GetRigBonus(ctx context.Context, rigs []domain.ItemID, targetGroup domain.GroupID, securityStatus float64) (float64, error)
}
