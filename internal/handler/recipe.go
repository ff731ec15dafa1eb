package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tvarnsen/indyplan/internal/catalog"
	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/logger"
)

// RecipeResponse is the flat catalog view of one recipe: its product, the
// unmodified material lines, and display names resolved where known.
type RecipeResponse struct {
	RecipeID    int32                   `json:"recipe_id"`
	Product     domain.RecipeProduct    `json:"product"`
	ProductName string                  `json:"product_name,omitempty"`
	Materials   []domain.RecipeMaterial `json:"materials"`
}

// HandleGetRecipe returns one recipe's base definition without any bonus
// math applied.
// GET /api/v1/recipes/{recipeID}
func HandleGetRecipe(cat catalog.Lookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 32)
		if err != nil || id < 1 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRecipeID)
			return
		}
		recipeID := domain.RecipeID(id)

		product, err := cat.GetRecipeProduct(r.Context(), recipeID)
		if err != nil {
			log.Error("Failed to get recipe product", "error", err, "recipeID", recipeID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if product == nil {
			respondError(w, http.StatusNotFound, ErrMsgRecipeNotFoundError)
			return
		}

		materials, err := cat.GetRecipeMaterials(r.Context(), recipeID)
		if err != nil {
			log.Error("Failed to get recipe materials", "error", err, "recipeID", recipeID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		name, err := cat.GetItemName(r.Context(), product.OutputID)
		if err != nil {
			log.Warn("Failed to resolve product name", "error", err, "itemID", product.OutputID)
		}

		respondJSON(w, http.StatusOK, RecipeResponse{
			RecipeID:    int32(recipeID),
			Product:     *product,
			ProductName: name,
			Materials:   materials,
		})
	}
}
