package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tvarnsen/indyplan/internal/catalog"
	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/logger"
)

// AdminCacheHandler handles catalog cache administration
type AdminCacheHandler struct {
	cache *catalog.Cached
}

// NewAdminCacheHandler creates a new admin cache handler
func NewAdminCacheHandler(cache *catalog.Cached) *AdminCacheHandler {
	return &AdminCacheHandler{cache: cache}
}

// HandleGetCacheStats returns current catalog cache statistics.
// GET /api/v1/admin/cache/stats
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cache.Stats())
}

// HandlePurgeCache drops every cached catalog entry. Used after swapping the
// catalog database file under a running process.
// POST /api/v1/admin/cache/purge
func (h *AdminCacheHandler) HandlePurgeCache(w http.ResponseWriter, r *http.Request) {
	h.cache.Purge()
	logger.FromContext(r.Context()).Info("Catalog cache purged")
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Catalog cache purged"})
}

// HandleInvalidateRecipe drops the cached entries for one recipe.
// POST /api/v1/admin/cache/recipes/{recipeID}/invalidate
func (h *AdminCacheHandler) HandleInvalidateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 32)
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRecipeID)
		return
	}

	h.cache.InvalidateRecipe(domain.RecipeID(id))
	logger.FromContext(r.Context()).Info("Recipe cache invalidated", "recipeID", id)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Recipe cache invalidated"})
}
