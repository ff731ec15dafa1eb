package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tvarnsen/indyplan/internal/catalog"
	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/invention"
	"github.com/tvarnsen/indyplan/internal/logger"
	"github.com/tvarnsen/indyplan/internal/pricing"
)

// InventionRequest describes an invention job to optimize: the invention
// recipe, its base success probability, and the character's skills.
type InventionRequest struct {
	RecipeID        int32         `json:"recipe_id" validate:"required,min=1"`
	BaseProbability float64       `json:"base_probability" validate:"required,gt=0,lte=1"`
	Skills          domain.Skills `json:"skills"`
}

// HandleBestCatalyst evaluates every decryptor against an invention job and
// reports the cheapest cost per successful run.
// POST /api/v1/invention/best
func HandleBestCatalyst(svc invention.Service, cat catalog.Lookup, prices pricing.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req InventionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode invention request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid invention request", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		job, err := svc.BuildJob(r.Context(), domain.RecipeID(req.RecipeID), req.BaseProbability)
		if err != nil {
			log.Error("Failed to build invention job", "error", err, "recipeID", req.RecipeID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		priceMap := jobPrices(r, cat, prices, *job)

		result, err := svc.FindBestDecryptor(r.Context(), *job, priceMap, req.Skills)
		if err != nil {
			log.Error("Failed to optimize invention job", "error", err, "recipeID", req.RecipeID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Invention job optimized",
			"recipeID", req.RecipeID,
			"options", len(result.AllOptions),
			"costPerSuccess", result.Best.CostPerSuccess)

		respondJSON(w, http.StatusOK, result)
	}
}

// jobPrices gathers prices for a job's materials and every known decryptor.
// Unavailable prices degrade to an empty map; the optimizer treats missing
// entries as zero cost.
func jobPrices(r *http.Request, cat catalog.Lookup, prices pricing.Provider, job domain.InventionJob) domain.PriceMap {
	log := logger.FromContext(r.Context())

	ids := make([]domain.ItemID, 0, len(job.Materials)+8)
	for _, m := range job.Materials {
		ids = append(ids, m.MaterialID)
	}

	decryptors, err := cat.GetAllDecryptors(r.Context())
	if err != nil {
		log.Warn("Failed to list decryptors for pricing", "error", err)
	}
	for _, d := range decryptors {
		ids = append(ids, d.ID)
	}

	priceMap, err := prices.PricesFor(r.Context(), ids)
	if err != nil {
		log.Warn("Failed to fetch prices for invention job", "error", err)
		return domain.PriceMap{}
	}
	return priceMap
}
