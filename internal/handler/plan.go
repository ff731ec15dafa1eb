package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/industry"
	"github.com/tvarnsen/indyplan/internal/logger"
)

// PlanRequest describes a production plan to expand: the root recipe, the
// number of runs, and the efficiency/facility context applied to it.
type PlanRequest struct {
	RecipeID        int32            `json:"recipe_id" validate:"required,min=1"`
	Runs            int64            `json:"runs" validate:"required,min=1,max=1000000"`
	EfficiencyLevel int              `json:"efficiency_level" validate:"efficiency"`
	Efficiencies    map[int32]int    `json:"efficiencies,omitempty"`
	Facility        *domain.Facility `json:"facility,omitempty"`
	WithPricing     bool             `json:"with_pricing,omitempty"`
}

// HandlePlan expands a production plan into its full bill of materials.
// POST /api/v1/plan
func HandlePlan(svc industry.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode plan request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid plan request", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		levels := make(domain.EfficiencyLevels, len(req.Efficiencies))
		for recipeID, level := range req.Efficiencies {
			levels[domain.RecipeID(recipeID)] = level
		}

		result, err := svc.Expand(r.Context(), industry.ExpandRequest{
			RecipeID:        domain.RecipeID(req.RecipeID),
			Runs:            req.Runs,
			EfficiencyLevel: req.EfficiencyLevel,
			Efficiencies:    levels,
			Facility:        req.Facility,
			WithPricing:     req.WithPricing,
		})
		if err != nil {
			log.Error("Failed to expand plan", "error", err, "recipeID", req.RecipeID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Plan expanded",
			"recipeID", req.RecipeID,
			"runs", req.Runs,
			"materials", len(result.Materials))

		respondJSON(w, http.StatusOK, result)
	}
}
