package handler

import (
	"net/http"

	"github.com/tvarnsen/indyplan/internal/catalog"
	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/logger"
)

// CatalystsResponse lists every decryptor known to the catalog.
type CatalystsResponse struct {
	Catalysts []domain.Decryptor `json:"catalysts"`
}

// HandleListCatalysts returns the catalog's decryptor table.
// GET /api/v1/catalysts
func HandleListCatalysts(cat catalog.Lookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		decryptors, err := cat.GetAllDecryptors(r.Context())
		if err != nil {
			log.Error("Failed to list catalysts", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, CatalystsResponse{Catalysts: decryptors})
	}
}
