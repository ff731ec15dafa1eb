package handler

import (
	"errors"
	"net/http"

	"github.com/tvarnsen/indyplan/internal/domain"
)

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRecipeID       = "Invalid recipe ID"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgRecipeNotFoundError    = "Recipe not found"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgInvalidEfficiencyError = "Efficiency level must be between 0 and 10"
	ErrMsgInvalidRunsError       = "Run count must be at least 1"
	ErrMsgCatalogUnavailableErr  = "Catalog is temporarily unavailable. Please try again."
	ErrMsgPricesUnavailableError = "Market prices are temporarily unavailable. Please try again."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses so callers never see internal error chains.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInvalidEfficiency):
		return http.StatusBadRequest, ErrMsgInvalidEfficiencyError
	case errors.Is(err, domain.ErrInvalidRuns):
		return http.StatusBadRequest, ErrMsgInvalidRunsError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, ErrMsgCatalogUnavailableErr
	case errors.Is(err, domain.ErrPricesUnavailable):
		return http.StatusServiceUnavailable, ErrMsgPricesUnavailableError
	}

	// Short messages from custom errors stay user-visible; anything longer
	// is likely an internal chain and gets the generic message.
	if msg := err.Error(); msg != "" && len(msg) < 200 {
		return http.StatusInternalServerError, msg
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
