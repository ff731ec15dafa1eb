package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgRecipeNotFound     = "recipe not found"
	ErrMsgItemNotFound       = "item not found"
	ErrMsgInvalidEfficiency  = "efficiency level out of range"
	ErrMsgInvalidRuns        = "run count must be positive"
	ErrMsgCatalogUnavailable = "catalog unavailable"
	ErrMsgPricesUnavailable  = "price source unavailable"
	ErrMsgInvalidInput       = "invalid input"
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: ...", domain.ErrXxx) for additional context.
var (
	ErrRecipeNotFound     = errors.New(ErrMsgRecipeNotFound)
	ErrItemNotFound       = errors.New(ErrMsgItemNotFound)
	ErrInvalidEfficiency  = errors.New(ErrMsgInvalidEfficiency)
	ErrInvalidRuns        = errors.New(ErrMsgInvalidRuns)
	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)
	ErrPricesUnavailable  = errors.New(ErrMsgPricesUnavailable)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
)
