package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Recipe/Catalog errors
	ErrMsgRecipeNotFound     = "recipe not found"
	ErrMsgInvalidRecipe      = "invalid recipe"
	ErrMsgInvalidCatalog     = "invalid catalog"
	ErrMsgDuplicateRecipeKey = "duplicate recipe key"
	ErrMsgAmbiguousRecipe    = "ambiguous recipe"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Recipe/Catalog errors
	ErrRecipeNotFound     = errors.New(ErrMsgRecipeNotFound)
	ErrInvalidRecipe      = errors.New(ErrMsgInvalidRecipe)
	ErrInvalidCatalog     = errors.New(ErrMsgInvalidCatalog)
	ErrDuplicateRecipeKey = errors.New(ErrMsgDuplicateRecipeKey)
	ErrAmbiguousRecipe    = errors.New(ErrMsgAmbiguousRecipe)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
