package catalog

// ==================== Configuration Files ====================

// Supported catalog file extensions
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// SchemaURL is the resource location the embedded catalog schema is registered under
const SchemaURL = "https://schemas.craftlab.dev/recipes.schema.json"

// CatalogVersion is the catalog file version written by this package
const CatalogVersion = "1.0"

// ==================== Error Messages ====================

// Loader error messages
const (
	ErrMsgReadCatalogFailed    = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed   = "%w: failed to parse catalog: %w"
	ErrMsgUnsupportedFormatFmt = "unsupported catalog format %q"
	ErrMsgSchemaLoadFailed     = "failed to load catalog schema: %w"
	ErrMsgSchemaFailed         = "schema validation failed:\n%s"
)

// Validation error messages
const (
	ErrMsgDuplicateRecipeFmt     = "%w: '%s' at index %d"
	ErrMsgDuplicateIngredientFmt = "%w: recipe '%s' lists ingredient '%s' more than once"
	ErrMsgAmbiguousRecipeFmt     = "%w: recipes '%s' and '%s' require the same ingredients"
	ErrMsgRecipeFieldsFmt        = "%w: recipe at index %d: %v"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded       = "Recipe catalog loaded"
	LogMsgAmbiguousRecipe     = "Recipes share an ingredient multiset; the first one wins"
	LogMsgDuplicateIngredient = "Recipe lists an ingredient more than once"
)
