package domain

// Category groups recipes for browsing
type Category string

// Recipe categories
const (
	CategoryEvolution Category = "evolution"
	CategoryFusion    Category = "fusion"
	CategoryCraft     Category = "craft"
	CategorySpecial   Category = "special"
)

// Categories lists every category in display order
var Categories = []Category{CategoryEvolution, CategoryFusion, CategoryCraft, CategorySpecial}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Rarity describes how rare a crafted result is
type Rarity string

// Result rarities, lowest first
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// IngredientRequirement is one line of a recipe: an ingredient and how many units it needs
type IngredientRequirement struct {
	IngredientID string `json:"ingredient_id" yaml:"ingredient_id" validate:"required"`
	Quantity     int    `json:"quantity" yaml:"quantity" validate:"min=1"`
}

// RecipeResult is the item produced by a successful craft
type RecipeResult struct {
	ItemID   string `json:"item_id" yaml:"item_id" validate:"required"`
	Quantity int    `json:"quantity" yaml:"quantity" validate:"min=1"`
	Rarity   Rarity `json:"rarity" yaml:"rarity" validate:"oneof=common uncommon rare epic legendary"`
}

// Recipe maps a required ingredient multiset to a result item.
// Discovered and TimesCompleted are progress fields owned by the recipe store;
// values read from a Recipe are a snapshot.
type Recipe struct {
	ID          string                  `json:"id" yaml:"id" validate:"required"`
	Name        string                  `json:"name" yaml:"name" validate:"required"`
	Description string                  `json:"description" yaml:"description"`
	Ingredients []IngredientRequirement `json:"ingredients" yaml:"ingredients" validate:"required,min=1,dive"`
	Result      RecipeResult            `json:"result" yaml:"result"`
	Category    Category                `json:"category" yaml:"category" validate:"oneof=evolution fusion craft special"`

	Discovered     bool `json:"discovered" yaml:"-"`
	TimesCompleted int  `json:"times_completed" yaml:"-"`
}

// TokenCount returns the number of individual ingredient tokens the recipe consumes
func (r Recipe) TokenCount() int {
	n := 0
	for _, ing := range r.Ingredients {
		n += ing.Quantity
	}
	return n
}

// Tokens expands the ingredient list into one entry per unit, in recipe order
func (r Recipe) Tokens() []string {
	tokens := make([]string, 0, r.TokenCount())
	for _, ing := range r.Ingredients {
		for i := 0; i < ing.Quantity; i++ {
			tokens = append(tokens, ing.IngredientID)
		}
	}
	return tokens
}

// RecipeStats summarises discovery progress over a set of recipes
type RecipeStats struct {
	DiscoveredCount      int `json:"discovered_count"`
	TotalCount           int `json:"total_count"`
	CompletionPercentage int `json:"completion_percentage"`
	TotalCrafts          int `json:"total_crafts"`
}

// CategoryStats is RecipeStats restricted to one category
type CategoryStats struct {
	Category Category `json:"category"`
	RecipeStats
}
