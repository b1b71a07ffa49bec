package catalog

import "github.com/osse101/craftlab/internal/domain"

func req(id string, qty int) domain.IngredientRequirement {
	return domain.IngredientRequirement{IngredientID: id, Quantity: qty}
}

// DefaultRecipes is the recipe set the typing lab ships with, in catalog order
func DefaultRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:          "spark_to_flame",
			Name:        "Kindle",
			Description: "Two sparks from fast keystrokes catch fire.",
			Ingredients: []domain.IngredientRequirement{req("spark", 2)},
			Result:      domain.RecipeResult{ItemID: "flame", Quantity: 1, Rarity: domain.RarityCommon},
			Category:    domain.CategoryEvolution,
		},
		{
			ID:          "storm_keys",
			Name:        "Storm Keys",
			Description: "Three lightning strikes charge a keyboard.",
			Ingredients: []domain.IngredientRequirement{req("lightning", 3)},
			Result:      domain.RecipeResult{ItemID: "storm_keyboard", Quantity: 1, Rarity: domain.RarityRare},
			Category:    domain.CategoryEvolution,
		},
		{
			ID:          "seedling_to_tree",
			Name:        "Steady Growth",
			Description: "Patience and practice grow a seedling into a tree.",
			Ingredients: []domain.IngredientRequirement{req("seedling", 1), req("water_drop", 2), req("sunbeam", 1)},
			Result:      domain.RecipeResult{ItemID: "focus_tree", Quantity: 1, Rarity: domain.RarityUncommon},
			Category:    domain.CategoryEvolution,
		},
		{
			ID:          "word_crystal",
			Name:        "Word Crystal",
			Description: "Letters and a vowel fuse into a word.",
			Ingredients: []domain.IngredientRequirement{req("letter", 2), req("vowel", 1)},
			Result:      domain.RecipeResult{ItemID: "word_crystal", Quantity: 1, Rarity: domain.RarityUncommon},
			Category:    domain.CategoryFusion,
		},
		{
			ID:          "plasma_core",
			Name:        "Plasma Core",
			Description: "Fire meets lightning.",
			Ingredients: []domain.IngredientRequirement{req("flame", 1), req("lightning", 1)},
			Result:      domain.RecipeResult{ItemID: "plasma_core", Quantity: 1, Rarity: domain.RarityEpic},
			Category:    domain.CategoryFusion,
		},
		{
			ID:          "calm_breeze",
			Name:        "Calm Breeze",
			Description: "A deep breath and a leaf settle the mind.",
			Ingredients: []domain.IngredientRequirement{req("breath", 2), req("leaf", 1)},
			Result:      domain.RecipeResult{ItemID: "calm_breeze", Quantity: 2, Rarity: domain.RarityCommon},
			Category:    domain.CategoryFusion,
		},
		{
			ID:          "keycap",
			Name:        "Keycap",
			Description: "Press plastic over a spring.",
			Ingredients: []domain.IngredientRequirement{req("plastic", 2), req("spring", 1)},
			Result:      domain.RecipeResult{ItemID: "keycap", Quantity: 1, Rarity: domain.RarityCommon},
			Category:    domain.CategoryCraft,
		},
		{
			ID:          "focus_lens",
			Name:        "Focus Lens",
			Description: "A crystal polished with calm leaves sharpens attention.",
			Ingredients: []domain.IngredientRequirement{req("crystal", 1), req("leaf", 2)},
			Result:      domain.RecipeResult{ItemID: "focus_lens", Quantity: 1, Rarity: domain.RarityUncommon},
			Category:    domain.CategoryCraft,
		},
		{
			ID:          "rhythm_metronome",
			Name:        "Rhythm Metronome",
			Description: "Keeps a steady typing beat.",
			Ingredients: []domain.IngredientRequirement{req("clock", 1), req("spring", 2), req("keycap", 1)},
			Result:      domain.RecipeResult{ItemID: "metronome", Quantity: 1, Rarity: domain.RarityRare},
			Category:    domain.CategoryCraft,
		},
		{
			ID:          "rainbow_keyboard",
			Name:        "Rainbow Keyboard",
			Description: "Every element in harmony.",
			Ingredients: []domain.IngredientRequirement{req("keycap", 2), req("lightning", 1), req("flame", 1), req("star", 1), req("water_drop", 1)},
			Result:      domain.RecipeResult{ItemID: "rainbow_keyboard", Quantity: 1, Rarity: domain.RarityLegendary},
			Category:    domain.CategorySpecial,
		},
		{
			ID:          "golden_streak",
			Name:        "Golden Streak",
			Description: "Three stars earned on time.",
			Ingredients: []domain.IngredientRequirement{req("star", 3), req("clock", 1)},
			Result:      domain.RecipeResult{ItemID: "golden_streak", Quantity: 1, Rarity: domain.RarityLegendary},
			Category:    domain.CategorySpecial,
		},
		{
			ID:          "quiet_mind",
			Name:        "Quiet Mind",
			Description: "Regulation tools combine into a moment of calm.",
			Ingredients: []domain.IngredientRequirement{req("calm_breeze", 1), req("focus_lens", 1), req("breath", 1)},
			Result:      domain.RecipeResult{ItemID: "quiet_mind", Quantity: 1, Rarity: domain.RarityEpic},
			Category:    domain.CategorySpecial,
		},
	}
}

// Default builds the built-in catalog. It is authored to satisfy strict mode.
func Default() *Catalog {
	c, _, err := New(DefaultRecipes(), Options{Strict: true})
	if err != nil {
		panic("catalog: built-in recipes are invalid: " + err.Error())
	}
	return c
}
