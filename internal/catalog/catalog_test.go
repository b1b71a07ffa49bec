package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftlab/internal/domain"
)

func recipe(id string, category domain.Category, ings ...domain.IngredientRequirement) domain.Recipe {
	return domain.Recipe{
		ID:          id,
		Name:        id,
		Ingredients: ings,
		Result:      domain.RecipeResult{ItemID: id + "-result", Quantity: 1, Rarity: domain.RarityCommon},
		Category:    category,
	}
}

func TestNew_PreservesOrderAndLookup(t *testing.T) {
	c, issues, err := New([]domain.Recipe{
		recipe("b", domain.CategoryFusion, req("x", 1)),
		recipe("a", domain.CategoryCraft, req("y", 2)),
	}, Options{})

	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "b", c.At(0).ID)
	assert.Equal(t, "a", c.At(1).ID)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, got.TokenCount())

	_, ok = c.Get("unknown")
	assert.False(t, ok, "unknown ids are a plain miss, not an error")
}

func TestNew_ResetsProgressFields(t *testing.T) {
	r := recipe("a", domain.CategoryCraft, req("x", 1))
	r.Discovered = true
	r.TimesCompleted = 9

	c, _, err := New([]domain.Recipe{r}, Options{})
	require.NoError(t, err)

	got, _ := c.Get("a")
	assert.False(t, got.Discovered)
	assert.Zero(t, got.TimesCompleted)
}

func TestNew_CopiesInput(t *testing.T) {
	recipes := []domain.Recipe{recipe("a", domain.CategoryCraft, req("x", 1))}
	c, _, err := New(recipes, Options{})
	require.NoError(t, err)

	recipes[0].Ingredients[0].Quantity = 5
	recipes[0].Name = "changed"

	got, _ := c.Get("a")
	assert.Equal(t, 1, got.Ingredients[0].Quantity)
	assert.Equal(t, "a", got.Name)
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, _, err := New([]domain.Recipe{
		recipe("a", domain.CategoryCraft, req("x", 1)),
		recipe("a", domain.CategoryCraft, req("y", 1)),
	}, Options{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateRecipeKey))
}

func TestNew_RejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.Recipe)
	}{
		{"missing id", func(r *domain.Recipe) { r.ID = "" }},
		{"no ingredients", func(r *domain.Recipe) { r.Ingredients = nil }},
		{"zero quantity", func(r *domain.Recipe) { r.Ingredients[0].Quantity = 0 }},
		{"empty ingredient id", func(r *domain.Recipe) { r.Ingredients[0].IngredientID = "" }},
		{"unknown category", func(r *domain.Recipe) { r.Category = "potion" }},
		{"unknown rarity", func(r *domain.Recipe) { r.Result.Rarity = "mythic" }},
		{"zero result quantity", func(r *domain.Recipe) { r.Result.Quantity = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := recipe("a", domain.CategoryCraft, req("x", 1))
			tt.mutate(&r)

			_, _, err := New([]domain.Recipe{r}, Options{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidRecipe))
		})
	}
}

func TestNew_AmbiguousMultisets(t *testing.T) {
	recipes := []domain.Recipe{
		recipe("r1", domain.CategoryCraft, req("x", 1), req("y", 1)),
		recipe("r2", domain.CategoryCraft, req("y", 1), req("x", 1)),
	}

	t.Run("lenient keeps both and reports", func(t *testing.T) {
		c, issues, err := New(recipes, Options{})
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
		require.Len(t, issues, 1)
		assert.Equal(t, "r2", issues[0].RecipeID)
		assert.Equal(t, "r1", issues[0].Other)
		assert.True(t, errors.Is(issues[0].Err, domain.ErrAmbiguousRecipe))
		assert.Equal(t, issues, c.Issues())
	})

	t.Run("strict fails", func(t *testing.T) {
		_, _, err := New(recipes, Options{Strict: true})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidCatalog))
		assert.True(t, errors.Is(err, domain.ErrAmbiguousRecipe))
	})
}

func TestNew_SeparatorLikeIDsAreNotAmbiguous(t *testing.T) {
	c, issues, err := New([]domain.Recipe{
		recipe("r1", domain.CategoryCraft, req("a\x1fb", 1), req("c", 1)),
		recipe("r2", domain.CategoryCraft, req("a", 1), req("b\x1fc", 1)),
	}, Options{Strict: true})

	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, 2, c.Len())
}

func TestNew_DuplicateIngredientLines(t *testing.T) {
	recipes := []domain.Recipe{
		recipe("split", domain.CategoryCraft, req("a", 1), req("a", 1)),
		recipe("merged", domain.CategoryCraft, req("a", 2)),
	}

	c, issues, err := New(recipes, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	// one duplicate-line issue for "split", one ambiguity for "merged"
	require.Len(t, issues, 2)
	assert.True(t, errors.Is(issues[0].Err, domain.ErrInvalidRecipe))
	assert.True(t, errors.Is(issues[1].Err, domain.ErrAmbiguousRecipe))

	_, _, err = New(recipes, Options{Strict: true})
	assert.Error(t, err)
}

func TestCatalog_ByCategoryAndIngredients(t *testing.T) {
	c := Default()

	var total int
	for _, category := range domain.Categories {
		recipes := c.ByCategory(category)
		assert.NotEmpty(t, recipes, category)
		for _, r := range recipes {
			assert.Equal(t, category, r.Category)
		}
		total += len(recipes)
	}
	assert.Equal(t, c.Len(), total)

	ingredients := c.Ingredients()
	assert.IsIncreasing(t, ingredients)
	assert.Contains(t, ingredients, "lightning")
	assert.Empty(t, c.ByCategory("potion"))
}

func TestSignature(t *testing.T) {
	assert.Equal(t, Signature([]string{"a", "b", "a"}), Signature([]string{"b", "a", "a"}))
	assert.NotEqual(t, Signature([]string{"a", "b"}), Signature([]string{"a", "b", "b"}))
	assert.NotEqual(t, Signature([]string{"ab"}), Signature([]string{"a", "b"}))
	assert.NotEqual(t, Signature([]string{"a\x1fb", "c"}), Signature([]string{"a", "b\x1fc"}))
	assert.NotEqual(t, Signature([]string{"1:a"}), Signature([]string{"1:", "a"}))
	assert.Empty(t, Signature(nil))

	tokens := []string{"c", "a", "b"}
	Signature(tokens)
	assert.Equal(t, []string{"c", "a", "b"}, tokens, "input must not be reordered")
}

func TestDefault_IsStrictlyValid(t *testing.T) {
	c := Default()
	assert.Equal(t, len(DefaultRecipes()), c.Len())

	_, issues, err := New(DefaultRecipes(), Options{Strict: true})
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(Options{})

	for _, name := range []string{"valid.json", "valid.yaml"} {
		t.Run(name, func(t *testing.T) {
			c, err := loader.Load(ctx, filepath.Join("testdata", name))
			require.NoError(t, err)
			require.Equal(t, 2, c.Len())

			r := c.At(0)
			assert.Equal(t, "r", r.ID)
			assert.Equal(t, []string{"a", "a", "b"}, r.Tokens())
			assert.Equal(t, domain.RarityRare, r.Result.Rarity)
			assert.Equal(t, domain.CategoryFusion, r.Category)

			storm, ok := c.Get("storm")
			require.True(t, ok)
			assert.Equal(t, "three bolts", storm.Description)
		})
	}
}

func TestLoader_SchemaFailure(t *testing.T) {
	_, err := NewLoader(Options{}).Load(context.Background(), filepath.Join("testdata", "bad_schema.json"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCatalog))
	assert.Contains(t, err.Error(), "schema validation failed")
	assert.Contains(t, err.Error(), "/recipes/0/ingredients/0/quantity")
}

func TestLoader_DuplicateIDs(t *testing.T) {
	_, err := NewLoader(Options{}).Load(context.Background(), filepath.Join("testdata", "duplicate_id.yaml"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateRecipeKey))
}

func TestLoader_StrictMode(t *testing.T) {
	path := filepath.Join("testdata", "ambiguous.json")

	c, err := NewLoader(Options{}).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = NewLoader(Options{Strict: true}).Load(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAmbiguousRecipe))
}

func TestLoader_Errors(t *testing.T) {
	loader := NewLoader(Options{})
	ctx := context.Background()

	_, err := loader.Load(ctx, filepath.Join("testdata", "missing.json"))
	assert.Error(t, err)

	_, err = loader.LoadBytes(ctx, []byte("version = 1"), ".toml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCatalog))

	_, err = loader.LoadBytes(ctx, []byte("{not json"), ".json")
	assert.Error(t, err)

	_, err = loader.LoadBytes(ctx, []byte(`{"recipes": []}`), ".json")
	require.Error(t, err, "version is required by the schema")
}

func TestMarshal_RoundTrip(t *testing.T) {
	ctx := context.Background()
	original := Default()

	for _, ext := range []string{ExtJSON, ExtYAML} {
		t.Run(ext, func(t *testing.T) {
			data, err := Marshal(original, ext, "built-in")
			require.NoError(t, err)

			loaded, err := NewLoader(Options{Strict: true}).LoadBytes(ctx, data, ext)
			require.NoError(t, err)
			assert.Equal(t, original.All(), loaded.All())
		})
	}

	_, err := Marshal(original, ".ini", "")
	assert.Error(t, err)
}
