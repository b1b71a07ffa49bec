package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/craftlab/internal/domain"
)

var validate = validator.New()

// Catalog is the ordered, read-only recipe table. Recipe order is significant:
// when two recipes require the same ingredients the earlier one matches.
type Catalog struct {
	recipes []domain.Recipe
	byID    map[string]int
	issues  []Issue
}

// Options controls how strictly New checks authoring invariants
type Options struct {
	// Strict rejects duplicate ingredient lines inside a recipe and recipes
	// that share an ingredient multiset. When false those are only reported
	// through Issues and the first recipe in order wins.
	Strict bool
}

// Issue is an authoring problem found in a lenient catalog
type Issue struct {
	RecipeID string
	Other    string
	Err      error
}

// New builds a catalog from recipes in the given order.
// Recipes must have unique ids and pass field validation regardless of mode.
func New(recipes []domain.Recipe, opts Options) (*Catalog, []Issue, error) {
	c := &Catalog{
		recipes: make([]domain.Recipe, len(recipes)),
		byID:    make(map[string]int, len(recipes)),
	}

	for i, r := range recipes {
		if err := validate.Struct(r); err != nil {
			return nil, nil, fmt.Errorf(ErrMsgRecipeFieldsFmt, domain.ErrInvalidRecipe, i, err)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, nil, fmt.Errorf(ErrMsgDuplicateRecipeFmt, domain.ErrDuplicateRecipeKey, r.ID, i)
		}
		c.byID[r.ID] = i

		r.Ingredients = append([]domain.IngredientRequirement(nil), r.Ingredients...)
		r.Discovered = false
		r.TimesCompleted = 0
		c.recipes[i] = r
	}

	issues := c.audit()
	if opts.Strict && len(issues) > 0 {
		errs := make([]error, 0, len(issues))
		for _, issue := range issues {
			errs = append(errs, issue.Err)
		}
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, errors.Join(errs...))
	}

	c.issues = issues
	return c, issues, nil
}

// audit finds the authoring invariants the matcher does not enforce
func (c *Catalog) audit() []Issue {
	var issues []Issue
	seen := make(map[string]string, len(c.recipes))

	for _, r := range c.recipes {
		lines := make(map[string]bool, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			if lines[ing.IngredientID] {
				issues = append(issues, Issue{
					RecipeID: r.ID,
					Err:      fmt.Errorf(ErrMsgDuplicateIngredientFmt, domain.ErrInvalidRecipe, r.ID, ing.IngredientID),
				})
			}
			lines[ing.IngredientID] = true
		}

		sig := Signature(r.Tokens())
		if first, ok := seen[sig]; ok {
			issues = append(issues, Issue{
				RecipeID: r.ID,
				Other:    first,
				Err:      fmt.Errorf(ErrMsgAmbiguousRecipeFmt, domain.ErrAmbiguousRecipe, first, r.ID),
			})
			continue
		}
		seen[sig] = r.ID
	}

	return issues
}

// Issues returns the authoring problems tolerated when the catalog was built
func (c *Catalog) Issues() []Issue {
	return append([]Issue(nil), c.issues...)
}

// Len returns the number of recipes
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Get looks a recipe up by id
func (c *Catalog) Get(id string) (domain.Recipe, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Recipe{}, false
	}
	return c.recipes[i], true
}

// At returns the recipe at position i in catalog order
func (c *Catalog) At(i int) domain.Recipe {
	return c.recipes[i]
}

// All returns a copy of every recipe in catalog order
func (c *Catalog) All() []domain.Recipe {
	return append([]domain.Recipe(nil), c.recipes...)
}

// ByCategory returns the recipes of one category in catalog order
func (c *Catalog) ByCategory(category domain.Category) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range c.recipes {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Ingredients returns every distinct ingredient id used by the catalog, sorted
func (c *Catalog) Ingredients() []string {
	set := make(map[string]struct{})
	for _, r := range c.recipes {
		for _, ing := range r.Ingredients {
			set[ing.IngredientID] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Signature is the order-independent key of a token multiset.
// Two token lists have the same signature exactly when they are equal as multisets.
// Each token is length-prefixed, so ids may contain any character.
func Signature(tokens []string) string {
	sorted := append([]string(nil), tokens...)
	sort.Strings(sorted)

	var b strings.Builder
	for _, t := range sorted {
		b.WriteString(strconv.Itoa(len(t)))
		b.WriteByte(':')
		b.WriteString(t)
	}
	return b.String()
}
