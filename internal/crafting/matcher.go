package crafting

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/craftlab/internal/catalog"
	"github.com/osse101/craftlab/internal/domain"
)

// Strategy selects how multisets are compared
type Strategy string

const (
	// StrategySorted sorts both token lists and compares them element-wise
	StrategySorted Strategy = "sorted"
	// StrategyCounted compares ingredient -> count maps
	StrategyCounted Strategy = "counted"
)

// Matcher finds the recipe whose ingredient multiset equals the staged tokens
type Matcher interface {
	// Match returns the first recipe in catalog order whose expanded
	// ingredients equal tokens as a multiset
	Match(tokens []string) (domain.Recipe, bool)
}

// MatchSorted is the sort-and-compare matcher over an ordered recipe list.
// It returns the index of the first matching recipe, or -1.
func MatchSorted(tokens []string, recipes []domain.Recipe) int {
	if len(tokens) == 0 {
		return -1
	}

	staged := append([]string(nil), tokens...)
	sort.Strings(staged)

	for i, r := range recipes {
		if r.TokenCount() != len(staged) {
			continue
		}
		required := r.Tokens()
		sort.Strings(required)
		if equalTokens(staged, required) {
			return i
		}
	}
	return -1
}

// MatchCounted is the frequency-map matcher over an ordered recipe list.
// It returns the index of the first matching recipe, or -1.
func MatchCounted(tokens []string, recipes []domain.Recipe) int {
	if len(tokens) == 0 {
		return -1
	}

	staged := countTokens(tokens)
	for i, r := range recipes {
		if r.TokenCount() != len(tokens) {
			continue
		}
		if equalCounts(staged, requirementCounts(r)) {
			return i
		}
	}
	return -1
}

func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func countTokens(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// requirementCounts sums quantities, so repeated ingredient lines add up
func requirementCounts(r domain.Recipe) map[string]int {
	counts := make(map[string]int, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		counts[ing.IngredientID] += ing.Quantity
	}
	return counts
}

func equalCounts(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for id, n := range a {
		if b[id] != n {
			return false
		}
	}
	return true
}

// catalogMatcher binds a strategy to a catalog and memoises results by buffer signature
type catalogMatcher struct {
	recipes []domain.Recipe
	match   func(tokens []string, recipes []domain.Recipe) int
	cache   *lru.Cache[string, int]
}

// NewMatcher builds a matcher over c. cacheSize > 0 enables an LRU of that
// many buffer signatures; the catalog is immutable so cached results never go stale.
func NewMatcher(c *catalog.Catalog, strategy Strategy, cacheSize int) (Matcher, error) {
	m := &catalogMatcher{recipes: c.All()}

	switch strategy {
	case StrategySorted, "":
		m.match = MatchSorted
	case StrategyCounted:
		m.match = MatchCounted
	default:
		return nil, fmt.Errorf("%w: unknown match strategy %q", domain.ErrInvalidInput, strategy)
	}

	if cacheSize > 0 {
		cache, err := lru.New[string, int](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create match cache: %w", err)
		}
		m.cache = cache
	}

	return m, nil
}

// Match implements Matcher
func (m *catalogMatcher) Match(tokens []string) (domain.Recipe, bool) {
	idx := m.lookup(tokens)
	if idx < 0 {
		return domain.Recipe{}, false
	}
	return m.recipes[idx], true
}

func (m *catalogMatcher) lookup(tokens []string) int {
	if m.cache == nil {
		return m.match(tokens, m.recipes)
	}

	key := catalog.Signature(tokens)
	if idx, ok := m.cache.Get(key); ok {
		return idx
	}
	idx := m.match(tokens, m.recipes)
	m.cache.Add(key, idx)
	return idx
}
