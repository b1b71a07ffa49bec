package naming

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resolver maps what a player types to ingredient ids and back to display names
type Resolver interface {
	// Resolve converts typed input ("Water Drop", "water_drop") to an ingredient id
	Resolve(input string) (ingredientID string, ok bool)

	// Suggest returns the closest known ids for input that did not resolve, best first
	Suggest(input string) []string

	// DisplayName renders an id for humans: "water_drop" -> "Water Drop"
	DisplayName(ingredientID string) string

	// RegisterIngredient adds an id and an optional public alias
	RegisterIngredient(ingredientID, publicName string)

	// Known returns every registered id, sorted
	Known() []string
}

type resolver struct {
	mu sync.RWMutex

	// normalised public name or id -> id
	publicToInternal map[string]string

	// known ids, sorted
	ids []string
}

// NewResolver creates a resolver over the given ingredient ids
func NewResolver(ingredientIDs []string) Resolver {
	r := &resolver{
		publicToInternal: make(map[string]string, len(ingredientIDs)),
	}
	for _, id := range ingredientIDs {
		r.RegisterIngredient(id, "")
	}
	return r
}

// Known returns every registered id, sorted
func (r *resolver) Known() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.ids...)
}

// RegisterIngredient adds a public->internal mapping
func (r *resolver) RegisterIngredient(ingredientID, publicName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, known := r.publicToInternal[normalize(ingredientID)]; !known {
		r.ids = append(r.ids, ingredientID)
		sort.Strings(r.ids)
	}
	r.publicToInternal[normalize(ingredientID)] = ingredientID
	if publicName != "" {
		r.publicToInternal[normalize(publicName)] = ingredientID
	}
}

// Resolve implements Resolver
func (r *resolver) Resolve(input string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.publicToInternal[normalize(input)]
	return id, ok
}

// Suggest implements Resolver
func (r *resolver) Suggest(input string) []string {
	key := normalize(input)
	if len(key) < MinFuzzyLength {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// closest alias per id
	best := make(map[string]int)
	for alias, id := range r.publicToInternal {
		dist := levenshtein.ComputeDistance(key, alias)
		if dist == 0 || dist > distanceLimit(len(alias)) {
			continue
		}
		if prev, ok := best[id]; !ok || dist < prev {
			best[id] = dist
		}
	}

	type candidate struct {
		id   string
		dist int
	}
	cands := make([]candidate, 0, len(best))
	for id, dist := range best {
		cands = append(cands, candidate{id: id, dist: dist})
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].id < cands[j].id
		}
		return cands[i].dist < cands[j].dist
	})

	if len(cands) > MaxSuggestions {
		cands = cands[:MaxSuggestions]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.id
	}
	return out
}

// DisplayName implements Resolver
func (r *resolver) DisplayName(ingredientID string) string {
	return Title(ingredientID)
}

// Title renders an underscore-separated id in title case
func Title(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, WordSeparator, " "))
}

// normalize lower-cases input and folds spaces and dashes into underscores
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), WordSeparator)
	return strings.ReplaceAll(s, "-", WordSeparator)
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
