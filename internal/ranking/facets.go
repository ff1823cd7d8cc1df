package ranking

import (
	"sort"
	"strings"
	"sync"

	"lumina-workers/internal/catalog"
	"lumina-workers/internal/models"
)

// Facets are the option lists for the explore filters.
type Facets struct {
	Locations []string `json:"locations"`
	Niches    []string `json:"niches"`
}

// ComputeFacets collects the unique trailing location segments and the
// unique niche tags, both sorted.
func ComputeFacets(all []models.Influencer) Facets {
	locs := map[string]struct{}{}
	niches := map[string]struct{}{}

	for _, inf := range all {
		parts := strings.Split(inf.Location, ",")
		locs[strings.TrimSpace(parts[len(parts)-1])] = struct{}{}
		for _, n := range inf.Niche {
			niches[n] = struct{}{}
		}
	}

	return Facets{Locations: sortedKeys(locs), Niches: sortedKeys(niches)}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FacetIndex memoizes facets per catalog.
type FacetIndex struct {
	mu    sync.Mutex
	cache map[*catalog.Catalog]Facets
}

func NewFacetIndex() *FacetIndex {
	return &FacetIndex{cache: map[*catalog.Catalog]Facets{}}
}

// For returns the facets of c, computing them on first request.
func (x *FacetIndex) For(c *catalog.Catalog) Facets {
	x.mu.Lock()
	defer x.mu.Unlock()

	if f, ok := x.cache[c]; ok {
		return f
	}
	f := ComputeFacets(c.ListAll())
	x.cache[c] = f
	return f
}
