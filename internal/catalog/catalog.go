// Package catalog holds the read-only influencer records and the follower
// tier classifier.
package catalog

import (
	"fmt"

	"lumina-workers/internal/models"
)

// Catalog is immutable after construction. Callers that need a stable
// identity for memoization can use the pointer itself.
type Catalog struct {
	records []models.Influencer
	byID    map[string]int
}

// New validates ids and copies the records.
func New(records []models.Influencer) (*Catalog, error) {
	c := &Catalog{
		records: make([]models.Influencer, 0, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	for _, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("influencer %q has an empty id", r.Name)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate influencer id %q", r.ID)
		}
		r.Niche = append([]string(nil), r.Niche...)
		c.byID[r.ID] = len(c.records)
		c.records = append(c.records, r)
	}
	return c, nil
}

// ListAll returns every record in catalog order. The slice is a copy.
func (c *Catalog) ListAll() []models.Influencer {
	out := make([]models.Influencer, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Catalog) ByID(id string) (models.Influencer, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Influencer{}, false
	}
	return c.records[i], true
}

func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.records)
}
