package catalog

import (
	"context"
	"fmt"

	"lumina-workers/internal/common/config"
)

// Open returns the catalog selected by cfg. A postgres source is read once
// through db; the seed source ignores db.
func Open(ctx context.Context, cfg config.CatalogConfig, db RowQuerier) (*Catalog, error) {
	switch cfg.Source {
	case "", config.CatalogSourceSeed:
		return Seed(), nil
	case config.CatalogSourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("catalog source %q needs a database connection", cfg.Source)
		}
		return LoadFromPostgres(ctx, db, cfg.Table)
	}
	return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
}
