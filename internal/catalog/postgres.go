package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"lumina-workers/internal/common/errors"
	"lumina-workers/internal/models"

	"github.com/lib/pq"
)

// RowQuerier is satisfied by *sql.DB and database.PostgresClient.
type RowQuerier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// LoadFromPostgres reads the catalog from table, ordered by its position
// column. niche is a text[] column.
func LoadFromPostgres(ctx context.Context, db RowQuerier, table string) (*Catalog, error) {
	query := fmt.Sprintf(`
		SELECT id, name, handle, platform, location, followers,
		       engagement_rate, avg_likes, est_value, avatar_url, niche
		FROM %s
		ORDER BY position`, pq.QuoteIdentifier(table))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(fmt.Errorf("query %s: %w", table, err))
	}
	defer rows.Close()

	var records []models.Influencer
	for rows.Next() {
		var inf models.Influencer
		var niche []string
		if err := rows.Scan(
			&inf.ID, &inf.Name, &inf.Handle, &inf.Platform, &inf.Location, &inf.Followers,
			&inf.EngagementRate, &inf.AvgLikes, &inf.EstValue, &inf.AvatarURL, pq.Array(&niche),
		); err != nil {
			return nil, errors.NewCatalogLoadFailedError(fmt.Errorf("scan: %w", err))
		}
		inf.Niche = niche
		records = append(records, inf)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewCatalogLoadFailedError(fmt.Errorf("rows: %w", err))
	}

	c, err := New(records)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(err)
	}
	return c, nil
}
