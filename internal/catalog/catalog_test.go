package catalog

import (
	"context"
	"testing"

	"lumina-workers/internal/common/config"
	"lumina-workers/internal/common/errors"
	"lumina-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Construction and lookup
// ==========================

func TestSeed_IDsUniqueAndOrdered(t *testing.T) {
	c := Seed()

	all := c.ListAll()
	require.Len(t, all, len(seedRecords))
	assert.Len(t, all, 13)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "2", all[1].ID)
	assert.Equal(t, "3", all[2].ID)

	seen := map[string]bool{}
	for _, inf := range all {
		assert.False(t, seen[inf.ID], "duplicate id %s", inf.ID)
		seen[inf.ID] = true
	}
}

func TestNew_RejectsDuplicateAndEmptyIDs(t *testing.T) {
	_, err := New([]models.Influencer{{ID: "1"}, {ID: "1"}})
	assert.Error(t, err)

	_, err = New([]models.Influencer{{Name: "Nobody"}})
	assert.Error(t, err)
}

func TestListAll_ReturnsCopy(t *testing.T) {
	c := Seed()

	all := c.ListAll()
	all[0].Name = "Mutated"

	first, ok := c.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "Elara Vance", first.Name)
}

func TestByID(t *testing.T) {
	c := Seed()

	inf, ok := c.ByID("13")
	require.True(t, ok)
	assert.Equal(t, "@laugh.out", inf.Handle)
	assert.True(t, c.Contains("13"))

	_, ok = c.ByID("999")
	assert.False(t, ok)
}

// ==========================
// Postgres loader
// ==========================

var catalogColumns = []string{
	"id", "name", "handle", "platform", "location", "followers",
	"engagement_rate", "avg_likes", "est_value", "avatar_url", "niche",
}

func TestLoadFromPostgres_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(catalogColumns).
		AddRow("1", "Elara Vance", "@elara.vibe", "Instagram", "Los Angeles, USA", "42.5K", "8.4%", "3.2K", "$1,200", "", "{Fashion,Lifestyle}").
		AddRow("4", "Alex Rivera", "@alex.tech", "YouTube", "Austin, USA", "680K", "3.9%", "25K", "$5,500", "", "{Technology}")
	mock.ExpectQuery(`SELECT id, name, handle`).WillReturnRows(rows)

	c, err := LoadFromPostgres(context.Background(), db, "influencers")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	inf, ok := c.ByID("1")
	require.True(t, ok)
	assert.Equal(t, []string{"Fashion", "Lifestyle"}, inf.Niche)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadFromPostgres_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, handle`).WillReturnError(assert.AnError)

	_, err = LoadFromPostgres(context.Background(), db, "influencers")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeCatalogLoadFailed))
}

func TestLoadFromPostgres_DuplicateRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(catalogColumns).
		AddRow("1", "A", "@a", "TikTok", "X", "1K", "", "", "", "", "{}").
		AddRow("1", "B", "@b", "TikTok", "Y", "2K", "", "", "", "", "{}")
	mock.ExpectQuery(`SELECT id, name, handle`).WillReturnRows(rows)

	_, err = LoadFromPostgres(context.Background(), db, "influencers")
	assert.True(t, errors.HasCode(err, errors.ErrCodeCatalogLoadFailed))
}

// ==========================
// Source selection
// ==========================

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, config.CatalogConfig{Source: config.CatalogSourceSeed}, nil)
	require.NoError(t, err)
	assert.Equal(t, Seed().Len(), c.Len())

	_, err = Open(ctx, config.CatalogConfig{Source: config.CatalogSourcePostgres}, nil)
	assert.Error(t, err)

	_, err = Open(ctx, config.CatalogConfig{Source: "s3"}, nil)
	assert.Error(t, err)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectQuery(`FROM "creators"`).WillReturnRows(
		sqlmock.NewRows(catalogColumns).AddRow("9", "Nina", "@nina", "TikTok", "Oslo, Norway", "9K", "", "", "", "", "{Travel}"))

	c, err = Open(ctx, config.CatalogConfig{Source: config.CatalogSourcePostgres, Table: "creators"}, db)
	require.NoError(t, err)
	assert.True(t, c.Contains("9"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
