package store

import (
	"context"
	"path/filepath"
	"testing"

	"jobradar-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInsertAndExists(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	posted := "2026-08-20"
	j := domain.Job{
		Company:  "Acme",
		Title:    "Software Engineer I",
		Location: "Austin, TX",
		URL:      "https://boards.greenhouse.io/acme/123",
		Source:   "org/repo/README.md",
		Posted:   &posted,
	}

	exists, err := db.ExistsByURL(ctx, j.URL)
	require.NoError(t, err)
	assert.False(t, exists)

	id, err := db.InsertJob(ctx, j)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0), "storage assigns identity")

	exists, err = db.ExistsByURL(ctx, j.URL)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInsertNilPosted(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.InsertJob(ctx, domain.Job{
		Company: "Globex",
		Title:   "Globex",
		URL:     "https://globex.com/careers/1",
		Source:  "org/repo/README.md",
	})
	require.NoError(t, err)

	var posted *string
	err = db.Pool.QueryRowContext(ctx,
		`SELECT posted FROM jobs WHERE url = ?;`, "https://globex.com/careers/1").Scan(&posted)
	require.NoError(t, err)
	assert.Nil(t, posted, "absent posted stays NULL, not empty string")
}

func TestDuplicateURLRejected(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	j := domain.Job{Company: "Acme", Title: "Acme", URL: "https://acme.com/j/1", Source: "s"}
	_, err := db.InsertJob(ctx, j)
	require.NoError(t, err)

	_, err = db.InsertJob(ctx, j)
	assert.Error(t, err, "unique index on url backs up the existence check")
}

func TestExistsIsCaseSensitive(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.InsertJob(ctx, domain.Job{Company: "A", Title: "A", URL: "https://acme.com/Jobs/1", Source: "s"})
	require.NoError(t, err)

	exists, err := db.ExistsByURL(ctx, "https://acme.com/jobs/1")
	require.NoError(t, err)
	assert.False(t, exists)
}
