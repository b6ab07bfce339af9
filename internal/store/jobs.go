package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jobradar-engine/internal/domain"
)

// ExistsByURL reports whether a job with this exact URL has been persisted
// before. URL matching is case-sensitive, same as the in-run dedupe.
func (d *DB) ExistsByURL(ctx context.Context, url string) (bool, error) {
	var one int
	err := d.Pool.QueryRowContext(ctx,
		`SELECT 1 FROM jobs WHERE url = ? LIMIT 1;`, url).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists by url: %w", err)
	}
	return true, nil
}

// InsertJob persists j and returns the assigned row id.
func (d *DB) InsertJob(ctx context.Context, j domain.Job) (int64, error) {
	var posted sql.NullString
	if j.Posted != nil {
		posted = sql.NullString{String: *j.Posted, Valid: true}
	}

	res, err := d.Pool.ExecContext(ctx, `
INSERT INTO jobs (company, title, location, url, source, posted, first_seen)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
		j.Company, j.Title, j.Location, j.URL, j.Source, posted,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert job: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert job id: %w", err)
	}
	return id, nil
}
