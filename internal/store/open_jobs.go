package store

import (
	"context"
	"database/sql"
	"time"

	"apptrack-engine/internal/domain"
)

// OpenJobs is the sqlite-backed snapshot of the open-jobs cache. It only
// warm-starts the in-memory list after a restart; the serving copy lives in
// the cache, not here.
type OpenJobs struct {
	DB *sql.DB
}

// ReplaceOpenJobs swaps the whole snapshot in one transaction.
func (s OpenJobs) ReplaceOpenJobs(ctx context.Context, list []domain.JobRecord) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM open_jobs;`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO open_jobs(company, role, location, source_url, date_posted)
VALUES(?,?,?,?,?);`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, j := range list {
		datePosted := ""
		if j.DatePosted != nil {
			datePosted = j.DatePosted.Format(time.RFC3339)
		}
		if _, err := stmt.ExecContext(ctx, j.Company, j.Role, j.Location, j.SourceURL, datePosted); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListOpenJobs returns the snapshot in insertion order.
func (s OpenJobs) ListOpenJobs(ctx context.Context) ([]domain.JobRecord, error) {
	rows, err := s.DB.QueryContext(ctx, `
SELECT company, role, location, source_url, date_posted
FROM open_jobs
ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.JobRecord
	for rows.Next() {
		var j domain.JobRecord
		var dateStr string
		if err := rows.Scan(&j.Company, &j.Role, &j.Location, &j.SourceURL, &dateStr); err != nil {
			return nil, err
		}
		if dateStr != "" {
			if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
				j.DatePosted = &t
			}
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
