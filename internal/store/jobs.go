package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gearbase/gearbase/internal/model"
)

// CreateJob creates a new job with its asset and set lines.
func CreateJob(ctx context.Context, db *sql.DB, j model.Job) (*model.Job, error) {
	if !j.EndTime.After(j.StartTime) {
		return nil, fmt.Errorf("job end time must be after start time")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO jobs (id, name, customer, start_time, end_time, confirmed, notes) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, j.Name, j.Customer, j.StartTime, j.EndTime, j.Confirmed, j.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}

	if err := insertJobLines(ctx, tx, id, j.AssetLines, j.SetLines); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing job: %w", err)
	}

	return GetJob(ctx, db, id)
}

// GetJob returns a job by ID with its lines.
func GetJob(ctx context.Context, db *sql.DB, id string) (*model.Job, error) {
	j := &model.Job{}
	var customer, notes sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, customer, start_time, end_time, confirmed, notes, created_at, updated_at, deleted_at
		 FROM jobs WHERE id = ?`, id,
	).Scan(&j.ID, &j.Name, &customer, &j.StartTime, &j.EndTime, &j.Confirmed, &notes, &j.CreatedAt, &j.UpdatedAt, &j.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting job: %w", err)
	}
	j.Customer = customer.String
	j.Notes = notes.String

	if err := loadJobLines(ctx, db, j); err != nil {
		return nil, err
	}
	return j, nil
}

// ListJobs returns all non-deleted jobs with their lines, ordered by start
// time.
func ListJobs(ctx context.Context, db *sql.DB) ([]model.Job, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, customer, start_time, end_time, confirmed, notes, created_at, updated_at, deleted_at
		 FROM jobs WHERE deleted_at IS NULL ORDER BY start_time`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		var customer, notes sql.NullString
		if err := rows.Scan(&j.ID, &j.Name, &customer, &j.StartTime, &j.EndTime, &j.Confirmed, &notes, &j.CreatedAt, &j.UpdatedAt, &j.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		j.Customer = customer.String
		j.Notes = notes.String
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range jobs {
		if err := loadJobLines(ctx, db, &jobs[i]); err != nil {
			return nil, err
		}
	}
	return jobs, nil
}

// UpdateJob updates a job's metadata and replaces its lines.
func UpdateJob(ctx context.Context, db *sql.DB, id string, j model.Job) error {
	if !j.EndTime.After(j.StartTime) {
		return fmt.Errorf("job end time must be after start time")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE jobs SET name = ?, customer = ?, start_time = ?, end_time = ?, confirmed = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		j.Name, j.Customer, j.StartTime, j.EndTime, j.Confirmed, j.Notes, id,
	)
	if err != nil {
		return fmt.Errorf("updating job: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM job_assets WHERE job_id = ?`, id); err != nil {
		return fmt.Errorf("clearing job asset lines: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM job_sets WHERE job_id = ?`, id); err != nil {
		return fmt.Errorf("clearing job set lines: %w", err)
	}
	if err := insertJobLines(ctx, tx, id, j.AssetLines, j.SetLines); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing job update: %w", err)
	}
	return nil
}

// DeleteJob soft-deletes a job.
func DeleteJob(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE jobs SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting job: %w", err)
	}
	return nil
}

func insertJobLines(ctx context.Context, tx *sql.Tx, jobID string, assetLines []model.AssetLine, setLines []model.SetLine) error {
	for _, line := range assetLines {
		if line.Quantity <= 0 {
			return fmt.Errorf("asset line quantity must be positive")
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO job_assets (job_id, asset_id, quantity, days_override) VALUES (?, ?, ?, ?)`,
			jobID, line.AssetID, line.Quantity, line.DaysOverride,
		)
		if err != nil {
			return fmt.Errorf("inserting job asset line: %w", err)
		}
	}
	for _, line := range setLines {
		if line.Quantity <= 0 {
			return fmt.Errorf("set line quantity must be positive")
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO job_sets (job_id, set_id, quantity, days_override) VALUES (?, ?, ?, ?)`,
			jobID, line.SetID, line.Quantity, line.DaysOverride,
		)
		if err != nil {
			return fmt.Errorf("inserting job set line: %w", err)
		}
	}
	return nil
}

func loadJobLines(ctx context.Context, db *sql.DB, j *model.Job) error {
	assetRows, err := db.QueryContext(ctx,
		`SELECT asset_id, quantity, days_override FROM job_assets WHERE job_id = ? ORDER BY asset_id`,
		j.ID,
	)
	if err != nil {
		return fmt.Errorf("getting job asset lines: %w", err)
	}
	defer assetRows.Close()

	for assetRows.Next() {
		var line model.AssetLine
		if err := assetRows.Scan(&line.AssetID, &line.Quantity, &line.DaysOverride); err != nil {
			return fmt.Errorf("scanning job asset line: %w", err)
		}
		j.AssetLines = append(j.AssetLines, line)
	}
	if err := assetRows.Err(); err != nil {
		return err
	}

	setRows, err := db.QueryContext(ctx,
		`SELECT set_id, quantity, days_override FROM job_sets WHERE job_id = ? ORDER BY set_id`,
		j.ID,
	)
	if err != nil {
		return fmt.Errorf("getting job set lines: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var line model.SetLine
		if err := setRows.Scan(&line.SetID, &line.Quantity, &line.DaysOverride); err != nil {
			return fmt.Errorf("scanning job set line: %w", err)
		}
		j.SetLines = append(j.SetLines, line)
	}
	return setRows.Err()
}
