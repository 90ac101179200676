package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gearbase/gearbase/internal/model"
)

// CreateSet creates a new asset set with its composition lines.
func CreateSet(ctx context.Context, db *sql.DB, s model.AssetSet) (*model.AssetSet, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO asset_sets (id, name, description) VALUES (?, ?, ?)`,
		id, s.Name, s.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("creating set: %w", err)
	}

	if err := insertSetLines(ctx, tx, id, s.Assets); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing set: %w", err)
	}

	return GetSet(ctx, db, id)
}

// GetSet returns a set by ID with its composition lines.
func GetSet(ctx context.Context, db *sql.DB, id string) (*model.AssetSet, error) {
	s := &model.AssetSet{}
	var description sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, description, created_at, updated_at, deleted_at
		 FROM asset_sets WHERE id = ?`, id,
	).Scan(&s.ID, &s.Name, &description, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting set: %w", err)
	}
	s.Description = description.String

	s.Assets, err = getSetLines(ctx, db, id)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListSets returns all non-deleted sets with their composition lines.
func ListSets(ctx context.Context, db *sql.DB) ([]model.AssetSet, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, description, created_at, updated_at, deleted_at
		 FROM asset_sets WHERE deleted_at IS NULL ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing sets: %w", err)
	}
	defer rows.Close()

	var sets []model.AssetSet
	for rows.Next() {
		var s model.AssetSet
		var description sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &description, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning set: %w", err)
		}
		s.Description = description.String
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sets {
		sets[i].Assets, err = getSetLines(ctx, db, sets[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return sets, nil
}

// UpdateSet updates a set's metadata and replaces its composition lines.
func UpdateSet(ctx context.Context, db *sql.DB, id string, s model.AssetSet) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE asset_sets SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		s.Name, s.Description, id,
	)
	if err != nil {
		return fmt.Errorf("updating set: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM set_assets WHERE set_id = ?`, id); err != nil {
		return fmt.Errorf("clearing set lines: %w", err)
	}
	if err := insertSetLines(ctx, tx, id, s.Assets); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing set update: %w", err)
	}
	return nil
}

// DeleteSet soft-deletes a set.
func DeleteSet(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE asset_sets SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting set: %w", err)
	}
	return nil
}

func insertSetLines(ctx context.Context, tx *sql.Tx, setID string, lines []model.SetAssetLine) error {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return fmt.Errorf("set line quantity must be positive")
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO set_assets (set_id, asset_id, quantity) VALUES (?, ?, ?)`,
			setID, line.AssetID, line.Quantity,
		)
		if err != nil {
			return fmt.Errorf("inserting set line: %w", err)
		}
	}
	return nil
}

func getSetLines(ctx context.Context, db *sql.DB, setID string) ([]model.SetAssetLine, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT sa.asset_id, sa.quantity, a.name AS asset_name
		 FROM set_assets sa
		 JOIN assets a ON a.id = sa.asset_id
		 WHERE sa.set_id = ?
		 ORDER BY a.name`, setID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting set lines: %w", err)
	}
	defer rows.Close()

	var lines []model.SetAssetLine
	for rows.Next() {
		var line model.SetAssetLine
		if err := rows.Scan(&line.AssetID, &line.Quantity, &line.AssetName); err != nil {
			return nil, fmt.Errorf("scanning set line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
