package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gearbase/gearbase/internal/model"
)

// CreateAsset creates a new asset.
func CreateAsset(ctx context.Context, db *sql.DB, a model.Asset) (*model.Asset, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO assets (id, name, manufacturer, model, type, owned_count) VALUES (?, ?, ?, ?, ?, ?)`,
		id, a.Name, a.Manufacturer, a.Model, a.Type, a.OwnedCount,
	)
	if err != nil {
		return nil, fmt.Errorf("creating asset: %w", err)
	}

	return GetAsset(ctx, db, id)
}

// GetAsset returns an asset by ID.
func GetAsset(ctx context.Context, db *sql.DB, id string) (*model.Asset, error) {
	a := &model.Asset{}
	var manufacturer, mdl, typ, imageMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, manufacturer, model, type, owned_count, image_mime, created_at, updated_at, deleted_at
		 FROM assets WHERE id = ?`, id,
	).Scan(&a.ID, &a.Name, &manufacturer, &mdl, &typ, &a.OwnedCount, &imageMime, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting asset: %w", err)
	}
	a.Manufacturer = manufacturer.String
	a.Model = mdl.String
	a.Type = typ.String
	a.ImageMime = imageMime.String
	return a, nil
}

// ListAssets returns all non-deleted assets, optionally filtered by type.
func ListAssets(ctx context.Context, db *sql.DB, typ string) ([]model.Asset, error) {
	query := `SELECT id, name, manufacturer, model, type, owned_count, image_mime, created_at, updated_at, deleted_at
	          FROM assets WHERE deleted_at IS NULL`
	args := []any{}
	if typ != "" {
		query += ` AND type = ?`
		args = append(args, typ)
	}
	query += ` ORDER BY name`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer rows.Close()

	var assets []model.Asset
	for rows.Next() {
		var a model.Asset
		var manufacturer, mdl, typ, imageMime sql.NullString
		if err := rows.Scan(&a.ID, &a.Name, &manufacturer, &mdl, &typ, &a.OwnedCount, &imageMime, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}
		a.Manufacturer = manufacturer.String
		a.Model = mdl.String
		a.Type = typ.String
		a.ImageMime = imageMime.String
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// UpdateAsset updates an asset's metadata and owned count.
func UpdateAsset(ctx context.Context, db *sql.DB, id string, a model.Asset) error {
	_, err := db.ExecContext(ctx,
		`UPDATE assets SET name = ?, manufacturer = ?, model = ?, type = ?, owned_count = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		a.Name, a.Manufacturer, a.Model, a.Type, a.OwnedCount, id,
	)
	if err != nil {
		return fmt.Errorf("updating asset: %w", err)
	}
	return nil
}

// DeleteAsset soft-deletes an asset.
func DeleteAsset(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE assets SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}
	return nil
}

// SetAssetImage sets an asset's image data.
func SetAssetImage(ctx context.Context, db *sql.DB, id string, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE assets SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting asset image: %w", err)
	}
	return nil
}

// GetAssetImage returns an asset's image data and MIME type.
func GetAssetImage(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM assets WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting asset image: %w", err)
	}
	return image, mime.String, nil
}
