package store

import (
	"context"
	"database/sql"

	"github.com/gearbase/gearbase/internal/availability"
)

// LoadSnapshot materializes the full catalog and job ledger for the
// availability engine. The returned snapshot is an independent copy; the
// engine never touches the database.
func LoadSnapshot(ctx context.Context, db *sql.DB) (availability.Snapshot, error) {
	assets, err := ListAssets(ctx, db, "")
	if err != nil {
		return availability.Snapshot{}, err
	}
	sets, err := ListSets(ctx, db)
	if err != nil {
		return availability.Snapshot{}, err
	}
	jobs, err := ListJobs(ctx, db)
	if err != nil {
		return availability.Snapshot{}, err
	}
	return availability.NewSnapshot(assets, sets, jobs), nil
}
