// Package availability implements the booking availability and
// conflict-detection engine. Every operation is a pure function over an
// immutable Snapshot of the job ledger: the engine performs no I/O, holds no
// state, and may be invoked concurrently on independent snapshots. Callers
// own fetching a consistent snapshot and re-invoking after ledger changes.
package availability

import "github.com/gearbase/gearbase/internal/model"

// Snapshot is a read-only view of the catalogs and the full job ledger.
// Asset and set ids live in disjoint id spaces.
type Snapshot struct {
	Assets map[string]model.Asset
	Sets   map[string]model.AssetSet
	Jobs   []model.Job
}

// NewSnapshot indexes the given catalogs by id.
func NewSnapshot(assets []model.Asset, sets []model.AssetSet, jobs []model.Job) Snapshot {
	snap := Snapshot{
		Assets: make(map[string]model.Asset, len(assets)),
		Sets:   make(map[string]model.AssetSet, len(sets)),
		Jobs:   jobs,
	}
	for _, a := range assets {
		snap.Assets[a.ID] = a
	}
	for _, s := range sets {
		snap.Sets[s.ID] = s
	}
	return snap
}

// ScopedTo returns a copy of the snapshot whose jobs are restricted to those
// whose buffered range overlaps r.
func (s Snapshot) ScopedTo(r Range) Snapshot {
	scoped := s
	scoped.Jobs = JobsOverlapping(s.Jobs, r)
	return scoped
}
