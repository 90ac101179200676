package availability

import (
	"time"

	"github.com/gearbase/gearbase/internal/model"
)

// Conflict marks a day on which booking the candidate would exceed an
// asset's owned count.
type Conflict struct {
	Asset model.Asset `json:"asset"`
	Day   time.Time   `json:"day"`
}

// FindConflicts checks every direct asset line of the candidate against the
// snapshot's other jobs and returns the (asset, day) overbooking conflicts,
// ordered by line then day. The candidate is excluded from the competition
// by id, so re-validating a job already present in the ledger works.
//
// Conflicts are advisory: callers surface them as warnings and never block
// saving. Asset lines whose id is not in the catalog are skipped; reporting
// the dangling reference is the caller's concern. A candidate with no asset
// lines yields no conflicts.
func FindConflicts(candidate model.Job, snap Snapshot) []Conflict {
	days := BufferedRange(candidate).Days()

	var conflicts []Conflict
	for _, line := range candidate.AssetLines {
		asset, ok := snap.Assets[line.AssetID]
		if !ok {
			continue
		}

		var competing []Range
		for _, j := range snap.Jobs {
			if j.ID == candidate.ID {
				continue
			}
			if jobReferences(j, line.AssetID, snap.Sets) {
				competing = append(competing, BufferedRange(j))
			}
		}

		for _, d := range days {
			if !HasCapacity(asset, d, competing) {
				conflicts = append(conflicts, Conflict{Asset: asset, Day: d})
			}
		}
	}
	return conflicts
}
