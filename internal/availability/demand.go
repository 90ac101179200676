package availability

import "github.com/gearbase/gearbase/internal/model"

// DemandFor sums the reserved quantity attributable to id (an asset or set
// id) across the snapshot's jobs, skipping the job with excludeJobID. The
// exclusion matches by id, never by value, so a value-equal duplicate of the
// excluded job still counts.
//
// Three contributions are independent and additive per job: direct asset
// lines matching id, direct set lines matching id, and set lines whose set's
// composition contains asset id. A nested match contributes the set line's
// quantity, not the per-unit quantity from the set definition.
//
// No time filtering happens here; callers restrict Jobs to the relevant
// window first (see JobsOverlapping). Ids that resolve to nothing contribute
// zero.
func DemandFor(id string, snap Snapshot, excludeJobID string) int {
	total := 0
	for _, j := range snap.Jobs {
		if excludeJobID != "" && j.ID == excludeJobID {
			continue
		}
		for _, al := range j.AssetLines {
			if al.AssetID == id {
				total += al.Quantity
			}
		}
		for _, sl := range j.SetLines {
			if sl.SetID == id {
				total += sl.Quantity
			}
			set, ok := snap.Sets[sl.SetID]
			if !ok {
				continue
			}
			for _, sa := range set.Assets {
				if sa.AssetID == id {
					total += sl.Quantity
				}
			}
		}
	}
	return total
}

// jobReferences reports whether j reserves id directly or transitively,
// using the same three-case matching as DemandFor.
func jobReferences(j model.Job, id string, sets map[string]model.AssetSet) bool {
	for _, al := range j.AssetLines {
		if al.AssetID == id {
			return true
		}
	}
	for _, sl := range j.SetLines {
		if sl.SetID == id {
			return true
		}
		set, ok := sets[sl.SetID]
		if !ok {
			continue
		}
		for _, sa := range set.Assets {
			if sa.AssetID == id {
				return true
			}
		}
	}
	return false
}
