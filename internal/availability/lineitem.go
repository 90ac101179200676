package availability

import (
	"sort"

	"github.com/gearbase/gearbase/internal/model"
)

// ItemKind tags a line item as referring to an asset or a set.
type ItemKind string

// Line item kinds.
const (
	KindAsset ItemKind = "asset"
	KindSet   ItemKind = "set"
)

// LineItem is a display row for a job's booking lines and for the
// available-to-add catalog. MaxQuantity is the remaining bookable quantity
// computed excluding the job itself; it can be negative on overbooked lines.
type LineItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Kind        ItemKind `json:"kind"`
	Quantity    int      `json:"quantity"`
	MaxQuantity int      `json:"max_quantity"`
}

// JobLines builds display rows for the job's current asset and set lines.
// Demand is restricted to jobs overlapping the job's buffered range. Lines
// referencing unknown catalog entries are skipped. Nothing is cached; rows
// are recomputed on every call.
func JobLines(job model.Job, snap Snapshot) []LineItem {
	scoped := snap.ScopedTo(BufferedRange(job))

	var lines []LineItem
	for _, al := range job.AssetLines {
		asset, ok := snap.Assets[al.AssetID]
		if !ok {
			continue
		}
		lines = append(lines, LineItem{
			ID:          asset.ID,
			Name:        asset.Name,
			Kind:        KindAsset,
			Quantity:    al.Quantity,
			MaxQuantity: Remaining(asset, scoped, job.ID),
		})
	}
	for _, sl := range job.SetLines {
		set, ok := snap.Sets[sl.SetID]
		if !ok {
			continue
		}
		lines = append(lines, LineItem{
			ID:          set.ID,
			Name:        set.Name,
			Kind:        KindSet,
			Quantity:    sl.Quantity,
			MaxQuantity: RemainingForSet(set, scoped, job.ID),
		})
	}
	return lines
}

// AvailableItems lists catalog entries not already on the job that still
// have positive remaining quantity over the job's buffered range, sorted by
// name then id for stable output.
func AvailableItems(job model.Job, snap Snapshot) []LineItem {
	scoped := snap.ScopedTo(BufferedRange(job))

	onJob := make(map[string]bool, len(job.AssetLines)+len(job.SetLines))
	for _, al := range job.AssetLines {
		onJob[al.AssetID] = true
	}
	for _, sl := range job.SetLines {
		onJob[sl.SetID] = true
	}

	var items []LineItem
	for _, asset := range snap.Assets {
		if onJob[asset.ID] {
			continue
		}
		if max := Remaining(asset, scoped, job.ID); max > 0 {
			items = append(items, LineItem{
				ID:          asset.ID,
				Name:        asset.Name,
				Kind:        KindAsset,
				MaxQuantity: max,
			})
		}
	}
	for _, set := range snap.Sets {
		if onJob[set.ID] {
			continue
		}
		if max := RemainingForSet(set, scoped, job.ID); max > 0 {
			items = append(items, LineItem{
				ID:          set.ID,
				Name:        set.Name,
				Kind:        KindSet,
				MaxQuantity: max,
			})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
	return items
}
