package availability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gearbase/gearbase/internal/availability"
	"github.com/gearbase/gearbase/internal/model"
)

func TestHasCapacity(t *testing.T) {
	asset := model.Asset{ID: "cam", OwnedCount: 2}
	busy := []availability.Range{
		span(day(1), day(3)),
		span(day(2), day(4)),
	}

	require.True(t, availability.HasCapacity(asset, day(1), busy), "one competing booking on day 1")
	require.False(t, availability.HasCapacity(asset, day(2), busy), "both bookings cover day 2")
	require.True(t, availability.HasCapacity(asset, day(4), busy), "one competing booking on day 4")
	require.True(t, availability.HasCapacity(asset, day(10), busy), "no competing bookings")
}

func TestHasCapacityZeroOwned(t *testing.T) {
	asset := model.Asset{ID: "cam", OwnedCount: 0}
	require.False(t, availability.HasCapacity(asset, day(1), nil))
}

func TestRemainingNoJobs(t *testing.T) {
	asset := model.Asset{ID: "cam", OwnedCount: 7}
	require.Equal(t, 7, availability.Remaining(asset, snapshot(nil, nil), ""))
}

func TestRemainingCanGoNegative(t *testing.T) {
	// Overbooked assets report a negative remainder; it is diagnostic and
	// must not be clamped.
	asset := model.Asset{ID: "cam", OwnedCount: 1}
	snap := snapshot(nil, nil,
		model.Job{ID: "j1", AssetLines: []model.AssetLine{{AssetID: "cam", Quantity: 3}}},
	)

	require.Equal(t, -2, availability.Remaining(asset, snap, ""))
}

func TestRemainingExcludesEditedJob(t *testing.T) {
	asset := model.Asset{ID: "cam", OwnedCount: 5}
	snap := snapshot(nil, nil,
		model.Job{ID: "j1", AssetLines: []model.AssetLine{{AssetID: "cam", Quantity: 2}}},
		model.Job{ID: "j2", AssetLines: []model.AssetLine{{AssetID: "cam", Quantity: 1}}},
	)

	require.Equal(t, 2, availability.Remaining(asset, snap, ""))
	require.Equal(t, 4, availability.Remaining(asset, snap, "j1"))
}

func TestRemainingForSetTakesMaximum(t *testing.T) {
	// Asset a: owned 5 with 3 reserved elsewhere, so 2 remain. Asset b:
	// owned 1 with nothing reserved, so 1 remains. The set reports
	// max(2, 1) = 2, the documented policy (not the bottleneck minimum).
	assets := []model.Asset{
		{ID: "a", OwnedCount: 5},
		{ID: "b", OwnedCount: 1},
	}
	set := model.AssetSet{
		ID: "kit",
		Assets: []model.SetAssetLine{
			{AssetID: "a", Quantity: 1},
			{AssetID: "b", Quantity: 1},
		},
	}
	snap := snapshot(assets, []model.AssetSet{set},
		model.Job{ID: "j1", AssetLines: []model.AssetLine{{AssetID: "a", Quantity: 3}}},
	)

	require.Equal(t, 2, availability.RemainingForSet(set, snap, ""))
}

func TestRemainingForSetEmpty(t *testing.T) {
	set := model.AssetSet{ID: "empty"}
	require.Equal(t, 0, availability.RemainingForSet(set, snapshot(nil, nil), ""))
}

func TestRemainingForSetAllDangling(t *testing.T) {
	set := model.AssetSet{
		ID:     "kit",
		Assets: []model.SetAssetLine{{AssetID: "ghost", Quantity: 1}},
	}
	require.Equal(t, 0, availability.RemainingForSet(set, snapshot(nil, nil), ""))
}

func TestRemainingForSetNegativeConstituents(t *testing.T) {
	// When every constituent is overbooked the maximum is still reported,
	// negative and unclamped.
	assets := []model.Asset{{ID: "a", OwnedCount: 1}}
	set := model.AssetSet{
		ID:     "kit",
		Assets: []model.SetAssetLine{{AssetID: "a", Quantity: 1}},
	}
	snap := snapshot(assets, []model.AssetSet{set},
		model.Job{ID: "j1", AssetLines: []model.AssetLine{{AssetID: "a", Quantity: 4}}},
	)

	require.Equal(t, -3, availability.RemainingForSet(set, snap, ""))
}
