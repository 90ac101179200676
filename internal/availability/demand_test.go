package availability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gearbase/gearbase/internal/availability"
	"github.com/gearbase/gearbase/internal/model"
)

func snapshot(assets []model.Asset, sets []model.AssetSet, jobs ...model.Job) availability.Snapshot {
	return availability.NewSnapshot(assets, sets, jobs)
}

func TestDemandForDirectAssetLines(t *testing.T) {
	snap := snapshot(nil, nil,
		model.Job{ID: "j1", AssetLines: []model.AssetLine{{AssetID: "cam", Quantity: 2}}},
		model.Job{ID: "j2", AssetLines: []model.AssetLine{{AssetID: "cam", Quantity: 3}, {AssetID: "mic", Quantity: 1}}},
	)

	require.Equal(t, 5, availability.DemandFor("cam", snap, ""))
	require.Equal(t, 1, availability.DemandFor("mic", snap, ""))
	require.Equal(t, 0, availability.DemandFor("tripod", snap, ""))
}

func TestDemandForDirectSetLines(t *testing.T) {
	snap := snapshot(nil, nil,
		model.Job{ID: "j1", SetLines: []model.SetLine{{SetID: "audio-kit", Quantity: 2}}},
		model.Job{ID: "j2", SetLines: []model.SetLine{{SetID: "audio-kit", Quantity: 1}}},
	)

	require.Equal(t, 3, availability.DemandFor("audio-kit", snap, ""))
}

func TestDemandForNestedAssetUsesSetLineQuantity(t *testing.T) {
	// One set line of quantity 3 for a set containing the asset with
	// per-unit quantity 1 contributes 3, not 1.
	sets := []model.AssetSet{{
		ID:     "audio-kit",
		Assets: []model.SetAssetLine{{AssetID: "mic", Quantity: 1}},
	}}
	snap := snapshot(nil, sets,
		model.Job{ID: "j1", SetLines: []model.SetLine{{SetID: "audio-kit", Quantity: 3}}},
	)

	require.Equal(t, 3, availability.DemandFor("mic", snap, ""))
}

func TestDemandForContributionsAreAdditive(t *testing.T) {
	// A single job referencing the same asset both directly and through a
	// set counts twice; there is no de-duplication.
	sets := []model.AssetSet{{
		ID:     "audio-kit",
		Assets: []model.SetAssetLine{{AssetID: "mic", Quantity: 2}},
	}}
	snap := snapshot(nil, sets,
		model.Job{
			ID:         "j1",
			AssetLines: []model.AssetLine{{AssetID: "mic", Quantity: 1}},
			SetLines:   []model.SetLine{{SetID: "audio-kit", Quantity: 4}},
		},
	)

	require.Equal(t, 5, availability.DemandFor("mic", snap, ""))
}

func TestDemandForExcludesByIDNotByValue(t *testing.T) {
	line := []model.AssetLine{{AssetID: "cam", Quantity: 2}}
	snap := snapshot(nil, nil,
		model.Job{ID: "j1", AssetLines: line},
		// Value-equal to j1 apart from the id; must still count.
		model.Job{ID: "j2", AssetLines: line},
	)

	require.Equal(t, 4, availability.DemandFor("cam", snap, ""))
	require.Equal(t, 2, availability.DemandFor("cam", snap, "j1"))
	require.Equal(t, 2, availability.DemandFor("cam", snap, "j2"))
}

func TestDemandForDanglingSetReference(t *testing.T) {
	// A set line pointing at an unknown set still counts for the set id
	// itself but cannot resolve nested assets.
	snap := snapshot(nil, nil,
		model.Job{ID: "j1", SetLines: []model.SetLine{{SetID: "ghost", Quantity: 2}}},
	)

	require.Equal(t, 2, availability.DemandFor("ghost", snap, ""))
	require.Equal(t, 0, availability.DemandFor("mic", snap, ""))
}

func TestDemandForEmptyLedger(t *testing.T) {
	require.Equal(t, 0, availability.DemandFor("cam", snapshot(nil, nil), ""))
}
