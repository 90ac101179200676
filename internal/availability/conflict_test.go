package availability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gearbase/gearbase/internal/availability"
	"github.com/gearbase/gearbase/internal/model"
)

func bookingJob(id string, startDay, endDay int, lines ...model.AssetLine) model.Job {
	return model.Job{
		ID:         id,
		StartTime:  day(startDay),
		EndTime:    day(endDay),
		AssetLines: lines,
	}
}

func oneOf(assetID string) model.AssetLine {
	return model.AssetLine{AssetID: assetID, Quantity: 1}
}

func TestFindConflictsNoAssetLines(t *testing.T) {
	candidate := model.Job{ID: "cand", StartTime: day(1), EndTime: day(3)}
	snap := snapshot(nil, nil,
		bookingJob("j1", 1, 3, oneOf("cam")),
	)

	require.Empty(t, availability.FindConflicts(candidate, snap))
}

func TestFindConflictsWithinCapacity(t *testing.T) {
	assets := []model.Asset{{ID: "cam", Name: "Camera", OwnedCount: 2}}
	snap := snapshot(assets, nil,
		bookingJob("j1", 1, 3, oneOf("cam")),
	)
	candidate := bookingJob("cand", 2, 3, oneOf("cam"))

	require.Empty(t, availability.FindConflicts(candidate, snap))
}

func TestFindConflictsOverbookedDays(t *testing.T) {
	// Two units owned, two existing bookings covering the candidate's
	// window: a third concurrent booking exceeds the owned count on every
	// buffered day of the candidate.
	assets := []model.Asset{{ID: "cam", Name: "Camera", OwnedCount: 2}}
	snap := snapshot(assets, nil,
		bookingJob("j1", 1, 3, oneOf("cam")),
		bookingJob("j2", 2, 4, oneOf("cam")),
	)
	candidate := bookingJob("cand", 2, 3, oneOf("cam"))

	conflicts := availability.FindConflicts(candidate, snap)
	require.Len(t, conflicts, 2)
	require.Equal(t, "cam", conflicts[0].Asset.ID)
	require.Equal(t, day(1), conflicts[0].Day)
	require.Equal(t, day(2), conflicts[1].Day)
}

func TestFindConflictsSingleUnit(t *testing.T) {
	// One unit owned: disjoint bookings are fine, any overlap conflicts.
	assets := []model.Asset{{ID: "cam", OwnedCount: 1}}

	disjoint := snapshot(assets, nil, bookingJob("j1", 10, 12, oneOf("cam")))
	require.Empty(t, availability.FindConflicts(bookingJob("cand", 1, 3, oneOf("cam")), disjoint))

	overlapping := snapshot(assets, nil, bookingJob("j1", 2, 4, oneOf("cam")))
	conflicts := availability.FindConflicts(bookingJob("cand", 3, 4, oneOf("cam")), overlapping)
	require.NotEmpty(t, conflicts)
	for _, c := range conflicts {
		require.Equal(t, "cam", c.Asset.ID)
	}
}

func TestFindConflictsExcludesCandidateByID(t *testing.T) {
	// Re-validating a job already saved in the ledger must not make it
	// compete with itself.
	assets := []model.Asset{{ID: "cam", OwnedCount: 1}}
	candidate := bookingJob("cand", 1, 3, oneOf("cam"))
	snap := snapshot(assets, nil, candidate)

	require.Empty(t, availability.FindConflicts(candidate, snap))
}

func TestFindConflictsValueEqualJobStillCompetes(t *testing.T) {
	// A different job that happens to match the candidate field-for-field
	// is not the candidate; it competes.
	assets := []model.Asset{{ID: "cam", OwnedCount: 1}}
	candidate := bookingJob("cand", 1, 3, oneOf("cam"))
	twin := bookingJob("twin", 1, 3, oneOf("cam"))
	snap := snapshot(assets, nil, twin)

	require.NotEmpty(t, availability.FindConflicts(candidate, snap))
}

func TestFindConflictsCompetitionThroughSets(t *testing.T) {
	// An existing job booking a set that contains the asset competes for
	// the asset's units even though it never names the asset directly.
	assets := []model.Asset{{ID: "cam", OwnedCount: 1}}
	sets := []model.AssetSet{{
		ID:     "video-kit",
		Assets: []model.SetAssetLine{{AssetID: "cam", Quantity: 1}},
	}}
	existing := model.Job{
		ID:        "j1",
		StartTime: day(2),
		EndTime:   day(4),
		SetLines:  []model.SetLine{{SetID: "video-kit", Quantity: 1}},
	}
	snap := snapshot(assets, sets, existing)
	candidate := bookingJob("cand", 2, 3, oneOf("cam"))

	require.NotEmpty(t, availability.FindConflicts(candidate, snap))
}

func TestFindConflictsUnknownAssetSkipped(t *testing.T) {
	snap := snapshot(nil, nil, bookingJob("j1", 1, 3, oneOf("ghost")))
	candidate := bookingJob("cand", 1, 3, oneOf("ghost"))

	require.Empty(t, availability.FindConflicts(candidate, snap))
}

func TestFindConflictsOrderedByLineThenDay(t *testing.T) {
	assets := []model.Asset{
		{ID: "cam", OwnedCount: 1},
		{ID: "mic", OwnedCount: 1},
	}
	snap := snapshot(assets, nil,
		bookingJob("j1", 1, 3, oneOf("cam"), oneOf("mic")),
	)
	candidate := bookingJob("cand", 1, 3, oneOf("cam"), oneOf("mic"))

	conflicts := availability.FindConflicts(candidate, snap)
	require.Len(t, conflicts, 6, "three buffered days per line")
	require.Equal(t, "cam", conflicts[0].Asset.ID)
	require.Equal(t, "mic", conflicts[3].Asset.ID)
	require.True(t, conflicts[0].Day.Before(conflicts[1].Day))
	require.True(t, conflicts[1].Day.Before(conflicts[2].Day))
}
