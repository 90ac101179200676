package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gearbase/gearbase/internal/availability"
	"github.com/gearbase/gearbase/internal/store"
)

// AvailabilityHandler serves the read-only availability projections:
// remaining quantities, conflict scans, and job line assembly.
type AvailabilityHandler struct {
	DB *sql.DB
}

// windowFromQuery parses optional from/to RFC 3339 query parameters. When
// both are present the returned range restricts which jobs count toward
// demand; otherwise ok is false and the whole ledger counts.
func windowFromQuery(r *http.Request) (availability.Range, bool, string) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" && toStr == "" {
		return availability.Range{}, false, ""
	}
	if fromStr == "" || toStr == "" {
		return availability.Range{}, false, "from and to must be given together"
	}

	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return availability.Range{}, false, "invalid from timestamp"
	}
	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		return availability.Range{}, false, "invalid to timestamp"
	}
	if !to.After(from) {
		return availability.Range{}, false, "to must be after from"
	}

	return availability.Range{Start: from, End: to}, true, ""
}

func (h *AvailabilityHandler) snapshot(w http.ResponseWriter, r *http.Request) (availability.Snapshot, bool) {
	snap, err := store.LoadSnapshot(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to load availability snapshot", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to load availability data")
		return availability.Snapshot{}, false
	}

	window, ok, msg := windowFromQuery(r)
	if msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return availability.Snapshot{}, false
	}
	if ok {
		snap = snap.ScopedTo(window)
	}

	return snap, true
}

// AssetAvailability handles GET /api/assets/{id}/availability.
func (h *AvailabilityHandler) AssetAvailability(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	asset, found := snap.Assets[r.PathValue("id")]
	if !found {
		jsonError(w, http.StatusNotFound, "asset not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"asset_id":    asset.ID,
		"owned_count": asset.OwnedCount,
		"demand":      availability.DemandFor(asset.ID, snap, ""),
		"remaining":   availability.Remaining(asset, snap, ""),
	})
}

// SetAvailability handles GET /api/sets/{id}/availability.
func (h *AvailabilityHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	set, found := snap.Sets[r.PathValue("id")]
	if !found {
		jsonError(w, http.StatusNotFound, "set not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"set_id":    set.ID,
		"demand":    availability.DemandFor(set.ID, snap, ""),
		"remaining": availability.RemainingForSet(set, snap, ""),
	})
}

// JobConflicts handles GET /api/jobs/{id}/conflicts.
func (h *AvailabilityHandler) JobConflicts(w http.ResponseWriter, r *http.Request) {
	job, err := store.GetJob(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get job", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get job")
		return
	}
	if job == nil {
		jsonError(w, http.StatusNotFound, "job not found")
		return
	}

	snap, err := store.LoadSnapshot(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to load availability snapshot", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to load availability data")
		return
	}

	conflicts := availability.FindConflicts(*job, snap)
	if conflicts == nil {
		conflicts = []availability.Conflict{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":    job.ID,
		"conflicts": conflicts,
	})
}

// JobLines handles GET /api/jobs/{id}/lines.
func (h *AvailabilityHandler) JobLines(w http.ResponseWriter, r *http.Request) {
	job, err := store.GetJob(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get job", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get job")
		return
	}
	if job == nil {
		jsonError(w, http.StatusNotFound, "job not found")
		return
	}

	snap, err := store.LoadSnapshot(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to load availability snapshot", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to load availability data")
		return
	}

	lines := availability.JobLines(*job, snap)
	if lines == nil {
		lines = []availability.LineItem{}
	}
	available := availability.AvailableItems(*job, snap)
	if available == nil {
		available = []availability.LineItem{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":    job.ID,
		"lines":     lines,
		"available": available,
	})
}
