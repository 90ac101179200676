package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gearbase/gearbase/internal/model"
	"github.com/gearbase/gearbase/internal/store"
)

// JobsHandler handles job CRUD endpoints.
type JobsHandler struct {
	DB *sql.DB
}

type jobAssetLineRequest struct {
	AssetID      string `json:"asset_id"`
	Quantity     int    `json:"quantity"`
	DaysOverride *int   `json:"days_override,omitempty"`
}

type jobSetLineRequest struct {
	SetID        string `json:"set_id"`
	Quantity     int    `json:"quantity"`
	DaysOverride *int   `json:"days_override,omitempty"`
}

type jobRequest struct {
	Name       string                `json:"name"`
	Customer   string                `json:"customer"`
	StartTime  time.Time             `json:"start_time"`
	EndTime    time.Time             `json:"end_time"`
	Confirmed  bool                  `json:"confirmed"`
	Notes      string                `json:"notes"`
	AssetLines []jobAssetLineRequest `json:"asset_lines"`
	SetLines   []jobSetLineRequest   `json:"set_lines"`
}

func (req jobRequest) toModel() model.Job {
	job := model.Job{
		Name:      req.Name,
		Customer:  req.Customer,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Confirmed: req.Confirmed,
		Notes:     req.Notes,
	}
	for _, line := range req.AssetLines {
		job.AssetLines = append(job.AssetLines, model.AssetLine{
			AssetID:      line.AssetID,
			Quantity:     line.Quantity,
			DaysOverride: line.DaysOverride,
		})
	}
	for _, line := range req.SetLines {
		job.SetLines = append(job.SetLines, model.SetLine{
			SetID:        line.SetID,
			Quantity:     line.Quantity,
			DaysOverride: line.DaysOverride,
		})
	}
	return job
}

func validateJobRequest(req jobRequest) string {
	if req.Name == "" {
		return "name required"
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return "start and end times required"
	}
	if !req.EndTime.After(req.StartTime) {
		return "end time must be after start time"
	}
	for _, line := range req.AssetLines {
		if line.AssetID == "" {
			return "asset id required on every asset line"
		}
		if line.Quantity <= 0 {
			return "asset line quantity must be positive"
		}
	}
	for _, line := range req.SetLines {
		if line.SetID == "" {
			return "set id required on every set line"
		}
		if line.Quantity <= 0 {
			return "set line quantity must be positive"
		}
	}
	return ""
}

// List handles GET /api/jobs.
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := store.ListJobs(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list jobs", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	jsonResponse(w, http.StatusOK, jobs)
}

// Create handles POST /api/jobs.
func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateJobRequest(req); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	job, err := store.CreateJob(r.Context(), h.DB, req.toModel())
	if err != nil {
		slog.Error("failed to create job", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create job")
		return
	}

	jsonResponse(w, http.StatusCreated, job)
}

// Get handles GET /api/jobs/{id}.
func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	jsonResponse(w, http.StatusOK, job)
}

// Update handles PUT /api/jobs/{id}.
func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateJobRequest(req); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	if err := store.UpdateJob(r.Context(), h.DB, id, req.toModel()); err != nil {
		slog.Error("failed to update job", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update job")
		return
	}

	job, _ := store.GetJob(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/{id}.
func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteJob(r.Context(), h.DB, r.PathValue("id")); err != nil {
		slog.Error("failed to delete job", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete job")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "job deleted"})
}
