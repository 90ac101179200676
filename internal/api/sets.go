package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/gearbase/gearbase/internal/model"
	"github.com/gearbase/gearbase/internal/store"
)

// SetsHandler handles asset set CRUD endpoints.
type SetsHandler struct {
	DB *sql.DB
}

type setLineRequest struct {
	AssetID  string `json:"asset_id"`
	Quantity int    `json:"quantity"`
}

type setRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Assets      []setLineRequest `json:"assets"`
}

func (req setRequest) toModel() model.AssetSet {
	set := model.AssetSet{
		Name:        req.Name,
		Description: req.Description,
	}
	for _, line := range req.Assets {
		set.Assets = append(set.Assets, model.SetAssetLine{
			AssetID:  line.AssetID,
			Quantity: line.Quantity,
		})
	}
	return set
}

func validateSetRequest(req setRequest) string {
	if req.Name == "" {
		return "name required"
	}
	for _, line := range req.Assets {
		if line.AssetID == "" {
			return "asset id required on every line"
		}
		if line.Quantity <= 0 {
			return "line quantity must be positive"
		}
	}
	return ""
}

// List handles GET /api/sets.
func (h *SetsHandler) List(w http.ResponseWriter, r *http.Request) {
	sets, err := store.ListSets(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list sets", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list sets")
		return
	}
	if sets == nil {
		sets = []model.AssetSet{}
	}
	jsonResponse(w, http.StatusOK, sets)
}

// Create handles POST /api/sets.
func (h *SetsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req setRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateSetRequest(req); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	set, err := store.CreateSet(r.Context(), h.DB, req.toModel())
	if err != nil {
		slog.Error("failed to create set", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create set")
		return
	}

	jsonResponse(w, http.StatusCreated, set)
}

// Get handles GET /api/sets/{id}.
func (h *SetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	set, err := store.GetSet(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get set", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get set")
		return
	}
	if set == nil {
		jsonError(w, http.StatusNotFound, "set not found")
		return
	}

	jsonResponse(w, http.StatusOK, set)
}

// Update handles PUT /api/sets/{id}.
func (h *SetsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req setRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateSetRequest(req); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	if err := store.UpdateSet(r.Context(), h.DB, id, req.toModel()); err != nil {
		slog.Error("failed to update set", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update set")
		return
	}

	set, _ := store.GetSet(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, set)
}

// Delete handles DELETE /api/sets/{id}.
func (h *SetsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteSet(r.Context(), h.DB, r.PathValue("id")); err != nil {
		slog.Error("failed to delete set", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete set")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "set deleted"})
}
