package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/gearbase/gearbase/internal/imaging"
	"github.com/gearbase/gearbase/internal/model"
	"github.com/gearbase/gearbase/internal/store"
)

// AssetsHandler handles asset CRUD endpoints.
type AssetsHandler struct {
	DB *sql.DB
}

type assetRequest struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Type         string `json:"type"`
	OwnedCount   int    `json:"owned_count"`
}

// List handles GET /api/assets.
func (h *AssetsHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := store.ListAssets(r.Context(), h.DB, r.URL.Query().Get("type"))
	if err != nil {
		slog.Error("failed to list assets", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list assets")
		return
	}
	if assets == nil {
		assets = []model.Asset{}
	}
	jsonResponse(w, http.StatusOK, assets)
}

// Create handles POST /api/assets.
func (h *AssetsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.OwnedCount < 0 {
		jsonError(w, http.StatusBadRequest, "owned count cannot be negative")
		return
	}

	asset, err := store.CreateAsset(r.Context(), h.DB, model.Asset{
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		Type:         req.Type,
		OwnedCount:   req.OwnedCount,
	})
	if err != nil {
		slog.Error("failed to create asset", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create asset")
		return
	}

	jsonResponse(w, http.StatusCreated, asset)
}

// Get handles GET /api/assets/{id}.
func (h *AssetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	asset, err := store.GetAsset(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get asset", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get asset")
		return
	}
	if asset == nil {
		jsonError(w, http.StatusNotFound, "asset not found")
		return
	}

	jsonResponse(w, http.StatusOK, asset)
}

// Update handles PUT /api/assets/{id}.
func (h *AssetsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req assetRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.OwnedCount < 0 {
		jsonError(w, http.StatusBadRequest, "owned count cannot be negative")
		return
	}

	err := store.UpdateAsset(r.Context(), h.DB, id, model.Asset{
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		Type:         req.Type,
		OwnedCount:   req.OwnedCount,
	})
	if err != nil {
		slog.Error("failed to update asset", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update asset")
		return
	}

	asset, _ := store.GetAsset(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, asset)
}

// Delete handles DELETE /api/assets/{id}.
func (h *AssetsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteAsset(r.Context(), h.DB, r.PathValue("id")); err != nil {
		slog.Error("failed to delete asset", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete asset")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "asset deleted"})
}

// UploadImage handles PUT /api/assets/{id}/image.
func (h *AssetsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "unsupported or corrupt image")
		return
	}

	if err := store.SetAssetImage(r.Context(), h.DB, id, photo.Data, photo.MIME); err != nil {
		slog.Error("failed to save asset image", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/assets/{id}/image.
func (h *AssetsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	data, mime, err := store.GetAssetImage(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get asset image", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
