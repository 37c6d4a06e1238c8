package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"johuart/internal/models"
	"johuart/internal/services"
)

// ImageUploader stores an uploaded image and returns its public URL.
type ImageUploader interface {
	UploadImage(file []byte, folder, fileName, contentType string) (string, error)
}

type ArtHandler struct {
	Service *services.ArtService
	Storage ImageUploader
}

func (h *ArtHandler) CreateArt(w http.ResponseWriter, r *http.Request) {
	var art models.Art
	if err := json.NewDecoder(r.Body).Decode(&art); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	createdArt, err := h.Service.CreateArt(r.Context(), art)
	if err != nil {
		if errors.Is(err, models.ErrCategoryRequired) {
			writeError(w, http.StatusBadRequest, "subcategory_name is required")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, createdArt)
}

// GetArts lists arts, optionally filtered by owner email and customization.
// An email filter is only served to the caller it belongs to; the ownership
// check runs before any repository access.
func (h *ArtHandler) GetArts(w http.ResponseWriter, r *http.Request) {
	filter := models.ArtFilter{
		UserEmail:     r.URL.Query().Get("email"),
		Customization: r.URL.Query().Get("customization"),
	}

	if filter.UserEmail != "" {
		if err := authorizeOwner(filter.UserEmail, identityFromContext(r)); err != nil {
			writeError(w, http.StatusForbidden, "forbidden: arts are scoped to the signed-in user")
			return
		}
	}

	arts, err := h.Service.GetArts(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, arts)
}

func (h *ArtHandler) GetArtByID(w http.ResponseWriter, r *http.Request) {
	id, err := artID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid art ID")
		return
	}

	art, err := h.Service.GetArtByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrArtNotFound) {
			writeError(w, http.StatusNotFound, "art not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, art)
}

func (h *ArtHandler) GetArtsBySubcategory(w http.ResponseWriter, r *http.Request) {
	subcategoryName := getParam(r, "subcategory_name")
	if subcategoryName == "" {
		writeError(w, http.StatusBadRequest, "missing subcategory name")
		return
	}

	arts, err := h.Service.GetArtsBySubcategory(r.Context(), subcategoryName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, arts)
}

func (h *ArtHandler) UpdateArt(w http.ResponseWriter, r *http.Request) {
	id, err := artID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid art ID")
		return
	}

	var upd models.ArtUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updatedArt, err := h.Service.UpdateArt(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, models.ErrArtNotFound) {
			writeError(w, http.StatusNotFound, "art not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updatedArt)
}

func (h *ArtHandler) DeleteArt(w http.ResponseWriter, r *http.Request) {
	id, err := artID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid art ID")
		return
	}

	if err := h.Service.DeleteArt(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrArtNotFound) {
			writeError(w, http.StatusNotFound, "art not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadArtImage accepts a multipart "image" file, stores it in the object
// bucket, and writes the resulting URL onto the art.
func (h *ArtHandler) UploadArtImage(w http.ResponseWriter, r *http.Request) {
	id, err := artID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid art ID")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read image")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	imageURL, err := h.Storage.UploadImage(data, "arts", header.Filename, contentType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.Service.SetArtImage(r.Context(), id, imageURL); err != nil {
		if errors.Is(err, models.ErrArtNotFound) {
			writeError(w, http.StatusNotFound, "art not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"image": imageURL})
}

func artID(r *http.Request) (int64, error) {
	idStr := getParam(r, "id")
	if idStr == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(idStr, 10, 64)
}
