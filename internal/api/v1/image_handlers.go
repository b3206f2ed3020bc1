package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitpulse/gym-api/internal/config"
	"github.com/fitpulse/gym-api/internal/utils"
)

type ImageHandler struct {
	store   serviceStore
	storage utils.ObjectStorage
	cfg     *config.Config
}

// NewImageHandler picks R2 when configured, otherwise local disk.
func NewImageHandler(store serviceStore, cfg *config.Config) *ImageHandler {
	var storage utils.ObjectStorage
	if cfg.R2Endpoint != "" {
		storage = utils.NewR2Storage(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, cfg.R2Endpoint, cfg.R2BucketName)
	} else {
		storage = utils.NewFileStorage(cfg.UploadDir)
	}
	return &ImageHandler{store: store, storage: storage, cfg: cfg}
}

// POST /classes/{id}/cover
func (h *ImageHandler) UploadClassCover(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := strconv.Atoi(id); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid class id", nil, nil)
		return
	}
	ctx := r.Context()

	// Max 5MB
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "file too large or invalid form", nil, err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "missing file field", nil, err.Error())
		return
	}
	defer file.Close()

	class, err := h.store.GetClassByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "class not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching class", nil, err.Error())
		return
	}
	if class.CoverImg != "" {
		_ = h.storage.DeleteFile(class.CoverImg)
	}

	objectKey, err := h.storage.SaveFile("class-covers", header.Filename, file)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "failed to save file", nil, err.Error())
		return
	}
	if err := h.store.UpdateClassFields(ctx, id, map[string]interface{}{
		"cover_img": objectKey,
	}); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "failed to update class", nil, err.Error())
		return
	}

	fullURL := fmt.Sprintf("%s/uploads/%s", h.cfg.UploadBaseURL, objectKey)
	// R2 objects are private; hand back a presigned URL instead
	if rs, ok := h.storage.(*utils.R2Storage); ok {
		if presigned, err := rs.PresignGetObject(objectKey, time.Hour); err == nil {
			fullURL = presigned
		}
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "cover uploaded", map[string]string{
		"key": objectKey,
		"url": fullURL,
	}, nil)
}
