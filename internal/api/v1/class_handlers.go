package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/store"
	"github.com/fitpulse/gym-api/internal/utils"
)

type ClassHandler struct {
	store serviceStore
}

func NewClassHandler(store serviceStore) *ClassHandler {
	return &ClassHandler{store: store}
}

// GET /classes?page=&limit=&search=
func (h *ClassHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := store.NormalizePage(q.Get("page"), q.Get("limit"))
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPageSize) {
			utils.WriteJSONResponse(w, http.StatusBadRequest, false, "limit must be greater than 0", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid pagination", nil, err.Error())
		return
	}

	classes, total, err := h.store.ListClasses(r.Context(), page, q.Get("search"))
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching classes", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", models.PagedData{
		Data:       classes,
		Pagination: page.Pagination(total),
	}, nil)
}

// POST /add-class
func (h *ClassHandler) AddClass(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string        `json:"title"`
		CoverImg    string        `json:"coverImg"`
		Description string        `json:"description"`
		Trainers    []interface{} `json:"trainers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "Invalid request body", nil, err.Error())
		return
	}
	if req.Title == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "title is required", nil, nil)
		return
	}

	trainers, _ := json.Marshal(req.Trainers)
	c := &models.Class{
		Title:       req.Title,
		CoverImg:    req.CoverImg,
		Description: req.Description,
		Trainers:    trainers,
	}
	if err := h.store.CreateClass(r.Context(), c); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error creating class", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, true, "class created", map[string]interface{}{
		"insertedId": c.ID,
	}, nil)
}

// GET /last-six-documents: the six newest classes.
func (h *ClassHandler) LatestClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.store.LatestClasses(r.Context(), 6)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching classes", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", classes, nil)
}
