package v1

import (
	"encoding/json"
	"net/http"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/utils"
)

type ReviewHandler struct {
	store serviceStore
}

func NewReviewHandler(store serviceStore) *ReviewHandler {
	return &ReviewHandler{store: store}
}

// POST /submit-feedback
func (h *ReviewHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserEmail string `json:"userEmail"`
		Feedback  string `json:"feedback"`
		Name      string `json:"name"`
		Image     string `json:"image"`
		Rating    int    `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "Invalid request body", nil, err.Error())
		return
	}
	review := &models.Review{
		UserEmail: req.UserEmail,
		Name:      req.Name,
		Image:     req.Image,
		Rating:    req.Rating,
		Review:    req.Feedback,
	}
	if err := h.store.CreateReview(r.Context(), review); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error submitting feedback", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "Feedback submitted successfully", nil, nil)
}

// GET /review/data
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.store.ListReviews(r.Context())
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching reviews", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", reviews, nil)
}
