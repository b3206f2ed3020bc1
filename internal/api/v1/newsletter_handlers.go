package v1

import (
	"encoding/json"
	"net/http"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/utils"
)

type NewsletterHandler struct {
	store serviceStore
}

func NewNewsletterHandler(store serviceStore) *NewsletterHandler {
	return &NewsletterHandler{store: store}
}

// POST /subscribe
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "Invalid request body", nil, err.Error())
		return
	}
	if req.Email == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "email is required", nil, nil)
		return
	}
	sub := &models.NewsletterSubscriber{Name: req.Name, Email: req.Email}
	if err := h.store.AddSubscriber(r.Context(), sub); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error subscribing", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, true, "subscribed", map[string]interface{}{
		"insertedId": sub.ID,
	}, nil)
}

// GET /subscribers
func (h *NewsletterHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.ListSubscribers(r.Context())
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching subscribers", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", subs, nil)
}
