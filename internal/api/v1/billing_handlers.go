package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/utils"
)

type BillingHandler struct {
	store serviceStore
}

func NewBillingHandler(store serviceStore) *BillingHandler {
	return &BillingHandler{store: store}
}

// POST /payment: record a paid booking.
func (h *BillingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserEmail   string  `json:"userEmail"`
		TrainerName string  `json:"trainerName"`
		SlotName    string  `json:"slotName"`
		PackageName string  `json:"packageName"`
		Price       float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "Invalid request body", nil, err.Error())
		return
	}
	if req.UserEmail == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "userEmail is required", nil, nil)
		return
	}

	b := &models.Booking{
		UserEmail:   req.UserEmail,
		TrainerName: req.TrainerName,
		SlotName:    req.SlotName,
		PackageName: req.PackageName,
		Price:       req.Price,
		Paid:        true,
	}
	if err := h.store.CreateBooking(r.Context(), b); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error recording payment", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, true, "payment recorded", map[string]interface{}{
		"insertedId": b.ID,
	}, nil)
}

// GET /booked-trainer/{email}
func (h *BillingHandler) BookedTrainer(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	booking, err := h.store.GetBookingByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "No booking found for this user.", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching booking", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", booking, nil)
}

// GET /sum-of-prices
func (h *BillingHandler) SumOfPrices(w http.ResponseWriter, r *http.Request) {
	total, err := h.store.SumBookingPrices(r.Context())
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error computing sum", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", map[string]interface{}{"sumOfPrices": total}, nil)
}

// GET /balance: same aggregate under the dashboard's name for it.
func (h *BillingHandler) Balance(w http.ResponseWriter, r *http.Request) {
	total, err := h.store.SumBookingPrices(r.Context())
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error computing balance", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", map[string]interface{}{"balance": total}, nil)
}

// GET /stats
func (h *BillingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.CountSubscribers(r.Context())
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error counting subscribers", nil, err.Error())
		return
	}
	paid, err := h.store.CountPaidBookings(r.Context())
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error counting bookings", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", map[string]interface{}{
		"subscribers":  subs,
		"paidBookings": paid,
	}, nil)
}
