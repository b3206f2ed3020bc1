package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/service"
	"github.com/fitpulse/gym-api/internal/utils"
)

type TrainerHandler struct {
	store   serviceStore
	trainer *service.TrainerService
}

func NewTrainerHandler(store serviceStore, trainerSvc *service.TrainerService) *TrainerHandler {
	return &TrainerHandler{store: store, trainer: trainerSvc}
}

// POST /apply-trainer
func (h *TrainerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName      string   `json:"fullName"`
		Email         string   `json:"email"`
		Age           int      `json:"age"`
		ProfileImage  string   `json:"profileImage"`
		Skills        []string `json:"skills"`
		AvailableDays []string `json:"availableDays"`
		AvailableTime string   `json:"availableTime"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "Invalid request body", nil, err.Error())
		return
	}
	if req.Email == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "email is required", nil, nil)
		return
	}

	a := &models.TrainerApplication{
		FullName:      req.FullName,
		Email:         req.Email,
		Age:           req.Age,
		ProfileImage:  req.ProfileImage,
		Skills:        utils.DatatypesJSONFromStrings(req.Skills),
		AvailableDays: utils.DatatypesJSONFromStrings(req.AvailableDays),
		AvailableTime: req.AvailableTime,
		Status:        models.StatusPending,
	}
	if err := h.store.CreateApplication(r.Context(), a); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "There was an error submitting the application.", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "application submitted", map[string]interface{}{
		"insertedId": a.ID,
	}, nil)
}

// GET /get-trainers: applications awaiting review.
func (h *TrainerHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	apps, err := h.store.ListApplicationsByStatus(r.Context(), models.StatusPending)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching applications", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", apps, nil)
}

// GET /applied-trainers/{id}
func (h *TrainerHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	a, err := h.store.GetApplicationByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "Trainer not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching application", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", a, nil)
}

// PUT /update-trainer-status/{id}: write the review decision onto the
// application, and on confirmation promote the applicant to trainer.
func (h *TrainerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Status   models.ApplicationStatus `json:"status"`
		Feedback string                   `json:"feedback"`
		Email    string                   `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "Invalid request body", nil, err.Error())
		return
	}

	promoteErr, err := h.trainer.UpdateStatus(r.Context(), id, req.Status, req.Feedback, req.Email)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidStatus) {
			utils.WriteJSONResponse(w, http.StatusBadRequest, false, "status must be pending, confirmed or rejected", nil, nil)
			return
		}
		if errors.Is(err, utils.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "Trainer not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error updating trainer status", nil, err.Error())
		return
	}

	// the application write decides the outcome; a failed role write is
	// surfaced as a warning, never as a failure
	var warning interface{}
	if promoteErr != nil {
		warning = "role promotion pending: " + promoteErr.Error()
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "Trainer status updated successfully", nil, warning)
}

// DELETE /applied-trainers/{id}
func (h *TrainerHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteApplication(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "Trainer not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error deleting application", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "application deleted", nil, nil)
}

// GET /activity-log: applications still pending or already rejected.
func (h *TrainerHandler) ActivityLog(w http.ResponseWriter, r *http.Request) {
	apps, err := h.store.ListApplicationsByStatus(r.Context(), models.StatusPending, models.StatusRejected)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching activity log", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", apps, nil)
}

// GET /trainers: the public trainer directory. Each trainer is joined with
// the confirmed application they were promoted from, when one exists.
func (h *TrainerHandler) Directory(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.store.ListUsersByRole(r.Context(), models.RoleTrainer)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching trainers", nil, err.Error())
		return
	}
	apps, err := h.store.ListApplicationsByStatus(r.Context(), models.StatusConfirmed)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching applications", nil, err.Error())
		return
	}
	byEmail := make(map[string]*models.TrainerApplication, len(apps))
	for _, a := range apps {
		byEmail[a.Email] = a
	}

	type entry struct {
		*models.User
		Application *models.TrainerApplication `json:"application,omitempty"`
	}
	out := make([]entry, 0, len(trainers))
	for _, t := range trainers {
		out = append(out, entry{User: t, Application: byEmail[t.Email]})
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", out, nil)
}

// GET /trainers/{name}
func (h *TrainerHandler) GetTrainerByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	u, err := h.store.GetTrainerByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "Trainer not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching trainer", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", u, nil)
}

// GET /search-by-photo?photoUrl=
func (h *TrainerHandler) SearchByPhoto(w http.ResponseWriter, r *http.Request) {
	photoURL := r.URL.Query().Get("photoUrl")
	if photoURL == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "photoUrl is required", nil, nil)
		return
	}
	u, err := h.store.GetTrainerByPhotoURL(r.Context(), photoURL)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "Trainer not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error searching trainer", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", u, nil)
}

// GET /trainer: users holding the trainer role.
func (h *TrainerHandler) ListTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.store.ListUsersByRole(r.Context(), models.RoleTrainer)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching trainers", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", trainers, nil)
}

// GET /trainer-classes-slots?title=&slot=
func (h *TrainerHandler) ClassesAndSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	classes, err := h.store.ListClassesByTitle(r.Context(), q.Get("title"))
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching classes", nil, err.Error())
		return
	}
	slots, err := h.store.ListSlotsByName(r.Context(), q.Get("slot"))
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching slots", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", map[string]interface{}{
		"classes": classes,
		"slots":   slots,
	}, nil)
}

// POST /slots
func (h *TrainerHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TrainerEmail string `json:"trainerEmail"`
		SlotName     string `json:"slotName"`
		Day          string `json:"day"`
		Time         string `json:"time"`
		ClassName    string `json:"className"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "Invalid request body", nil, err.Error())
		return
	}
	if req.TrainerEmail == "" || req.SlotName == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "trainerEmail and slotName are required", nil, nil)
		return
	}
	slot := &models.Slot{
		TrainerEmail: req.TrainerEmail,
		SlotName:     req.SlotName,
		Day:          req.Day,
		Time:         req.Time,
		ClassName:    req.ClassName,
	}
	if err := h.store.CreateSlot(r.Context(), slot); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error creating slot", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, true, "slot created", slot, nil)
}

// GET /slots?email=
func (h *TrainerHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.store.ListSlots(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching slots", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", slots, nil)
}

// DELETE /slots/{id}
func (h *TrainerHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteSlot(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "slot not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error deleting slot", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "slot deleted", nil, nil)
}
