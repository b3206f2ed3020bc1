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

type UserHandler struct {
	store serviceStore
	user  *service.UserService
}

func NewUserHandler(store serviceStore, userSvc *service.UserService) *UserHandler {
	return &UserHandler{store: store, user: userSvc}
}

// POST /users: create-if-absent by email.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string                 `json:"email"`
		Name      string                 `json:"name"`
		PhotoURL  string                 `json:"photoURL"`
		OtherInfo map[string]interface{} `json:"otherInfo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "Invalid request body", nil, err.Error())
		return
	}
	if req.Email == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "email is required", nil, nil)
		return
	}

	user, created, err := h.user.Register(r.Context(), req.Email, req.Name, req.PhotoURL, req.OtherInfo)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error creating user", nil, err.Error())
		return
	}
	if !created {
		// same shape the frontend has always keyed on
		utils.WriteJSONResponse(w, http.StatusOK, true, "user already exists", map[string]interface{}{
			"insertedId": nil,
		}, nil)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, true, "user created", map[string]interface{}{
		"insertedId": user.ID,
	}, nil)
}

// GET /users: admin only (gated in routes).
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching users", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", users, nil)
}

// GET /users/role/{email}: role, defaulting "member" when unset.
func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "missing email", nil, nil)
		return
	}
	role, err := h.store.GetRoleDefaulting(r.Context(), email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "user not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching role", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", map[string]interface{}{"role": role}, nil)
}

// PATCH /updaterole: reset the given user to the member role.
func (h *UserHandler) SetMemberRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "email is required", nil, nil)
		return
	}
	if err := h.store.SetUserRoleByEmail(r.Context(), req.Email, models.RoleMember); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error updating role", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "updated", nil, nil)
}

// GET /profile/{email}
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	u, err := h.store.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "user not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching profile", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", u, nil)
}

// PUT /profile/{email}: upsert profile fields.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	// pointers so omitted fields stay untouched
	var payload struct {
		Name      *string                 `json:"name,omitempty"`
		PhotoURL  *string                 `json:"photoURL,omitempty"`
		OtherInfo *map[string]interface{} `json:"otherInfo,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "bad request", nil, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.PhotoURL != nil {
		updates["photo_url"] = *payload.PhotoURL
	}
	if payload.OtherInfo != nil {
		updates["other_info"] = utils.DatatypesJSONFromMap(*payload.OtherInfo)
	}
	if len(updates) == 0 {
		utils.WriteJSONResponse(w, http.StatusOK, true, "nothing to update", nil, nil)
		return
	}
	if err := h.store.UpsertProfile(r.Context(), email, updates); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "update failed", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "Profile updated successfully", nil, nil)
}
