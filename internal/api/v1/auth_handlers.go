package v1

import (
	"context"
	"encoding/json"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/fitpulse/gym-api/internal/auth"
	"github.com/fitpulse/gym-api/internal/config"
	"github.com/fitpulse/gym-api/internal/service"
	"github.com/fitpulse/gym-api/internal/utils"
)

type AuthHandler struct {
	cfg   *config.Config
	user  *service.UserService
	store serviceStore
}

func NewAuthHandler(cfg *config.Config, userSvc *service.UserService, store serviceStore) *AuthHandler {
	return &AuthHandler{cfg: cfg, user: userSvc, store: store}
}

// POST /jwt: sign the caller's identity payload into a bearer token.
// Identities seeded with a password (admins) must present it; everyone else
// gets a token for the asking, role checks happen against the store anyway.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "Invalid request body", nil, err.Error())
		return
	}
	if req.Email == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "email is required", nil, nil)
		return
	}

	if u, err := h.store.GetUserByEmail(r.Context(), req.Email); err == nil && u.PasswordHash != "" {
		ok, err := utils.ComparePasswordAndHash(req.Password, u.PasswordHash)
		if err != nil || !ok {
			utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "invalid credentials", nil, nil)
			return
		}
	}

	token, err := auth.GenerateAccessToken(h.cfg, req.Email, req.Name)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "token error", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "token issued", map[string]interface{}{
		"token":      token,
		"expires_in": int64(h.cfg.AccessTokenTTL.Seconds()),
	}, nil)
}

// POST /auth/google: exchange an authorization code, validate the id_token,
// find-or-create the user, and hand back a local bearer token.
func (h *AuthHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "bad request", nil, "missing code")
		return
	}

	ctx := context.Background()
	oauthCfg := &oauth2.Config{
		ClientID:     h.cfg.GoogleClientID,
		ClientSecret: h.cfg.GoogleClientSecret,
		RedirectURL:  h.cfg.GoogleRedirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"openid", "email", "profile"},
	}

	token, err := oauthCfg.Exchange(ctx, req.Code)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "code exchange failed", nil, err.Error())
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "id_token not present in token response", nil, nil)
		return
	}

	// audience must be our client id
	payload, err := idtoken.Validate(ctx, rawIDToken, h.cfg.GoogleClientID)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "invalid id token", nil, err.Error())
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "email not present in token", nil, nil)
		return
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	if _, _, err := h.user.Register(ctx, email, name, picture, nil); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error creating user", nil, err.Error())
		return
	}

	access, err := auth.GenerateAccessToken(h.cfg, email, name)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "token error", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "login successful", map[string]interface{}{
		"token":      access,
		"expires_in": int64(h.cfg.AccessTokenTTL.Seconds()),
	}, nil)
}
