package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitpulse/gym-api/internal/config"
	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/utils"
)

type fakeUserSource struct {
	users map[string]*models.User
}

func (f *fakeUserSource) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, utils.ErrNotFound
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func bearerFor(t *testing.T, cfg *config.Config, email string) string {
	t.Helper()
	tok, err := GenerateAccessToken(cfg, email, "")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return "Bearer " + tok
}

func TestMiddlewareRejectsMissingOrBadToken(t *testing.T) {
	cfg := testConfig(time.Hour)
	h := Middleware(cfg)(http.HandlerFunc(okHandler))

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer nope"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestMiddlewarePassesClaims(t *testing.T) {
	cfg := testConfig(time.Hour)
	var seen *Claims
	h := Middleware(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetClaimsFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearerFor(t, cfg, "jane@example.com"))
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen == nil || seen.Email != "jane@example.com" {
		t.Fatalf("claims = %+v", seen)
	}
}

func TestRequireRole(t *testing.T) {
	cfg := testConfig(time.Hour)
	src := &fakeUserSource{users: map[string]*models.User{
		"admin@example.com":  {Email: "admin@example.com", Role: models.RoleAdmin},
		"member@example.com": {Email: "member@example.com", Role: models.RoleMember},
	}}
	h := Middleware(cfg)(RequireRole(src, models.RoleAdmin)(http.HandlerFunc(okHandler)))

	cases := []struct {
		name  string
		email string
		want  int
	}{
		{"admin allowed", "admin@example.com", http.StatusOK},
		{"member forbidden", "member@example.com", http.StatusForbidden},
		{"unknown identity forbidden", "ghost@example.com", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", bearerFor(t, cfg, tc.email))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestRequireSelfEmail(t *testing.T) {
	cfg := testConfig(time.Hour)
	src := &fakeUserSource{users: map[string]*models.User{
		"admin@example.com":  {Email: "admin@example.com", Role: models.RoleAdmin},
		"member@example.com": {Email: "member@example.com", Role: models.RoleMember},
	}}

	r := chi.NewRouter()
	r.With(Middleware(cfg), RequireSelfEmail(src, "email")).
		Get("/users/role/{email}", okHandler)

	cases := []struct {
		name   string
		caller string
		target string
		want   int
	}{
		{"self allowed", "member@example.com", "member@example.com", http.StatusOK},
		{"other member forbidden", "member@example.com", "admin@example.com", http.StatusForbidden},
		{"admin may read anyone", "admin@example.com", "member@example.com", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/role/"+tc.target, nil)
			req.Header.Set("Authorization", bearerFor(t, cfg, tc.caller))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
