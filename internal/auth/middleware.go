package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/fitpulse/gym-api/internal/config"
	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

type ctxKey string

const ctxClaimsKey ctxKey = "currentClaims"

// UserSource resolves the caller's stored record when a role check needs it.
// *store.Store satisfies it; tests substitute a fake.
type UserSource interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

func GetClaimsFromCtx(ctx context.Context) *Claims {
	if c, ok := ctx.Value(ctxClaimsKey).(*Claims); ok {
		return c
	}
	return nil
}

// Middleware validates the bearer token and sets claims in context.
// Holding a token does not require a user row to exist yet; role-gated routes
// resolve the row via RequireRole.
func Middleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "missing authorization", nil, nil)
				return
			}
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "invalid authorization header", nil, nil)
				return
			}
			claims, err := ParseAndValidateToken(cfg, parts[1])
			if err != nil {
				utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "invalid token", nil, nil)
				return
			}
			ctx := context.WithValue(r.Context(), ctxClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole allows multiple roles; usage: RequireRole(src, "admin", "trainer").
// The caller's role comes from their stored record, not the token, so a
// promotion or demotion takes effect on the next request.
func RequireRole(src UserSource, allowedRoles ...models.Role) func(http.Handler) http.Handler {
	set := map[models.Role]struct{}{}
	for _, r := range allowedRoles {
		set[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := GetClaimsFromCtx(r.Context())
			if c == nil {
				utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
				return
			}
			u, err := src.GetUserByEmail(r.Context(), c.Email)
			if err != nil {
				writeForbidden(w)
				return
			}
			if _, ok := set[u.Role]; !ok {
				writeForbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelfEmail allows the request through when the {emailParam} route value
// matches the caller's email, or when the caller is an admin.
func RequireSelfEmail(src UserSource, emailParam string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := GetClaimsFromCtx(r.Context())
			if c == nil {
				utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
				return
			}
			target := chi.URLParam(r, emailParam)
			if c.Email == target {
				next.ServeHTTP(w, r)
				return
			}
			if u, err := src.GetUserByEmail(r.Context(), c.Email); err == nil && u.Role == models.RoleAdmin {
				next.ServeHTTP(w, r)
				return
			}
			writeForbidden(w)
		})
	}
}

func writeForbidden(w http.ResponseWriter) {
	utils.WriteJSONResponse(w, http.StatusForbidden, false, "forbidden", nil, nil)
}
