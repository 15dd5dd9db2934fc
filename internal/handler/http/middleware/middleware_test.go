package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(t *testing.T, svc jwt.Service) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(svc.JWTAuth()))
	r.Use(AuthRequired)
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(actor.ID + "|" + string(actor.Role)))
	})
	r.With(RequirePermission(user.PermissionDashboardView)).Get("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func do(h http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	svc, err := jwt.NewJWTService("middleware-secret", "1h", "24h", false)
	require.NoError(t, err)
	h := newProtectedRouter(t, svc)

	access, _, err := svc.GenerateAccessToken("u-1", "u@example.com", user.RoleManager)
	require.NoError(t, err)
	refresh, _, err := svc.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	rec := do(h, "/me", access)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1|Manager", rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, do(h, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(h, "/me", refresh).Code, "refresh tokens are not access tokens")
	assert.Equal(t, http.StatusUnauthorized, do(h, "/me", access+"x").Code)
}

func TestRequirePermission(t *testing.T) {
	svc, err := jwt.NewJWTService("middleware-secret", "1h", "24h", false)
	require.NoError(t, err)
	h := newProtectedRouter(t, svc)

	tests := []struct {
		role user.Role
		want int
	}{
		{user.RoleEmployee, http.StatusForbidden},
		{user.RoleManager, http.StatusNoContent},
		{user.RoleHRManager, http.StatusNoContent},
	}
	for _, tt := range tests {
		token, _, err := svc.GenerateAccessToken("u-2", "u2@example.com", tt.role)
		require.NoError(t, err)
		assert.Equal(t, tt.want, do(h, "/dashboard", token).Code, tt.role)
	}
}
