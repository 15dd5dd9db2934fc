package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrflo/hrflo-backend/internal/domain/auth"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/handler/http/response"
	"github.com/hrflo/hrflo-backend/internal/pkg/jwt"
)

type actorContextKey struct{}

// AuthRequired accepts only valid access tokens and stores the caller in the request context.
// It must run after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, _ := claims["type"].(string)
		if tokenType != jwt.TokenTypeAccess {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || !user.Role(role).IsValid() {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), actorContextKey{}, user.Actor{ID: userID, Role: user.Role(role)})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext returns the caller stored by AuthRequired.
func ActorFromContext(ctx context.Context) (user.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(user.Actor)
	return actor, ok
}

// WithActor stores actor in ctx. Used by tests that bypass token verification.
func WithActor(ctx context.Context, actor user.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}
