package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/feastly/feastly/internal/models"
	"github.com/feastly/feastly/internal/service"
)

type contextKey string

const (
	authPayloadKey contextKey = "auth_payload"
)

// AuthMiddleware verifies the bearer token and passes the actor payload to
// the request context
func AuthMiddleware(ts service.TokenService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			payload, err := ts.VerifyToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), authPayloadKey, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// actorFromContext extracts the verified actor from the request context
func actorFromContext(ctx context.Context) (models.Actor, bool) {
	payload, ok := ctx.Value(authPayloadKey).(*models.TokenPayload)
	if !ok || payload == nil {
		return models.Actor{}, false
	}
	return payload.Actor(), true
}
