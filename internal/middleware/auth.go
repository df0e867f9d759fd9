package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/yogi-fashion/embroidery-service/internal/api"
)

// contextKey is a type for context keys
type contextKey string

const UserIDKey contextKey = "userID"

// TokenValidator resolves a session token to the user it was issued for.
type TokenValidator interface {
	UserIDFromToken(token string) (uuid.UUID, error)
}

// Auth middleware for authenticating requests. The token is read from the
// Authorization header, or from the "token" query parameter for clients
// that cannot set headers (browsers opening a websocket).
func Auth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				api.RespondJSON(w, http.StatusUnauthorized, api.APIError{Detail: "authorization required"})
				return
			}

			userID, err := tokens.UserIDFromToken(tokenString)
			if err != nil {
				api.RespondJSON(w, http.StatusUnauthorized, api.APIError{Detail: "invalid or expired token"})
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}

	if token := r.URL.Query().Get("token"); token != "" {
		return token, true
	}

	return "", false
}

// GetUserID returns the authenticated user's id
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}
