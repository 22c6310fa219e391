package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/auth"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

// SessionMiddleware validates the bearer token and puts the session ID
// it carries into the request context. Requests without a valid token
// are rejected; wrap only the routes that need an authenticated session.
func SessionMiddleware(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				respondError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			sessionID, err := tokens.Parse(tokenString)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func getSessionIDFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}
