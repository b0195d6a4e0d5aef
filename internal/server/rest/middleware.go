package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// requireAuth is the identity gate for task routes. A missing header is a
// 401; anything that fails verification, including a header with no token
// segment, is a 403. The verified user ID is placed in the request context
// and is the only identity handlers ever see.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "Missing token"})
			return
		}

		// take whatever follows the scheme; "Bearer" alone leaves the
		// token empty and verification fails the same way as for a
		// corrupt token
		var token string
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
			token = parts[1]
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeJSON(w, http.StatusForbidden, messageResponse{Message: "Invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext returns the identity attached by requireAuth.
func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
