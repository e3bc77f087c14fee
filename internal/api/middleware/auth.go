package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	UserIDHeader            = "X-User-ID"
)

// Auth requires a positive X-User-ID header and puts it into the request context
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing X-User-ID header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the user set by Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
