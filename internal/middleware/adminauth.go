// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"net/http"

	"github.com/olehsv/videolanding/internal/auth"
)

// AdminAuth gates catalog-mutation endpoints behind the admin session.
//
// It reads the session cookie and validates the token against the session
// store. Requests without a live session get 401; the back-office page
// reacts by redirecting to its login surface.
func AdminAuth(sessions *auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.CookieName)
			if err != nil || !sessions.Valid(cookie.Value) {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
