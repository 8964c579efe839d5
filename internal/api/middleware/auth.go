package middleware

import (
	"context"
	"net/http"

	"github.com/DucTam2411/blog-server/internal/domain"
	"github.com/DucTam2411/blog-server/internal/session"
)

type contextKey string

const (
	UserKey contextKey = "currentUser"
)

// CurrentUser resolves the session cookie on every request and, when it maps
// to a live user, stashes that user in the request context. Requests without
// a valid session pass through untouched.
func CurrentUser(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := sessions.Resolve(r.Context(), r); user != nil {
				ctx := context.WithValue(r.Context(), UserKey, user)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser rejects requests that did not resolve to a logged-in user.
// Must run after CurrentUser.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}
