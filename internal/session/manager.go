package session

import (
	"context"
	"net/http"

	"github.com/DucTam2411/blog-server/internal/domain"
	"github.com/DucTam2411/blog-server/internal/repository"
	"github.com/google/uuid"
)

const CookieName = "blog_session"

// Manager owns the session cookie lifecycle: issue on login/register, resolve
// on every request, destroy on logout. There is no server-side session table;
// the signed cookie is the full session state.
type Manager struct {
	codec  *Codec
	users  repository.UserRepository
	secure bool
}

func NewManager(codec *Codec, users repository.UserRepository, secure bool) *Manager {
	return &Manager{
		codec:  codec,
		users:  users,
		secure: secure,
	}
}

// Issue sets the session cookie for userID on the response.
func (m *Manager) Issue(w http.ResponseWriter, userID uuid.UUID) error {
	value, err := m.codec.Encode(userID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.codec.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Resolve turns the request's session cookie into the logged-in user, or nil.
// A missing cookie, a tampered or expired token, a deleted account and a
// transient store failure all degrade to "not logged in"; Resolve never fails.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) *domain.User {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	userID, err := m.codec.Decode(cookie.Value)
	if err != nil {
		return nil
	}

	user, err := m.users.GetByID(ctx, userID)
	if err != nil {
		return nil
	}
	return user
}

// Destroy clears the session cookie. Safe to call without an existing session.
func (m *Manager) Destroy(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
