package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/alimkulovaskar/task-manager-backend/internal/config"
	"github.com/alimkulovaskar/task-manager-backend/internal/models"
)

// Manager issues and resolves cookie-carried sessions.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(store Store, cfg config.SessionConfig) *Manager {
	return &Manager{
		store:      store,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.Secure,
	}
}

// Create stores a fresh session for the user and attaches its id to the
// response. The lifetime is absolute from issuance, not sliding.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, user *models.User) error {
	id := uuid.NewString()
	data := Data{
		UserID:    user.ID.Hex(),
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.store.Save(ctx, id, data, m.ttl); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Resolve returns the session data for the request cookie, or ErrNoSession.
func (m *Manager) Resolve(r *http.Request) (Data, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return Data{}, ErrNoSession
	}

	data, err := m.store.Get(r.Context(), cookie.Value)
	if err != nil {
		return Data{}, err
	}
	if time.Now().After(data.ExpiresAt) {
		_ = m.store.Delete(r.Context(), cookie.Value)
		return Data{}, ErrNoSession
	}
	return data, nil
}

// Destroy removes the server-side state and expires the cookie. Safe to
// call without a live session.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	if cookie, err := r.Cookie(m.cookieName); err == nil {
		if err := m.store.Delete(r.Context(), cookie.Value); err != nil {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
