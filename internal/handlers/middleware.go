package handlers

import (
	"context"
	"net/http"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
	"github.com/alimkulovaskar/task-manager-backend/internal/repository"
	"github.com/alimkulovaskar/task-manager-backend/internal/session"
)

type ctxKey int

const sessionCtxKey ctxKey = iota

// SessionFromContext returns the session placed by RequireAuth.
func SessionFromContext(ctx context.Context) (session.Data, bool) {
	data, ok := ctx.Value(sessionCtxKey).(session.Data)
	return data, ok
}

// RequireAuth rejects requests without a live session and stashes the
// session data in the request context for downstream handlers.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := h.Sessions.Resolve(r)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		ctx := context.WithValue(r.Context(), sessionCtxKey, data)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole runs after RequireAuth and rejects sessions whose role
// does not match.
func (h *Handler) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, ok := SessionFromContext(r.Context())
			if !ok {
				respondError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			if data.Role != role {
				respondError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly is RequireRole fixed to the admin role.
func (h *Handler) AdminOnly(next http.Handler) http.Handler {
	return h.RequireRole(models.RoleAdmin)(next)
}

func scopeFrom(data session.Data) repository.Scope {
	return repository.Scope{
		UserID: data.UserID,
		Admin:  data.Role == models.RoleAdmin,
	}
}
