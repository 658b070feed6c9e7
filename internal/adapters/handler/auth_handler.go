package handler

import (
	"net/http"
	"time"

	"github.com/sharespace/sharespace-service/internal/adapters/middleware"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type AuthHandler struct {
	denyList ports.TokenDenyList
}

func NewAuthHandler(denyList ports.TokenDenyList) *AuthHandler {
	return &AuthHandler{denyList: denyList}
}

// Logout revokes the presented token for the remainder of its lifetime.
// Runs behind the auth middleware, which stashes the raw token and its
// expiry in the request context.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := r.Context().Value(middleware.TokenKey).(string)
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	ttl := 24 * time.Hour
	if expiry, ok := r.Context().Value(middleware.ExpiryKey).(time.Time); ok && !expiry.IsZero() {
		ttl = time.Until(expiry)
	}

	if err := h.denyList.Deny(r.Context(), token, ttl); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Logged out successfully")
}
