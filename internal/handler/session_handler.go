package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/stitchlink/stitchlink-backend/internal/auth"
)

// SessionHandler exposes the thin session surface: who am I, and sign out.
// Credential handling itself lives entirely at the identity provider.
type SessionHandler struct {
	Verifier *auth.RemoteVerifier
	LoginURL string
}

// Me returns the authenticated principal. Runs behind the auth middleware.
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// SignOut invalidates the session at the provider and hands back the login
// entry point. Provider failures are logged but not surfaced: the client
// drops its token regardless.
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if token := auth.TokenFromRequest(r); token != "" {
		if err := h.Verifier.SignOut(r.Context(), token); err != nil {
			log.Println("⚠️ sign-out against auth provider failed:", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"login_url": h.LoginURL})
}
