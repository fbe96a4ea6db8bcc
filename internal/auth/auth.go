package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stitchlink/stitchlink-backend/internal/model"
)

// ErrNotAuthenticated signals a missing, expired or unknown session.
var ErrNotAuthenticated = errors.New("not authenticated")

// SessionCookie is the cookie the frontend stores the provider token in.
const SessionCookie = "sl_session"

// Verifier resolves request credentials into a principal. All credential
// storage and password handling lives behind the external identity
// provider; this repo only ever sees opaque session tokens.
type Verifier interface {
	Verify(ctx context.Context, token string) (*model.Principal, error)
}

// RemoteVerifier calls the identity provider's user endpoint with the
// session token. Anything but a 200 is treated as unauthenticated.
type RemoteVerifier struct {
	BaseURL string
	Client  *http.Client
}

func NewRemoteVerifier(baseURL string) *RemoteVerifier {
	return &RemoteVerifier{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*model.Principal, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.BaseURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNotAuthenticated
	}

	var p model.Principal
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, ErrNotAuthenticated
	}
	return &p, nil
}

// SignOut invalidates the session at the provider. A failure here is not
// fatal for the caller: the frontend drops the token either way.
func (v *RemoteVerifier) SignOut(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.BaseURL+"/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sign-out failed with status %d", resp.StatusCode)
	}
	return nil
}

type ctxKey int

const principalKey ctxKey = 0

// WithPrincipal returns a context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom extracts the authenticated principal set by Middleware.
func PrincipalFrom(ctx context.Context) (*model.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*model.Principal)
	return p, ok
}

// TokenFromRequest pulls the session token from the Authorization header or
// the session cookie.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// Middleware gates every customer-data route: requests without a valid
// session get a 401 carrying the login entry point, the rest proceed with
// the principal in the request context.
func Middleware(v Verifier, loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := v.Verify(r.Context(), TokenFromRequest(r))
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error":     "not authenticated",
					"login_url": loginURL,
				})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}
