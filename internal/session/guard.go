package session

import (
	"context"
	"net/http"
	"net/url"
)

type tokenCtxKey struct{}

const (
	LoginPath   = "/login"
	LandingPath = "/"
)

// RequireAuth guards protected routes: requests without a session token are
// redirected to the login entry point with the original path preserved as
// the redirect target. Otherwise the token is placed into the request
// context for handlers.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := m.FromRequest(r)
		if !ok {
			RedirectToLogin(w, r, r.URL.Path)
			return
		}
		ctx := context.WithValue(r.Context(), tokenCtxKey{}, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RedirectIfAuthed sends an already logged-in user from the login entry
// point to the default landing path.
func (m *Manager) RedirectIfAuthed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.FromRequest(r); ok {
			http.Redirect(w, r, LandingPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Expire handles an unauthorized backend response: clear first, then
// redirect to login with the original path as return target.
func (m *Manager) Expire(w http.ResponseWriter, r *http.Request) {
	m.Clear(w)
	RedirectToLogin(w, r, r.URL.Path)
}

func RedirectToLogin(w http.ResponseWriter, r *http.Request, returnTo string) {
	http.Redirect(w, r, LoginPath+"?redirect="+url.QueryEscape(returnTo), http.StatusFound)
}

// TokenFromContext returns the session token placed by RequireAuth.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenCtxKey{}).(string)
	return token, ok && token != ""
}
