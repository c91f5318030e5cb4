package session

import (
	"net/http"
	"sync"
	"time"
)

// Manager owns the session: one opaque bearer token, persisted in an
// http-only cookie and mirrored in memory for background pollers. The token
// is written exactly twice in a session's lifecycle: set at login, cleared
// at logout or on an unauthorized backend response.
type Manager struct {
	cookieName string
	maxAge     time.Duration
	secure     bool

	mu    sync.Mutex
	token string
}

func NewManager(cookieName string, maxAge time.Duration, secure bool) *Manager {
	return &Manager{cookieName: cookieName, maxAge: maxAge, secure: secure}
}

// Issue stores the token as the current session and writes the cookie.
func (m *Manager) Issue(w http.ResponseWriter, token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear drops the current session and deletes the cookie. On expiry the
// clear must happen before any redirect to avoid a redirect loop.
func (m *Manager) Clear(w http.ResponseWriter) {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token returns the current session token, if any. Used by components that
// run outside a request, such as the rate poller.
func (m *Manager) Token() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != ""
}

// FromRequest reads the session token from the request cookie.
func (m *Manager) FromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
