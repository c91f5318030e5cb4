package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("accessToken", 7*24*time.Hour, false)
}

func TestRequireAuth_NoToken_RedirectsToLoginWithReturnTarget(t *testing.T) {
	m := newTestManager()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run for unauthenticated requests")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	m.RequireAuth(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login?redirect=%2F", rr.Header().Get("Location"))
}

func TestRequireAuth_NoToken_PreservesNestedPath(t *testing.T) {
	m := newTestManager()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rr := httptest.NewRecorder()

	m.RequireAuth(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login?redirect=%2Fhistory", rr.Header().Get("Location"))
}

func TestRequireAuth_WithToken_PassesTokenInContext(t *testing.T) {
	m := newTestManager()
	var gotToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := TokenFromContext(r.Context())
		require.True(t, ok)
		gotToken = token
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "tok-123"})
	rr := httptest.NewRecorder()

	m.RequireAuth(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "tok-123", gotToken)
}

func TestRedirectIfAuthed_WithToken_RedirectsToLanding(t *testing.T) {
	m := newTestManager()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("login page must not render for authenticated users")
	})

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "tok-123"})
	rr := httptest.NewRecorder()

	m.RedirectIfAuthed(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/", rr.Header().Get("Location"))
}

func TestRedirectIfAuthed_WithoutToken_PassesThrough(t *testing.T) {
	m := newTestManager()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rr := httptest.NewRecorder()

	m.RedirectIfAuthed(next).ServeHTTP(rr, req)

	require.True(t, called)
}

func TestIssueAndClear_RoundTripCurrentToken(t *testing.T) {
	m := newTestManager()
	rr := httptest.NewRecorder()

	m.Issue(rr, "tok-123")

	token, ok := m.Token()
	require.True(t, ok)
	require.Equal(t, "tok-123", token)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "accessToken", cookies[0].Name)
	require.Equal(t, "tok-123", cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	require.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookies[0].MaxAge)

	rr2 := httptest.NewRecorder()
	m.Clear(rr2)

	_, ok = m.Token()
	require.False(t, ok)
	cleared := rr2.Result().Cookies()
	require.Len(t, cleared, 1)
	require.Empty(t, cleared[0].Value)
	require.Negative(t, cleared[0].MaxAge)
}

func TestExpire_ClearsBeforeRedirect(t *testing.T) {
	m := newTestManager()
	rr := httptest.NewRecorder()
	m.Issue(httptest.NewRecorder(), "tok-123")

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	m.Expire(rr, req)

	_, ok := m.Token()
	require.False(t, ok)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login?redirect=%2Fhistory", rr.Header().Get("Location"))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Empty(t, cookies[0].Value)
}
