package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"exchweb/internal/domain"
	"exchweb/internal/session"

	"github.com/sirupsen/logrus"
)

const (
	msgEmailRequired = "이메일을 입력해주세요."
	msgEmailInvalid  = "올바른 이메일 형식이 아닙니다."
)

type LoginRequest struct {
	Email    string `json:"email"`
	Redirect string `json:"redirect"`
}

type LoginResponse struct {
	Redirect string `json:"redirect"`
}

// LoginPage serves the login entry point state: the sanitized path the
// client should return to after a successful login. Already authenticated
// users never get here; the router redirects them to the landing page first.
//
//	@Summary	Login entry point
//	@Tags		session
//	@Produce	json
//	@Param		redirect	query		string	false	"return path after login"
//	@Success	200			{object}	LoginResponse
//	@Router		/login [get]
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LoginResponse{
		Redirect: sanitizeRedirect(r.URL.Query().Get("redirect")),
	})
}

// Login exchanges an email for a backend token and issues the session
// cookie. On success the response carries the path the client should
// navigate to: the guarded page the user originally asked for, or the
// landing page.
//
//	@Summary	Log in by email
//	@Tags		session
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"login payload"
//	@Success	200		{object}	LoginResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	502		{object}	errorResponse
//	@Router		/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1024)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req LoginRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgEmailRequired)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		writeError(w, http.StatusBadRequest, msgEmailRequired)
		return
	}
	if !validEmail(email) {
		writeError(w, http.StatusBadRequest, msgEmailInvalid)
		return
	}

	token, err := h.auth.Login(r.Context(), email)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Login"}).Error("Login against backend failed")
		writeError(w, loginStatus(err), domain.UserMessage(err))
		return
	}

	h.sessions.Issue(w, token)
	writeJSON(w, http.StatusOK, LoginResponse{
		Redirect: sanitizeRedirect(req.Redirect),
	})
}

// Logout drops the session and resets the form so nothing leaks into the
// next login.
//
//	@Summary	Log out
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	LoginResponse
//	@Router		/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.form.Reset()
	writeJSON(w, http.StatusOK, LoginResponse{Redirect: session.LoginPath})
}

func loginStatus(err error) int {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case domain.CodeBadRequest, domain.CodeValidation:
			return http.StatusBadRequest
		case domain.CodeUnauthorized:
			return http.StatusUnauthorized
		}
	}
	return http.StatusBadGateway
}

// validEmail is a shape check, not RFC validation; the backend decides
// whether the account exists.
func validEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return !strings.ContainsAny(s, " \t")
}

// sanitizeRedirect confines the post-login target to an internal path.
func sanitizeRedirect(s string) string {
	if s == "" || !strings.HasPrefix(s, "/") || strings.HasPrefix(s, "//") {
		return session.LandingPath
	}
	return s
}
