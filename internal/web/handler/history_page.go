package handler

import (
	"errors"
	"net/http"

	"exchweb/internal/domain"
	"exchweb/internal/session"
)

// HistoryPage serves the order history, fetched live on every request so a
// just-completed exchange is always in it. A stale token expires the
// session instead of rendering an error.
//
//	@Summary	Order history screen state
//	@Tags		pages
//	@Produce	json
//	@Success	200	{object}	orders.View
//	@Router		/history [get]
func (h *Handler) HistoryPage(w http.ResponseWriter, r *http.Request) {
	token, ok := session.TokenFromContext(r.Context())
	if !ok {
		session.RedirectToLogin(w, r, r.URL.Path)
		return
	}

	view, err := h.history.Load(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.sessions.Expire(w, r)
			return
		}
		writeError(w, http.StatusBadGateway, domain.UserMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, view)
}
