package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"exchweb/internal/domain"
	"exchweb/internal/exchange"
)

const (
	msgInvalidMode     = "잘못된 거래 유형입니다."
	msgInvalidCurrency = "지원하지 않는 통화입니다."
)

// FormUpdateRequest carries partial edits; only the fields present are
// applied. Amount is a pointer so clearing the input ("") is distinguishable
// from not touching it.
type FormUpdateRequest struct {
	Mode     *string `json:"mode,omitempty"`
	Currency *string `json:"currency,omitempty"`
	Amount   *string `json:"amount,omitempty"`
}

// GetForm returns the current form state including any pending quote.
//
//	@Summary	Exchange form state
//	@Tags		form
//	@Produce	json
//	@Success	200	{object}	exchange.State
//	@Router		/api/form [get]
func (h *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.form.State())
}

// UpdateForm applies field edits. A changed amount (or direction) restarts
// the quote debounce; the response reflects the state immediately after the
// edit, so the quote of a pending request is not in it yet — clients poll
// GetForm or re-render from the next update.
//
//	@Summary	Edit the exchange form
//	@Tags		form
//	@Accept		json
//	@Produce	json
//	@Param		request	body		FormUpdateRequest	true	"partial form edits"
//	@Success	200		{object}	exchange.State
//	@Failure	400		{object}	errorResponse
//	@Router		/api/form [put]
func (h *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1024)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req FormUpdateRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	if req.Mode != nil {
		if err := h.form.SetMode(exchange.Mode(*req.Mode)); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidMode)
			return
		}
	}
	if req.Currency != nil {
		if err := h.form.SetCurrency(domain.Currency(*req.Currency)); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidCurrency)
			return
		}
	}
	if req.Amount != nil {
		h.form.SetAmount(*req.Amount)
	}

	writeJSON(w, http.StatusOK, h.form.State())
}

// SubmitExchange executes the exchange for the current form state. Local
// validation problems and backend failures both come back as a 200 with the
// error inside the state; only an expired session breaks the flow, clearing
// the cookie and redirecting to login.
//
//	@Summary	Execute the exchange
//	@Tags		form
//	@Produce	json
//	@Success	200	{object}	exchange.State
//	@Router		/api/form/exchange [post]
func (h *Handler) SubmitExchange(w http.ResponseWriter, r *http.Request) {
	st, err := h.form.Submit(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.sessions.Expire(w, r)
			return
		}
		writeError(w, http.StatusBadGateway, domain.UserMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, st)
}
