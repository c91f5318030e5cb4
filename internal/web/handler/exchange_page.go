package handler

import (
	"net/http"

	"exchweb/internal/exchange"
	"exchweb/internal/notify"
)

// ExchangePageResponse is everything the main screen renders in one shot:
// the form with its quote, the rate board, the wallet and active toasts.
type ExchangePageResponse struct {
	Form          exchange.State        `json:"form"`
	Rates         RatesResponse         `json:"rates"`
	Wallet        WalletResponse        `json:"wallet"`
	Notifications []notify.Notification `json:"notifications"`
}

// ExchangePage composes the main screen state. Guarded: the router only
// routes authenticated requests here.
//
//	@Summary	Main exchange screen state
//	@Tags		pages
//	@Produce	json
//	@Success	200	{object}	ExchangePageResponse
//	@Router		/ [get]
func (h *Handler) ExchangePage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ExchangePageResponse{
		Form:          h.form.State(),
		Rates:         ratesResponseOf(h.rates.Snapshot()),
		Wallet:        walletResponseOf(h.wallets.Snapshot()),
		Notifications: h.notes.Active(),
	})
}
