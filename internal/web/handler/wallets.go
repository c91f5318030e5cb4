package handler

import (
	"net/http"
	"time"

	"exchweb/internal/domain"
	"exchweb/internal/format"
	"exchweb/internal/wallet"
)

type WalletItem struct {
	Currency domain.Currency `json:"currency"`
	Amount   string          `json:"amount"`
}

type WalletResponse struct {
	Status      string       `json:"status"`
	TotalAmount string       `json:"totalAmount,omitempty"`
	Balances    []WalletItem `json:"balances"`
	Error       string       `json:"error,omitempty"`
	FetchedAt   time.Time    `json:"fetchedAt,omitempty"`
}

// Wallets serves the wallet snapshot. After an exchange the snapshot is
// invalidated, not atomically updated: this endpoint may briefly return the
// previous balances until the refetch lands.
//
//	@Summary	Wallet balances
//	@Tags		wallet
//	@Produce	json
//	@Success	200	{object}	WalletResponse
//	@Router		/api/wallets [get]
func (h *Handler) Wallets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, walletResponseOf(h.wallets.Snapshot()))
}

func walletResponseOf(snap wallet.Snapshot, ok bool) WalletResponse {
	if !ok {
		return WalletResponse{Status: "loading", Balances: []WalletItem{}, Error: snap.LastErr}
	}

	items := make([]WalletItem, 0, len(snap.Wallet.Balances))
	for _, b := range snap.Wallet.Balances {
		amount := format.Amount(b.Amount)
		if b.Currency.IsKRW() {
			amount = format.KRW(b.Amount)
		}
		items = append(items, WalletItem{Currency: b.Currency, Amount: amount})
	}

	return WalletResponse{
		Status:      "ok",
		TotalAmount: format.KRW(snap.Wallet.TotalAmount),
		Balances:    items,
		Error:       snap.LastErr,
		FetchedAt:   snap.FetchedAt,
	}
}
