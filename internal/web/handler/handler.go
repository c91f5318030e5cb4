package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"exchweb/internal/adapters"
	"exchweb/internal/domain"
	"exchweb/internal/exchange"
	"exchweb/internal/notify"
	"exchweb/internal/orders"
	"exchweb/internal/rates"
	"exchweb/internal/session"
	"exchweb/internal/wallet"
)

// FormController is the slice of the exchange form the web layer drives.
type FormController interface {
	State() exchange.State
	SetMode(m exchange.Mode) error
	SetCurrency(c domain.Currency) error
	SetAmount(s string)
	Submit(ctx context.Context) (exchange.State, error)
	Reset()
}

type RateBoard interface {
	Snapshot() (rates.Snapshot, bool)
}

type WalletBoard interface {
	Snapshot() (wallet.Snapshot, bool)
}

type HistoryLoader interface {
	Load(ctx context.Context, token string) (orders.View, error)
}

type Handler struct {
	sessions *session.Manager
	auth     adapters.AuthClient
	form     FormController
	rates    RateBoard
	wallets  WalletBoard
	history  HistoryLoader
	notes    *notify.Center
}

func NewHandler(sessions *session.Manager, auth adapters.AuthClient, form FormController, rateBoard RateBoard, walletBoard WalletBoard, history HistoryLoader, notes *notify.Center) *Handler {
	return &Handler{
		sessions: sessions,
		auth:     auth,
		form:     form,
		rates:    rateBoard,
		wallets:  walletBoard,
		history:  history,
		notes:    notes,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
