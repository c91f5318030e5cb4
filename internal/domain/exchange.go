package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one entry of the backend's latest-rates snapshot. RateID
// references the snapshot the backend will bind an order to; orders carrying
// a superseded RateID are rejected with CodeRateExpired.
type ExchangeRate struct {
	RateID    string    `json:"rateId"`
	Currency  Currency  `json:"currency"`
	Rate      float64   `json:"rate"`
	ChangePct float64   `json:"changePct"`
	Timestamp time.Time `json:"timestamp"`
}

// Quote is an ephemeral, non-binding computation returned by the backend for
// a (from, to, amount) triple. It is discarded whenever any input changes.
type Quote struct {
	FromCurrency Currency        `json:"fromCurrency"`
	ToCurrency   Currency        `json:"toCurrency"`
	ForexAmount  decimal.Decimal `json:"forexAmount"`
	KRWAmount    decimal.Decimal `json:"krwAmount"`
	AppliedRate  float64         `json:"appliedRate"`
}

type WalletBalance struct {
	Currency Currency        `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

type Wallet struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Balances    []WalletBalance `json:"balances"`
}

// Balance returns the wallet's balance for the given currency, zero when the
// wallet holds no record for it.
func (w Wallet) Balance(c Currency) decimal.Decimal {
	for _, b := range w.Balances {
		if b.Currency == c {
			return b.Amount
		}
	}
	return decimal.Zero
}

// ExchangeOrder is a read projection of a completed server-side transaction.
// The client never creates or mutates one directly.
type ExchangeOrder struct {
	OrderID      int64           `json:"orderId"`
	FromCurrency Currency        `json:"fromCurrency"`
	ToCurrency   Currency        `json:"toCurrency"`
	FromAmount   decimal.Decimal `json:"fromAmount"`
	ToAmount     decimal.Decimal `json:"toAmount"`
	AppliedRate  float64         `json:"appliedRate"`
	OrderedAt    time.Time       `json:"orderedAt"`
}
