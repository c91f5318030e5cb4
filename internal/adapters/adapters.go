package adapters

import (
	"context"

	"exchweb/internal/domain"

	"github.com/shopspring/decimal"
)

type AuthClient interface {
	Login(ctx context.Context, email string) (string, error)
}

type RateClient interface {
	LatestRates(ctx context.Context, token string) ([]domain.ExchangeRate, error)
}

type QuoteClient interface {
	Quote(ctx context.Context, token string, pair domain.CurrencyPair, amount decimal.Decimal) (domain.Quote, error)
}

type OrderClient interface {
	SubmitOrder(ctx context.Context, token string, rateID string, pair domain.CurrencyPair, amount decimal.Decimal) error
	Orders(ctx context.Context, token string) ([]domain.ExchangeOrder, error)
}

type WalletClient interface {
	Wallet(ctx context.Context, token string) (domain.Wallet, error)
}

// TokenSource exposes the current session token to background components.
type TokenSource interface {
	Token() (string, bool)
}
