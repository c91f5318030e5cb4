package exchange

import (
	"context"
	"errors"

	"exchweb/internal/adapters"
	"exchweb/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrFreshRates marks a failure of the submit-time rate fetch itself, as
// opposed to the target currency missing from a successful fetch
// (domain.ErrRateUnavailable).
var ErrFreshRates = errors.New("fresh rate fetch failed before submission")

// FreshRateSource provides a cache-bypassing read of the latest rates.
type FreshRateSource interface {
	Fresh(ctx context.Context) ([]domain.ExchangeRate, error)
}

// Executor performs the exchange submission as an explicit two-step
// compensating procedure: fetch a fresh rate snapshot, bind the order to its
// identifier, and if — and only if — the backend reports that identifier as
// superseded, fetch once more and submit exactly once more. There is no
// generic retry beyond that.
type Executor struct {
	rates  FreshRateSource
	orders adapters.OrderClient
	tokens adapters.TokenSource
}

func NewExecutor(rates FreshRateSource, orders adapters.OrderClient, tokens adapters.TokenSource) *Executor {
	return &Executor{rates: rates, orders: orders, tokens: tokens}
}

func (e *Executor) Execute(ctx context.Context, pair domain.CurrencyPair, amount decimal.Decimal) error {
	token, ok := e.tokens.Token()
	if !ok {
		return domain.ErrUnauthorized
	}

	rateID, err := e.freshRateID(ctx, pair.Foreign())
	if err != nil {
		return err
	}

	err = e.orders.SubmitOrder(ctx, token, rateID, pair, amount)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrStaleRate) {
		return err
	}

	// The snapshot was superseded between fetch and submission. One
	// compensating round with the now-current identifier.
	logrus.WithFields(logrus.Fields{"pair": string(pair.From) + "/" + string(pair.To), "rate_id": rateID}).
		Info("Rate identifier superseded, resubmitting once with a fresh one")

	rateID, err = e.freshRateID(ctx, pair.Foreign())
	if err != nil {
		return err
	}
	return e.orders.SubmitOrder(ctx, token, rateID, pair, amount)
}

func (e *Executor) freshRateID(ctx context.Context, currency domain.Currency) (string, error) {
	rates, err := e.rates.Fresh(ctx)
	if err != nil {
		return "", errors.Join(ErrFreshRates, err)
	}
	for _, r := range rates {
		if r.Currency == currency {
			return r.RateID, nil
		}
	}
	return "", domain.ErrRateUnavailable
}
