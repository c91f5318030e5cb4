package rates

import (
	"context"
	"fmt"
	"time"

	"exchweb/internal/adapters"
	"exchweb/internal/adapters/cache"
	"exchweb/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

const snapshotKey = "exchange-rates"

// Snapshot is the rate board's view data. A failed refresh keeps the
// previously fetched rates visible and only records the error, so the board
// never flickers to empty.
type Snapshot struct {
	Rates     []domain.ExchangeRate
	FetchedAt time.Time
	LastErr   string
}

// Poller keeps the rate board snapshot fresh on a fixed interval and serves
// cache-bypassing reads for order submission.
type Poller struct {
	client   adapters.RateClient
	tokens   adapters.TokenSource
	store    *cache.SnapshotStore
	interval time.Duration
	ttl      time.Duration
	fallback []domain.Currency
	// -----
	sched gocron.Scheduler
}

func NewPoller(client adapters.RateClient, tokens adapters.TokenSource, store *cache.SnapshotStore, interval time.Duration, fallback []domain.Currency) *Poller {
	return &Poller{
		client:   client,
		tokens:   tokens,
		store:    store,
		interval: interval,
		// a snapshot outliving several missed polls is worse than an
		// explicit loading state
		ttl:      6 * interval,
		fallback: fallback,
	}
}

func (p *Poller) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	p.sched = scheduler

	_, err = scheduler.NewJob(
		gocron.DurationJob(p.interval),
		gocron.NewTask(func(jobCtx context.Context) { p.Refresh(jobCtx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := p.Shutdown(); sdErr != nil {
			logrus.Errorf("Rate poller shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (p *Poller) Shutdown() error {
	if p.sched == nil {
		return nil
	}
	err := p.sched.Shutdown()
	p.sched = nil
	return err
}

// Refresh fetches the latest rates once and updates the snapshot. Without a
// session there is nothing to poll.
func (p *Poller) Refresh(ctx context.Context) {
	token, ok := p.tokens.Token()
	if !ok {
		return
	}

	rates, err := p.client.LatestRates(ctx, token)
	if err != nil {
		logrus.WithError(err).Warn("Latest rates refresh failed, keeping previous snapshot")
		snap, _ := p.Snapshot()
		snap.LastErr = domain.UserMessage(err)
		p.store.Set(snapshotKey, snap, p.ttl)
		return
	}

	p.store.Set(snapshotKey, Snapshot{Rates: rates, FetchedAt: time.Now()}, p.ttl)
}

// Snapshot returns the current board data; ok is false before the first
// successful refresh (loading state).
func (p *Poller) Snapshot() (Snapshot, bool) {
	v, ok := p.store.Get(snapshotKey)
	if !ok {
		return Snapshot{}, false
	}
	snap, ok := v.(Snapshot)
	return snap, ok
}

// Fresh bypasses the snapshot and asks the backend directly. Order
// submission depends on this: the backend binds orders to a specific rate
// identifier and rejects superseded ones. A successful fetch also refreshes
// the board as a side effect.
func (p *Poller) Fresh(ctx context.Context) ([]domain.ExchangeRate, error) {
	token, ok := p.tokens.Token()
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rates, err := p.client.LatestRates(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fresh rate fetch failed: %w", err)
	}
	p.store.Set(snapshotKey, Snapshot{Rates: rates, FetchedAt: time.Now()}, p.ttl)
	return rates, nil
}

// SupportedCurrencies is the foreign-currency set the backend currently
// quotes, taken from the last snapshot. The configured fallback applies
// before the first successful poll.
func (p *Poller) SupportedCurrencies() []domain.Currency {
	snap, ok := p.Snapshot()
	if !ok || len(snap.Rates) == 0 {
		out := make([]domain.Currency, len(p.fallback))
		copy(out, p.fallback)
		return out
	}
	out := make([]domain.Currency, 0, len(snap.Rates))
	for _, r := range snap.Rates {
		if !r.Currency.IsKRW() {
			out = append(out, r.Currency)
		}
	}
	return out
}
