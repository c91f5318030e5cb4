package wallet

import (
	"context"
	"time"

	"exchweb/internal/adapters"
	"exchweb/internal/adapters/cache"
	"exchweb/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

const snapshotKey = "wallet"

// Snapshot is the wallet view data. Like the rate board, a failed refresh
// keeps the previous balances visible and records the error.
type Snapshot struct {
	Wallet    domain.Wallet
	FetchedAt time.Time
	LastErr   string
}

// Watcher keeps the wallet snapshot fresh. Besides its poll interval it
// listens for invalidation signals raised after a successful exchange and
// refetches immediately. Invalidation is a request for eventual re-fetch:
// consumers may see the previous balances until that fetch completes.
type Watcher struct {
	client   adapters.WalletClient
	tokens   adapters.TokenSource
	store    *cache.SnapshotStore
	interval time.Duration
	ttl      time.Duration
	signal   chan struct{}
	// -----
	sched gocron.Scheduler
}

func NewWatcher(client adapters.WalletClient, tokens adapters.TokenSource, store *cache.SnapshotStore, interval time.Duration) *Watcher {
	return &Watcher{
		client:   client,
		tokens:   tokens,
		store:    store,
		interval: interval,
		ttl:      6 * interval,
		signal:   make(chan struct{}, 1),
	}
}

func (w *Watcher) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	w.sched = scheduler

	_, err = scheduler.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func(jobCtx context.Context) { w.Refresh(jobCtx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	go func() {
		for {
			select {
			case <-ctx.Done():
				if sdErr := w.Shutdown(); sdErr != nil {
					logrus.Errorf("Wallet watcher shutdown error: %v", sdErr)
				}
				return
			case <-w.signal:
				w.Refresh(ctx)
			}
		}
	}()
	return nil
}

func (w *Watcher) Shutdown() error {
	if w.sched == nil {
		return nil
	}
	err := w.sched.Shutdown()
	w.sched = nil
	return err
}

// Invalidate marks the wallet snapshot as no longer authoritative and asks
// for an immediate refetch. Never blocks; coalesces with a pending signal.
func (w *Watcher) Invalidate() {
	select {
	case w.signal <- struct{}{}:
	default:
	}
}

func (w *Watcher) Refresh(ctx context.Context) {
	token, ok := w.tokens.Token()
	if !ok {
		return
	}

	wal, err := w.client.Wallet(ctx, token)
	if err != nil {
		logrus.WithError(err).Warn("Wallet refresh failed, keeping previous snapshot")
		snap, _ := w.Snapshot()
		snap.LastErr = domain.UserMessage(err)
		w.store.Set(snapshotKey, snap, w.ttl)
		return
	}

	w.store.Set(snapshotKey, Snapshot{Wallet: wal, FetchedAt: time.Now()}, w.ttl)
}

// Snapshot returns the current wallet data; ok is false before the first
// successful refresh.
func (w *Watcher) Snapshot() (Snapshot, bool) {
	v, ok := w.store.Get(snapshotKey)
	if !ok {
		return Snapshot{}, false
	}
	snap, ok := v.(Snapshot)
	return snap, ok
}
