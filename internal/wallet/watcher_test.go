package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"exchweb/internal/adapters/cache"
	"exchweb/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWalletClient struct{ mock.Mock }

func (m *MockWalletClient) Wallet(ctx context.Context, token string) (domain.Wallet, error) {
	args := m.Called(ctx, token)
	w, _ := args.Get(0).(domain.Wallet)
	return w, args.Error(1)
}

type stubTokens struct{ token string }

func (s *stubTokens) Token() (string, bool) { return s.token, s.token != "" }

func newTestStore(t *testing.T) *cache.SnapshotStore {
	t.Helper()
	store, err := cache.NewSnapshotStore(16)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func sampleWallet(krw int64) domain.Wallet {
	return domain.Wallet{
		TotalAmount: decimal.NewFromInt(krw),
		Balances: []domain.WalletBalance{
			{Currency: domain.KRW, Amount: decimal.NewFromInt(krw)},
			{Currency: domain.USD, Amount: decimal.NewFromInt(100)},
		},
	}
}

func TestWatcher_Refresh_StoresSnapshot(t *testing.T) {
	client := new(MockWalletClient)
	w := NewWatcher(client, &stubTokens{token: "tok"}, newTestStore(t), 10*time.Second)

	client.On("Wallet", mock.Anything, "tok").Return(sampleWallet(1_000_000), nil).Once()

	w.Refresh(context.Background())

	snap, ok := w.Snapshot()
	require.True(t, ok)
	require.True(t, snap.Wallet.TotalAmount.Equal(decimal.NewFromInt(1_000_000)))
	require.Empty(t, snap.LastErr)
	client.AssertExpectations(t)
}

func TestWatcher_Refresh_NoSession_DoesNothing(t *testing.T) {
	client := new(MockWalletClient)
	w := NewWatcher(client, &stubTokens{}, newTestStore(t), 10*time.Second)

	w.Refresh(context.Background())

	_, ok := w.Snapshot()
	require.False(t, ok)
	client.AssertNotCalled(t, "Wallet", mock.Anything, mock.Anything)
}

func TestWatcher_Refresh_FailureKeepsPreviousBalances(t *testing.T) {
	client := new(MockWalletClient)
	w := NewWatcher(client, &stubTokens{token: "tok"}, newTestStore(t), 10*time.Second)

	client.On("Wallet", mock.Anything, "tok").Return(sampleWallet(1_000_000), nil).Once()
	w.Refresh(context.Background())

	client.On("Wallet", mock.Anything, "tok").Return(domain.Wallet{}, errors.New("backend down")).Once()
	w.Refresh(context.Background())

	snap, ok := w.Snapshot()
	require.True(t, ok)
	require.True(t, snap.Wallet.TotalAmount.Equal(decimal.NewFromInt(1_000_000)))
	require.Equal(t, domain.MsgTemporaryError, snap.LastErr)
	client.AssertExpectations(t)
}

func TestWatcher_Invalidate_TriggersImmediateRefetch(t *testing.T) {
	client := new(MockWalletClient)
	w := NewWatcher(client, &stubTokens{token: "tok"}, newTestStore(t), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refreshed := make(chan struct{}, 4)
	client.On("Wallet", mock.Anything, "tok").
		Run(func(mock.Arguments) { refreshed <- struct{}{} }).
		Return(sampleWallet(1_000_000), nil)

	require.NoError(t, w.Start(ctx))

	// initial immediate poll
	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected initial refresh")
	}

	w.Invalidate()

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected refetch on invalidation, independent of poll timer")
	}
}

func TestWatcher_Invalidate_NeverBlocks(t *testing.T) {
	client := new(MockWalletClient)
	w := NewWatcher(client, &stubTokens{token: "tok"}, newTestStore(t), time.Hour)

	// no consumer running; repeated signals must coalesce, not block
	for i := 0; i < 10; i++ {
		w.Invalidate()
	}
}
