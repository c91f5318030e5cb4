package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_SetAndGet(t *testing.T) {
	s, err := NewSnapshotStore(16)
	require.NoError(t, err)
	defer s.Close()

	s.Set("exchange-rates", "snapshot-1", 0)

	got, ok := s.Get("exchange-rates")
	require.True(t, ok)
	require.Equal(t, "snapshot-1", got)
}

func TestSnapshotStore_GetMissWhenEmpty(t *testing.T) {
	s, err := NewSnapshotStore(16)
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.Get("wallet")
	require.False(t, ok)
}

func TestSnapshotStore_DelEvictsOnlySpecifiedKey(t *testing.T) {
	s, err := NewSnapshotStore(16)
	require.NoError(t, err)
	defer s.Close()

	s.Set("wallet", "w", 0)
	s.Set("exchange-rates", "r", 0)

	s.Del("wallet")

	_, ok := s.Get("wallet")
	require.False(t, ok)
	got, ok := s.Get("exchange-rates")
	require.True(t, ok)
	require.Equal(t, "r", got)
}

func TestSnapshotStore_TTLExpires(t *testing.T) {
	s, err := NewSnapshotStore(16)
	require.NoError(t, err)
	defer s.Close()

	s.Set("wallet", "w", 20*time.Millisecond)

	_, ok := s.Get("wallet")
	require.True(t, ok)

	time.Sleep(60 * time.Millisecond)
	_, ok = s.Get("wallet")
	require.False(t, ok)
}
