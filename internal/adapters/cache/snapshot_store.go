package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// SnapshotStore holds the last fetched backend view data (latest rates,
// wallet) keyed by view name. Entries carry a TTL so that a dead poller
// degrades to an explicit loading/error state instead of serving stale data
// forever. Invalidation is a Del; the next poll cycle repopulates.
type SnapshotStore struct {
	cache *ristretto.Cache
}

func NewSnapshotStore(maxItems int64) (*SnapshotStore, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot store failed: %w", err)
	}
	return &SnapshotStore{cache: c}, nil
}

func (s *SnapshotStore) Get(key string) (any, bool) {
	return s.cache.Get(key)
}

func (s *SnapshotStore) Set(key string, v any, ttl time.Duration) {
	if ttl > 0 {
		s.cache.SetWithTTL(key, v, 1, ttl)
	} else {
		s.cache.Set(key, v, 1)
	}
	// Writers are infrequent (poll ticks); waiting makes the snapshot
	// immediately visible to readers.
	s.cache.Wait()
}

func (s *SnapshotStore) Del(key string) { s.cache.Del(key) }

func (s *SnapshotStore) Close() { s.cache.Close() }
