package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCenter_PushAndActive(t *testing.T) {
	c := NewCenter(3 * time.Second)

	id := c.Push("환전이 완료되었습니다.", SeveritySuccess)

	active := c.Active()
	require.Len(t, active, 1)
	require.Equal(t, id, active[0].ID)
	require.Equal(t, "환전이 완료되었습니다.", active[0].Message)
	require.Equal(t, SeveritySuccess, active[0].Severity)
}

func TestCenter_ActiveKeepsPushOrder(t *testing.T) {
	c := NewCenter(3 * time.Second)

	first := c.Push("first", SeverityError)
	second := c.Push("second", SeverityInfo)

	active := c.Active()
	require.Len(t, active, 2)
	require.Equal(t, first, active[0].ID)
	require.Equal(t, second, active[1].ID)
}

func TestCenter_ExpiredEntriesArePruned(t *testing.T) {
	c := NewCenter(3 * time.Second)
	base := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	c.now = func() time.Time { return base }

	c.Push("stale", SeverityError)

	c.now = func() time.Time { return base.Add(2 * time.Second) }
	fresh := c.Push("fresh", SeveritySuccess)

	c.now = func() time.Time { return base.Add(4 * time.Second) }
	active := c.Active()
	require.Len(t, active, 1)
	require.Equal(t, fresh, active[0].ID)
}

func TestCenter_Dismiss(t *testing.T) {
	c := NewCenter(time.Minute)

	keep := c.Push("keep", SeverityInfo)
	drop := c.Push("drop", SeverityError)

	c.Dismiss(drop)

	active := c.Active()
	require.Len(t, active, 1)
	require.Equal(t, keep, active[0].ID)

	// dismissing an unknown ID is a no-op
	c.Dismiss(drop)
	require.Len(t, c.Active(), 1)
}
