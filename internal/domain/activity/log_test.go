package activity_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dataminder/dataminder/internal/domain/activity"
	"github.com/dataminder/dataminder/internal/kv"
	"github.com/stretchr/testify/require"
)

// brokenStore fails every substrate operation with the configured errors.
type brokenStore struct {
	loadErr error
	saveErr error
}

func (s *brokenStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	if s.loadErr != nil {
		return false, s.loadErr
	}
	return false, nil
}

func (s *brokenStore) Save(ctx context.Context, key string, value any) error { return s.saveErr }

func (s *brokenStore) Delete(ctx context.Context, key string) error { return nil }

func (s *brokenStore) Close() error { return nil }

func TestLog_AddAndRecent(t *testing.T) {
	log := activity.NewLog(kv.NewMemory(), nil)
	ctx := context.Background()

	log.Add(ctx, "p1", "Notebook created", "Q1")

	recent := log.Recent(ctx, "p1", 1)
	require.Len(t, recent, 1)
	require.Equal(t, "Notebook created", recent[0].Action)
	require.Equal(t, "Q1", recent[0].Item)
	require.Equal(t, "Just now", recent[0].RelativeTime)
}

func TestLog_BoundedAtFifty(t *testing.T) {
	log := activity.NewLog(kv.NewMemory(), nil)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		log.Add(ctx, "p1", "Action", fmt.Sprintf("item-%d", i))
	}

	recent := log.Recent(ctx, "p1", 100)
	require.Len(t, recent, 50)
	// Most recently appended first; the oldest ten were evicted.
	require.Equal(t, "item-59", recent[0].Item)
	require.Equal(t, "item-10", recent[49].Item)
}

func TestLog_RecentCountAndIsolation(t *testing.T) {
	log := activity.NewLog(kv.NewMemory(), nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		log.Add(ctx, "p1", "Action", fmt.Sprintf("item-%d", i))
	}
	log.Add(ctx, "p2", "Other", "elsewhere")

	recent := log.Recent(ctx, "p1", 3)
	require.Len(t, recent, 3)
	require.Equal(t, "item-4", recent[0].Item)

	other := log.Recent(ctx, "p2", 10)
	require.Len(t, other, 1)
	require.Equal(t, "elsewhere", other[0].Item)
}

func TestLog_Purge(t *testing.T) {
	log := activity.NewLog(kv.NewMemory(), nil)
	ctx := context.Background()

	log.Add(ctx, "p1", "Action", "item")
	require.NoError(t, log.Purge(ctx, "p1"))
	require.Empty(t, log.Recent(ctx, "p1", 10))
}

func TestLog_ConcurrentAddsRetainEveryEntry(t *testing.T) {
	log := activity.NewLog(kv.NewMemory(), nil)
	ctx := context.Background()

	const adds = 40
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			log.Add(ctx, "p1", "Action", fmt.Sprintf("item-%d", i))
		}(i)
	}
	wg.Wait()

	require.Len(t, log.Recent(ctx, "p1", 100), adds)
}

func TestLog_AddToleratesSaveFailure(t *testing.T) {
	log := activity.NewLog(&brokenStore{saveErr: errors.New("disk full")}, nil)
	ctx := context.Background()

	log.Add(ctx, "p1", "Action", "item")
}

func TestLog_RecentStartsEmptyOnLoadFailure(t *testing.T) {
	log := activity.NewLog(&brokenStore{loadErr: errors.New("corrupt value")}, nil)
	ctx := context.Background()

	require.Empty(t, log.Recent(ctx, "p1", 10))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "Just now"},
		{"one minute", now.Add(-1 * time.Minute), "1 minute ago"},
		{"minutes", now.Add(-45 * time.Minute), "45 minutes ago"},
		{"one hour", now.Add(-90 * time.Minute), "1 hour ago"},
		{"hours", now.Add(-5 * time.Hour), "5 hours ago"},
		{"one day", now.Add(-25 * time.Hour), "1 day ago"},
		{"days", now.Add(-72 * time.Hour), "3 days ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, activity.RelativeTime(tc.t, now))
		})
	}
}
