package activity

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/dataminder/dataminder/internal/kv"
	"github.com/google/uuid"
)

// Log is the per-project, append-only activity history. Each project's log
// is persisted under its own key and capped at the 50 most recent entries.
// A mutex serializes the load-modify-save cycle so concurrent sessions
// never lose appended entries.
type Log struct {
	kv     kv.Store
	logger *slog.Logger

	mu sync.Mutex
}

// NewLog creates an activity log backed by the given substrate.
func NewLog(store kv.Store, logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Log{kv: store, logger: logger}
}

// Add appends an entry with the current timestamp to the front of the
// project's log, evicting the oldest entries past the cap. Persistence is
// best-effort; failures are logged, never surfaced.
func (l *Log) Add(ctx context.Context, projectID, action, item string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.load(ctx, projectID)

	entry := Entry{
		ID:        uuid.NewString(),
		Action:    action,
		Item:      item,
		Timestamp: time.Now().UTC(),
	}
	entries = append([]Entry{entry}, entries...)
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	if err := l.kv.Save(ctx, Key(projectID), entries); err != nil {
		l.logger.Warn("activity not persisted", "project_id", projectID, "error", err)
	}
}

// Recent returns up to count entries, most recent first, with timestamps
// rendered as relative-time strings.
func (l *Log) Recent(ctx context.Context, projectID string, count int) []RecentEntry {
	l.mu.Lock()
	entries := l.load(ctx, projectID)
	l.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if count >= 0 && count < len(entries) {
		entries = entries[:count]
	}

	now := time.Now()
	out := make([]RecentEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, RecentEntry{
			Action:       e.Action,
			Item:         e.Item,
			RelativeTime: RelativeTime(e.Timestamp, now),
		})
	}
	return out
}

// Purge removes the project's entire log. Used when the owning project is
// deleted.
func (l *Log) Purge(ctx context.Context, projectID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.kv.Delete(ctx, Key(projectID))
}

func (l *Log) load(ctx context.Context, projectID string) []Entry {
	var entries []Entry
	if _, err := l.kv.Load(ctx, Key(projectID), &entries); err != nil {
		l.logger.Warn("could not load activity, starting empty", "project_id", projectID, "error", err)
		return nil
	}
	return entries
}
