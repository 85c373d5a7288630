package activity

import (
	"fmt"
	"time"
)

// maxEntries bounds each project's log; the oldest entries are evicted on
// overflow.
const maxEntries = 50

// Entry is one recorded user-visible action within a project.
type Entry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Item      string    `json:"item"`
	Timestamp time.Time `json:"timestamp"`
}

// RecentEntry is the read-side projection of an Entry: the timestamp is
// rendered as a relative-time string at read time so displayed text ages
// naturally between reads.
type RecentEntry struct {
	Action       string `json:"action"`
	Item         string `json:"item"`
	RelativeTime string `json:"relative_time"`
}

// Key returns the persistence key for a project's activity log.
func Key(projectID string) string {
	return fmt.Sprintf("project-activity-%s", projectID)
}
