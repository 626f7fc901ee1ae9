package store

import "time"

// FreshnessThreshold is the maximum age of bulk-fetched collection data
// before it is considered stale and eligible for refetch.
const FreshnessThreshold = 15 * time.Second

// SyncMeta tracks the fetch state of a bulk-fetched collection.
// A zero LastFetched means the collection has never been fetched.
type SyncMeta struct {
	LastFetched time.Time
	IsUpdating  bool
}

// ShouldRefresh decides whether a bulk fetch should proceed.
//
// An in-flight fetch suppresses the refetch regardless of age. Data that was
// never fetched is always refetched. Otherwise the fetch proceeds only once
// the data is older than [FreshnessThreshold]. Search-triggered fetches
// bypass this policy entirely.
func ShouldRefresh(meta SyncMeta, now time.Time) bool {
	if meta.IsUpdating {
		return false
	}
	if meta.LastFetched.IsZero() {
		return true
	}
	age := now.Sub(meta.LastFetched)
	if age < 0 {
		age = -age
	}
	return age > FreshnessThreshold
}
