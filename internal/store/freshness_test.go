package store

import (
	"testing"
	"time"
)

func TestShouldRefresh(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		meta SyncMeta
		want bool
	}{
		{
			name: "never fetched",
			meta: SyncMeta{},
			want: true,
		},
		{
			name: "fetch in flight",
			meta: SyncMeta{IsUpdating: true},
			want: false,
		},
		{
			name: "in flight suppresses even stale data",
			meta: SyncMeta{LastFetched: now.Add(-time.Hour), IsUpdating: true},
			want: false,
		},
		{
			name: "fresh data",
			meta: SyncMeta{LastFetched: now.Add(-5 * time.Second)},
			want: false,
		},
		{
			name: "exactly at threshold",
			meta: SyncMeta{LastFetched: now.Add(-FreshnessThreshold)},
			want: false,
		},
		{
			name: "just past threshold",
			meta: SyncMeta{LastFetched: now.Add(-FreshnessThreshold - time.Millisecond)},
			want: true,
		},
		{
			name: "stale data",
			meta: SyncMeta{LastFetched: now.Add(-time.Minute)},
			want: true,
		},
		{
			name: "clock skew puts stamp in the future",
			meta: SyncMeta{LastFetched: now.Add(time.Minute)},
			want: true,
		},
		{
			name: "slightly in the future counts as fresh",
			meta: SyncMeta{LastFetched: now.Add(2 * time.Second)},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ShouldRefresh(tc.meta, now)
			if got != tc.want {
				t.Errorf("ShouldRefresh(%+v) = %v, want %v", tc.meta, got, tc.want)
			}
		})
	}
}
