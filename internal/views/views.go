// Package views composes read-only display shapes from catalog snapshots.
//
// Selectors are pure and recomputed on every read; the normalized stores are
// the only cache. Dangling references are dropped from the output but
// reported through the returned count so callers can log the inconsistency.
package views

import (
	"github.com/desertthunder/vidcat/internal/models"
	"github.com/desertthunder/vidcat/internal/store"
)

// AllAuthors joins every author with the video and category stores.
func AllAuthors(s store.Snapshot) []models.AuthorView {
	authors := s.AllAuthors()
	out := make([]models.AuthorView, 0, len(authors))
	for _, a := range authors {
		out = append(out, models.AuthorEntityToView(a, s.Videos, s.Categories))
	}
	return out
}

// AllVideos joins every video with the author and category stores. Videos
// whose author is missing yield no view; dropped reports how many were
// omitted.
func AllVideos(s store.Snapshot) (views []models.VideoView, dropped int) {
	entities := s.AllVideos()
	views = make([]models.VideoView, 0, len(entities))
	for _, v := range entities {
		view, ok := models.VideoEntityToView(v, s.Authors, s.Categories)
		if !ok {
			dropped++
			continue
		}
		views = append(views, view)
	}
	return views, dropped
}

// AllCategories returns the category collection sorted by name.
func AllCategories(s store.Snapshot) []models.CategoryEntity {
	return s.AllCategories()
}

// CategoriesFromIDs returns the subset of categories that exist, preserving
// input order and silently omitting missing ids.
func CategoriesFromIDs(s store.Snapshot, ids []int64) []models.CategoryEntity {
	return models.CategoryIDsToEntities(ids, s.Categories)
}

// IsLoading reports whether either bulk collection has a fetch in flight.
func IsLoading(s store.Snapshot) bool {
	return s.AuthorSync.IsUpdating || s.CategorySync.IsUpdating
}
