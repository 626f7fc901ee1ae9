package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/desertthunder/vidcat/internal/models"
)

// state is the mutable catalog state guarded by the Catalog lock.
type state struct {
	videos       map[int64]models.VideoEntity
	authors      map[int64]models.AuthorEntity
	categories   map[int64]models.CategoryEntity
	authorSync   SyncMeta
	categorySync SyncMeta
}

// Mutation is an intended state transition produced by a workflow and applied
// through [Catalog.Apply].
type Mutation func(*state)

// Catalog is the serializing dispatcher over the normalized stores.
type Catalog struct {
	mu sync.RWMutex
	st state
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{st: state{
		videos:     make(map[int64]models.VideoEntity),
		authors:    make(map[int64]models.AuthorEntity),
		categories: make(map[int64]models.CategoryEntity),
	}}
}

// Apply runs the given mutations in order under the write lock. All mutations
// of one call land atomically with respect to snapshots.
func (c *Catalog) Apply(muts ...Mutation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range muts {
		m(&c.st)
	}
}

// Snapshot is an immutable copy of the catalog state at one point in time.
// The lookup maps are fresh copies; entity values are never mutated by any
// reader, so their inner slices are shared.
type Snapshot struct {
	Videos       map[int64]models.VideoEntity
	Authors      map[int64]models.AuthorEntity
	Categories   map[int64]models.CategoryEntity
	AuthorSync   SyncMeta
	CategorySync SyncMeta
}

// Snapshot returns a point-in-time copy of the catalog state.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Videos:       copyMap(c.st.videos),
		Authors:      copyMap(c.st.authors),
		Categories:   copyMap(c.st.categories),
		AuthorSync:   c.st.authorSync,
		CategorySync: c.st.categorySync,
	}
}

// AllVideos returns the video entities sorted by name.
func (s Snapshot) AllVideos() []models.VideoEntity {
	return sortedByName(s.Videos, func(v models.VideoEntity) string { return v.Name })
}

// AllAuthors returns the author entities sorted by name.
func (s Snapshot) AllAuthors() []models.AuthorEntity {
	return sortedByName(s.Authors, func(a models.AuthorEntity) string { return a.Name })
}

// AllCategories returns the category entities sorted by name.
func (s Snapshot) AllCategories() []models.CategoryEntity {
	return sortedByName(s.Categories, func(c models.CategoryEntity) string { return c.Name })
}

// Mutation constructors. Collection semantics follow the usual normalized
// store operations: set replaces the whole collection, upsert inserts or
// replaces, update touches only existing rows.

// VideosSet replaces the video collection.
func VideosSet(videos []models.VideoEntity) Mutation {
	return func(st *state) {
		st.videos = make(map[int64]models.VideoEntity, len(videos))
		for _, v := range videos {
			st.videos[v.ID] = v
		}
	}
}

// VideosUpsert inserts or replaces the given videos.
func VideosUpsert(videos []models.VideoEntity) Mutation {
	return func(st *state) {
		for _, v := range videos {
			st.videos[v.ID] = v
		}
	}
}

// VideoRemove deletes one video by id. Missing ids are a no-op.
func VideoRemove(id int64) Mutation {
	return func(st *state) { delete(st.videos, id) }
}

// VideosClear empties the video collection.
func VideosClear() Mutation {
	return func(st *state) { st.videos = make(map[int64]models.VideoEntity) }
}

// AuthorsSet replaces the author collection.
func AuthorsSet(authors []models.AuthorEntity) Mutation {
	return func(st *state) {
		st.authors = make(map[int64]models.AuthorEntity, len(authors))
		for _, a := range authors {
			st.authors[a.ID] = a
		}
	}
}

// AuthorUpdate replaces one author if it already exists.
func AuthorUpdate(author models.AuthorEntity) Mutation {
	return func(st *state) {
		if _, ok := st.authors[author.ID]; ok {
			st.authors[author.ID] = author
		}
	}
}

// AuthorsUpdate replaces the given authors, skipping ids not in the store.
func AuthorsUpdate(authors []models.AuthorEntity) Mutation {
	return func(st *state) {
		for _, a := range authors {
			if _, ok := st.authors[a.ID]; ok {
				st.authors[a.ID] = a
			}
		}
	}
}

// CategoriesSet replaces the category collection. Categories are reference
// data and are always replaced wholesale.
func CategoriesSet(categories []models.CategoryEntity) Mutation {
	return func(st *state) {
		st.categories = make(map[int64]models.CategoryEntity, len(categories))
		for _, c := range categories {
			st.categories[c.ID] = c
		}
	}
}

// AuthorsFetchStarted marks the author collection as having a fetch in flight.
func AuthorsFetchStarted() Mutation {
	return func(st *state) { st.authorSync.IsUpdating = true }
}

// AuthorsFetchCompleted stamps the author collection as freshly fetched.
func AuthorsFetchCompleted(now time.Time) Mutation {
	return func(st *state) {
		st.authorSync.IsUpdating = false
		st.authorSync.LastFetched = now
	}
}

// AuthorsFetchSettled clears the in-flight flag without touching the stamp.
// Used when a fetch fails or when a workflow other than the bulk fetch ends.
func AuthorsFetchSettled() Mutation {
	return func(st *state) { st.authorSync.IsUpdating = false }
}

// AuthorsStampReset forgets the last fetch time so the next bulk fetch
// proceeds unconditionally. Search results leave the store in this state.
func AuthorsStampReset() Mutation {
	return func(st *state) { st.authorSync.LastFetched = time.Time{} }
}

// CategoriesFetchStarted marks the category collection as having a fetch in flight.
func CategoriesFetchStarted() Mutation {
	return func(st *state) { st.categorySync.IsUpdating = true }
}

// CategoriesFetchCompleted stamps the category collection as freshly fetched.
func CategoriesFetchCompleted(now time.Time) Mutation {
	return func(st *state) {
		st.categorySync.IsUpdating = false
		st.categorySync.LastFetched = now
	}
}

// CategoriesFetchSettled clears the in-flight flag without touching the stamp.
func CategoriesFetchSettled() Mutation {
	return func(st *state) { st.categorySync.IsUpdating = false }
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortedByName[E any](m map[int64]E, name func(E) string) []E {
	out := make([]E, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(name(out[i]), name(out[j])) < 0
	})
	return out
}
