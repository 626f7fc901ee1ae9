package store

import (
	"testing"
	"time"

	"github.com/desertthunder/vidcat/internal/models"
)

func testVideos() []models.VideoEntity {
	return []models.VideoEntity{
		{ID: 10, Name: "Zebra Documentary", CatIDs: []int64{1}, AuthorID: 1},
		{ID: 11, Name: "Alpine Climbing", CatIDs: []int64{2}, AuthorID: 2},
	}
}

func testAuthors() []models.AuthorEntity {
	return []models.AuthorEntity{
		{ID: 1, Name: "Nora", VideoIDs: []int64{10}},
		{ID: 2, Name: "Amir", VideoIDs: []int64{11}},
	}
}

func TestCatalog(t *testing.T) {
	t.Run("EmptySnapshot", func(t *testing.T) {
		c := NewCatalog()
		snap := c.Snapshot()

		if len(snap.Videos) != 0 || len(snap.Authors) != 0 || len(snap.Categories) != 0 {
			t.Errorf("expected empty snapshot, got %d videos, %d authors, %d categories",
				len(snap.Videos), len(snap.Authors), len(snap.Categories))
		}
		if !snap.AuthorSync.LastFetched.IsZero() {
			t.Error("new catalog should have a zero fetch stamp")
		}
	})

	t.Run("SetReplacesCollection", func(t *testing.T) {
		c := NewCatalog()
		c.Apply(VideosSet(testVideos()))
		c.Apply(VideosSet([]models.VideoEntity{{ID: 99, Name: "Only One", AuthorID: 1}}))

		snap := c.Snapshot()
		if len(snap.Videos) != 1 {
			t.Fatalf("expected 1 video after set, got %d", len(snap.Videos))
		}
		if _, ok := snap.Videos[99]; !ok {
			t.Error("expected video 99 to be present")
		}
	})

	t.Run("UpsertInsertsAndReplaces", func(t *testing.T) {
		c := NewCatalog()
		c.Apply(VideosSet(testVideos()))
		c.Apply(VideosUpsert([]models.VideoEntity{
			{ID: 10, Name: "Zebra Documentary (Remastered)", CatIDs: []int64{1}, AuthorID: 1},
			{ID: 12, Name: "New Arrival", CatIDs: []int64{1}, AuthorID: 1},
		}))

		snap := c.Snapshot()
		if len(snap.Videos) != 3 {
			t.Fatalf("expected 3 videos after upsert, got %d", len(snap.Videos))
		}
		if snap.Videos[10].Name != "Zebra Documentary (Remastered)" {
			t.Errorf("expected video 10 to be replaced, got %q", snap.Videos[10].Name)
		}
	})

	t.Run("VideoRemove", func(t *testing.T) {
		c := NewCatalog()
		c.Apply(VideosSet(testVideos()))
		c.Apply(VideoRemove(10))
		c.Apply(VideoRemove(404))

		snap := c.Snapshot()
		if _, ok := snap.Videos[10]; ok {
			t.Error("expected video 10 to be removed")
		}
		if len(snap.Videos) != 1 {
			t.Errorf("expected 1 video, got %d", len(snap.Videos))
		}
	})

	t.Run("AuthorUpdateSkipsMissing", func(t *testing.T) {
		c := NewCatalog()
		c.Apply(AuthorsSet(testAuthors()))
		c.Apply(AuthorUpdate(models.AuthorEntity{ID: 404, Name: "Ghost"}))
		c.Apply(AuthorUpdate(models.AuthorEntity{ID: 1, Name: "Nora Updated", VideoIDs: []int64{10, 12}}))

		snap := c.Snapshot()
		if _, ok := snap.Authors[404]; ok {
			t.Error("update must not insert unknown authors")
		}
		if snap.Authors[1].Name != "Nora Updated" {
			t.Errorf("expected author 1 to be replaced, got %q", snap.Authors[1].Name)
		}
	})

	t.Run("AuthorsUpdateTouchesOnlyExisting", func(t *testing.T) {
		c := NewCatalog()
		c.Apply(AuthorsSet(testAuthors()))
		c.Apply(AuthorsUpdate([]models.AuthorEntity{
			{ID: 2, Name: "Amir Updated", VideoIDs: []int64{}},
			{ID: 500, Name: "Ghost"},
		}))

		snap := c.Snapshot()
		if len(snap.Authors) != 2 {
			t.Fatalf("expected 2 authors, got %d", len(snap.Authors))
		}
		if snap.Authors[2].Name != "Amir Updated" {
			t.Errorf("expected author 2 to be replaced, got %q", snap.Authors[2].Name)
		}
	})

	t.Run("SnapshotIsolation", func(t *testing.T) {
		c := NewCatalog()
		c.Apply(VideosSet(testVideos()))

		before := c.Snapshot()
		c.Apply(VideosClear())
		after := c.Snapshot()

		if len(before.Videos) != 2 {
			t.Errorf("earlier snapshot should keep its 2 videos, got %d", len(before.Videos))
		}
		if len(after.Videos) != 0 {
			t.Errorf("later snapshot should be empty, got %d videos", len(after.Videos))
		}

		// Writing into a snapshot map must not leak into the catalog.
		before.Videos[77] = models.VideoEntity{ID: 77, Name: "Injected"}
		if _, ok := c.Snapshot().Videos[77]; ok {
			t.Error("snapshot map writes leaked into the catalog")
		}
	})

	t.Run("ApplyIsAtomic", func(t *testing.T) {
		c := NewCatalog()
		c.Apply(
			VideosSet(testVideos()),
			AuthorsSet(testAuthors()),
			AuthorsFetchCompleted(time.Now()),
		)

		snap := c.Snapshot()
		if len(snap.Videos) != 2 || len(snap.Authors) != 2 {
			t.Errorf("expected both collections populated, got %d videos, %d authors",
				len(snap.Videos), len(snap.Authors))
		}
		if snap.AuthorSync.LastFetched.IsZero() {
			t.Error("expected fetch stamp to be set")
		}
	})

	t.Run("FetchLifecycle", func(t *testing.T) {
		c := NewCatalog()

		c.Apply(AuthorsFetchStarted())
		if !c.Snapshot().AuthorSync.IsUpdating {
			t.Error("expected IsUpdating after fetch started")
		}

		stamp := time.Now()
		c.Apply(AuthorsFetchCompleted(stamp))
		snap := c.Snapshot()
		if snap.AuthorSync.IsUpdating {
			t.Error("expected IsUpdating cleared after completion")
		}
		if !snap.AuthorSync.LastFetched.Equal(stamp) {
			t.Errorf("expected stamp %v, got %v", stamp, snap.AuthorSync.LastFetched)
		}

		c.Apply(AuthorsStampReset())
		if !c.Snapshot().AuthorSync.LastFetched.IsZero() {
			t.Error("expected stamp forgotten after reset")
		}
	})

	t.Run("SettledKeepsStamp", func(t *testing.T) {
		c := NewCatalog()
		stamp := time.Now()
		c.Apply(AuthorsFetchCompleted(stamp))

		c.Apply(AuthorsFetchStarted(), AuthorsFetchSettled())
		snap := c.Snapshot()
		if snap.AuthorSync.IsUpdating {
			t.Error("expected IsUpdating cleared")
		}
		if !snap.AuthorSync.LastFetched.Equal(stamp) {
			t.Error("settled must not touch the fetch stamp")
		}
	})
}

func TestSnapshotSorting(t *testing.T) {
	c := NewCatalog()
	c.Apply(
		VideosSet(testVideos()),
		AuthorsSet(testAuthors()),
		CategoriesSet([]models.CategoryEntity{
			{ID: 1, Name: "Thriller"},
			{ID: 2, Name: "Comedy"},
		}),
	)
	snap := c.Snapshot()

	videos := snap.AllVideos()
	if len(videos) != 2 || videos[0].Name != "Alpine Climbing" {
		t.Errorf("expected videos sorted by name, got %v", videos)
	}

	authors := snap.AllAuthors()
	if len(authors) != 2 || authors[0].Name != "Amir" {
		t.Errorf("expected authors sorted by name, got %v", authors)
	}

	categories := snap.AllCategories()
	if len(categories) != 2 || categories[0].Name != "Comedy" {
		t.Errorf("expected categories sorted by name, got %v", categories)
	}
}
