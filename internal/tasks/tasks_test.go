package tasks

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/desertthunder/vidcat/internal/models"
	"github.com/desertthunder/vidcat/internal/shared"
	"github.com/desertthunder/vidcat/internal/store"
	tu "github.com/desertthunder/vidcat/internal/testing"
)

// journalSpy records journal calls without a database.
type journalSpy struct {
	saves   []string
	moves   []string
	deletes []string
	err     error
}

func (j *journalSpy) RecordSave(videoID int64, videoName string, authorID int64) error {
	j.saves = append(j.saves, videoName)
	return j.err
}

func (j *journalSpy) RecordMove(videoID int64, videoName string, authorID, prevAuthorID int64) error {
	j.moves = append(j.moves, videoName)
	return j.err
}

func (j *journalSpy) RecordDelete(videoID int64, videoName string, authorID int64) error {
	j.deletes = append(j.deletes, videoName)
	return j.err
}

func backendAuthors() []models.AuthorResponse {
	return []models.AuthorResponse{
		{ID: 1, Name: "Nora", Videos: []models.VideoResponse{
			{ID: 10, Name: "Zebra Documentary", CatIDs: []int64{1}},
		}},
		{ID: 2, Name: "Amir", Videos: []models.VideoResponse{
			{ID: 11, Name: "Alpine Climbing", CatIDs: []int64{2}},
		}},
	}
}

func backendCategories() []models.CategoryResponse {
	return []models.CategoryResponse{
		{ID: 1, Name: "Thriller"},
		{ID: 2, Name: "Comedy"},
	}
}

func newTestEngine(mock *tu.MockCatalog, journal JournalRecorder) *CatalogEngine {
	logger := shared.NewLogger(io.Discard)
	return NewCatalogEngine(mock, store.NewCatalog(), journal, logger)
}

func TestRefreshAll(t *testing.T) {
	t.Run("FetchesAndNormalizes", func(t *testing.T) {
		mock := &tu.MockCatalog{
			AuthorsFunc: func(ctx context.Context) ([]models.AuthorResponse, error) {
				return backendAuthors(), nil
			},
			CategoriesFunc: func(ctx context.Context) ([]models.CategoryResponse, error) {
				return backendCategories(), nil
			},
		}
		engine := newTestEngine(mock, nil)

		if err := engine.RefreshAll(context.Background(), nil); err != nil {
			t.Fatalf("refresh failed: %v", err)
		}

		snap := engine.Catalog().Snapshot()
		if len(snap.Videos) != 2 || len(snap.Authors) != 2 || len(snap.Categories) != 2 {
			t.Errorf("expected normalized stores, got %d videos, %d authors, %d categories",
				len(snap.Videos), len(snap.Authors), len(snap.Categories))
		}
		if snap.Videos[10].AuthorID != 1 {
			t.Errorf("expected video 10 stamped with author 1, got %d", snap.Videos[10].AuthorID)
		}
		if snap.AuthorSync.LastFetched.IsZero() || snap.CategorySync.LastFetched.IsZero() {
			t.Error("expected fetch stamps set")
		}
		if snap.AuthorSync.IsUpdating || snap.CategorySync.IsUpdating {
			t.Error("expected fetches settled")
		}
	})

	t.Run("SecondCallWithinThresholdIssuesNoRequests", func(t *testing.T) {
		mock := &tu.MockCatalog{
			AuthorsFunc: func(ctx context.Context) ([]models.AuthorResponse, error) {
				return backendAuthors(), nil
			},
			CategoriesFunc: func(ctx context.Context) ([]models.CategoryResponse, error) {
				return backendCategories(), nil
			},
		}
		engine := newTestEngine(mock, nil)

		if err := engine.RefreshAll(context.Background(), nil); err != nil {
			t.Fatalf("first refresh failed: %v", err)
		}
		if err := engine.RefreshAll(context.Background(), nil); err != nil {
			t.Fatalf("second refresh failed: %v", err)
		}

		if got := len(mock.Calls()); got != 2 {
			t.Errorf("expected exactly 2 backend calls for two refreshes, got %d: %v", got, mock.Calls())
		}
	})

	t.Run("StaleDataRefetched", func(t *testing.T) {
		mock := &tu.MockCatalog{}
		engine := newTestEngine(mock, nil)
		engine.Catalog().Apply(
			store.AuthorsFetchCompleted(time.Now().Add(-time.Minute)),
			store.CategoriesFetchCompleted(time.Now().Add(-time.Minute)),
		)

		if err := engine.RefreshAll(context.Background(), nil); err != nil {
			t.Fatalf("refresh failed: %v", err)
		}
		if got := len(mock.Calls()); got != 2 {
			t.Errorf("expected 2 backend calls for stale data, got %d", got)
		}
	})

	t.Run("AuthorFetchErrorSettles", func(t *testing.T) {
		boom := errors.New("backend down")
		mock := &tu.MockCatalog{
			AuthorsFunc: func(ctx context.Context) ([]models.AuthorResponse, error) {
				return nil, boom
			},
			CategoriesFunc: func(ctx context.Context) ([]models.CategoryResponse, error) {
				return backendCategories(), nil
			},
		}
		engine := newTestEngine(mock, nil)

		err := engine.RefreshAll(context.Background(), nil)
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped backend error, got %v", err)
		}

		snap := engine.Catalog().Snapshot()
		if snap.AuthorSync.IsUpdating {
			t.Error("expected author fetch settled after failure")
		}
		if len(snap.Categories) != 2 {
			t.Error("category fetch should land despite author failure")
		}
		if !snap.AuthorSync.LastFetched.IsZero() {
			t.Error("failed fetch must not stamp the collection as fresh")
		}
	})
}

func TestSearch(t *testing.T) {
	t.Run("ReplacesStoresAndResetsStamp", func(t *testing.T) {
		mock := &tu.MockCatalog{
			SearchAuthorsFunc: func(ctx context.Context, term string) ([]models.AuthorResponse, error) {
				return backendAuthors()[:1], nil
			},
		}
		engine := newTestEngine(mock, nil)
		engine.Catalog().Apply(
			store.VideosSet([]models.VideoEntity{{ID: 99, Name: "Old", AuthorID: 9}}),
			store.AuthorsFetchCompleted(time.Now()),
		)

		if err := engine.Search(context.Background(), nil, "nora"); err != nil {
			t.Fatalf("search failed: %v", err)
		}

		calls := mock.Calls()
		if len(calls) != 1 || calls[0] != "GET /authors?q=nora" {
			t.Errorf("expected one search call, got %v", calls)
		}

		snap := engine.Catalog().Snapshot()
		if _, ok := snap.Videos[99]; ok {
			t.Error("expected stale videos replaced by search results")
		}
		if len(snap.Authors) != 1 {
			t.Errorf("expected 1 matching author, got %d", len(snap.Authors))
		}
		if !snap.AuthorSync.LastFetched.IsZero() {
			t.Error("search must reset the fetch stamp so the next bulk fetch proceeds")
		}
	})

	t.Run("ErrorLeavesVideosCleared", func(t *testing.T) {
		mock := &tu.MockCatalog{
			SearchAuthorsFunc: func(ctx context.Context, term string) ([]models.AuthorResponse, error) {
				return nil, errors.New("timeout")
			},
		}
		engine := newTestEngine(mock, nil)
		engine.Catalog().Apply(store.VideosSet([]models.VideoEntity{{ID: 99, AuthorID: 9}}))

		if err := engine.Search(context.Background(), nil, "nora"); err == nil {
			t.Fatal("expected search error")
		}

		snap := engine.Catalog().Snapshot()
		if len(snap.Videos) != 0 {
			t.Error("videos cleared at search start stay cleared on failure")
		}
		if snap.AuthorSync.IsUpdating {
			t.Error("expected fetch settled after failure")
		}
	})
}
