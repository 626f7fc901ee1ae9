package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vidcat/internal/models"
	"github.com/desertthunder/vidcat/internal/services"
	"github.com/desertthunder/vidcat/internal/shared"
	"github.com/desertthunder/vidcat/internal/store"
)

// JournalRecorder receives audit records for completed workflows.
// Recording failures must not fail the workflow itself.
type JournalRecorder interface {
	RecordSave(videoID int64, videoName string, authorID int64) error
	RecordMove(videoID int64, videoName string, authorID, prevAuthorID int64) error
	RecordDelete(videoID int64, videoName string, authorID int64) error
}

// CatalogEngine orchestrates the catalog synchronization workflows.
type CatalogEngine struct {
	api     services.CatalogAPI
	catalog *store.Catalog
	journal JournalRecorder
	logger  *log.Logger
}

// NewCatalogEngine creates an engine over the given backend client and store.
// The journal may be nil when auditing is disabled.
func NewCatalogEngine(api services.CatalogAPI, catalog *store.Catalog, journal JournalRecorder, logger *log.Logger) *CatalogEngine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &CatalogEngine{
		api:     api,
		catalog: catalog,
		journal: journal,
		logger:  logger,
	}
}

// Catalog exposes the engine's store for snapshot reads.
func (e *CatalogEngine) Catalog() *store.Catalog {
	return e.catalog
}

// RefreshAll performs the bulk fetch of categories and authors, each gated by
// the freshness policy. Both fetches run concurrently and the call returns
// once both have settled. Invoking RefreshAll twice within the freshness
// threshold issues a single set of backend calls.
func (e *CatalogEngine) RefreshAll(ctx context.Context, progress chan<- ProgressUpdate) error {
	if e.api == nil {
		return fmt.Errorf("%w: catalog API not initialized", shared.ErrBackendUnavailable)
	}

	now := time.Now()
	snap := e.catalog.Snapshot()
	needAuthors := store.ShouldRefresh(snap.AuthorSync, now)
	needCategories := store.ShouldRefresh(snap.CategorySync, now)

	if !needAuthors && !needCategories {
		e.logger.Debug("catalog fresh, skipping refresh")
		return nil
	}

	var marks []store.Mutation
	if needAuthors {
		marks = append(marks, store.AuthorsFetchStarted())
	}
	if needCategories {
		marks = append(marks, store.CategoriesFetchStarted())
	}
	e.catalog.Apply(marks...)

	var wg sync.WaitGroup
	var authorsErr, categoriesErr error

	if needCategories {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sendProgress(progress, ProgressUpdate{Phase: FetchCategories, Step: 1, Total: 1, Message: "Fetching categories..."})
			categoriesErr = e.fetchCategories(ctx)
		}()
	}

	if needAuthors {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sendProgress(progress, ProgressUpdate{Phase: FetchAuthors, Step: 1, Total: 1, Message: "Fetching authors..."})
			authorsErr = e.fetchAuthors(ctx)
		}()
	}

	wg.Wait()

	if authorsErr != nil || categoriesErr != nil {
		if authorsErr != nil && categoriesErr != nil {
			return fmt.Errorf("refresh failed: %w; %w", authorsErr, categoriesErr)
		}
		if authorsErr != nil {
			return fmt.Errorf("refresh failed: %w", authorsErr)
		}
		return fmt.Errorf("refresh failed: %w", categoriesErr)
	}

	return nil
}

// fetchCategories replaces the category collection from the backend.
func (e *CatalogEngine) fetchCategories(ctx context.Context) error {
	categories, err := e.api.Categories(ctx)
	if err != nil {
		e.catalog.Apply(store.CategoriesFetchSettled())
		return err
	}

	e.catalog.Apply(
		store.CategoriesSet(categories),
		store.CategoriesFetchCompleted(time.Now()),
	)
	return nil
}

// fetchAuthors replaces the author and video collections from the backend.
func (e *CatalogEngine) fetchAuthors(ctx context.Context) error {
	results, err := e.api.Authors(ctx)
	if err != nil {
		e.catalog.Apply(store.AuthorsFetchSettled())
		return err
	}

	videos, authors := normalizeAuthors(results)
	e.catalog.Apply(
		store.VideosSet(videos),
		store.AuthorsSet(authors),
		store.AuthorsFetchCompleted(time.Now()),
	)
	return nil
}

// Search fetches the authors matching term, bypassing the freshness policy.
// The video collection is cleared while the search is in flight; search
// results leave the store with a reset fetch stamp so the next bulk refresh
// proceeds unconditionally.
func (e *CatalogEngine) Search(ctx context.Context, progress chan<- ProgressUpdate, term string) error {
	if e.api == nil {
		return fmt.Errorf("%w: catalog API not initialized", shared.ErrBackendUnavailable)
	}

	e.catalog.Apply(store.VideosClear(), store.AuthorsFetchStarted())
	sendProgress(progress, ProgressUpdate{Phase: SearchAuthors, Step: 1, Total: 1, Message: fmt.Sprintf("Searching for %q...", term)})

	results, err := e.api.SearchAuthors(ctx, term)
	if err != nil {
		e.catalog.Apply(store.AuthorsFetchSettled())
		return fmt.Errorf("search failed: %w", err)
	}

	videos, authors := normalizeAuthors(results)
	e.catalog.Apply(
		store.VideosSet(videos),
		store.AuthorsSet(authors),
		store.AuthorsStampReset(),
		store.AuthorsFetchSettled(),
	)
	return nil
}

// normalizeAuthors splits author responses into video and author entities.
func normalizeAuthors(results []models.AuthorResponse) ([]models.VideoEntity, []models.AuthorEntity) {
	var videos []models.VideoEntity
	authors := make([]models.AuthorEntity, 0, len(results))
	for _, r := range results {
		videos = append(videos, models.ExtractVideoEntities(r)...)
		authors = append(authors, models.AuthorResponseToEntity(r))
	}
	return videos, authors
}
