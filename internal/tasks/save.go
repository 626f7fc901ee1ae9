package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/desertthunder/vidcat/internal/models"
	"github.com/desertthunder/vidcat/internal/shared"
	"github.com/desertthunder/vidcat/internal/store"
)

type authorUpdateResult struct {
	resp *models.AuthorResponse
	err  error
}

// SaveVideo persists a create-or-update of a single video using the minimum
// number of author-update calls.
//
// For a new video (original nil) the video is appended to its author's
// payload with one call. For a same-author edit the video is replaced in
// place with one call. For an author reassignment two calls are issued
// concurrently: one removing the video from the previous author, one
// appending it to the new author; both must resolve before the stores are
// touched. When exactly one of the two calls fails, the succeeded half is
// compensated so the backend does not keep a torn relationship.
//
// A target (or, for moves, previous) author missing from the store warrants
// no backend call: the workflow returns nil entities, nil error and leaves
// the stores untouched.
func (e *CatalogEngine) SaveVideo(ctx context.Context, progress chan<- ProgressUpdate, video models.VideoEntity, original *models.VideoEntity) ([]models.AuthorEntity, error) {
	if e.api == nil {
		return nil, fmt.Errorf("%w: catalog API not initialized", shared.ErrBackendUnavailable)
	}

	snap := e.catalog.Snapshot()
	target, ok := snap.Authors[video.AuthorID]
	if !ok {
		e.logger.Warn("save aborted: unknown author", "authorId", video.AuthorID)
		return nil, nil
	}

	targetPayload := models.AuthorEntityToResponse(target, snap.Videos)
	authorChanged := original != nil && original.AuthorID != target.ID

	var requests []models.AuthorResponse
	operation := "save"
	if authorChanged {
		operation = "move"
	}

	switch {
	case original == nil:
		// New video; the backend may not assign ids, so pick one up front.
		if video.ID == 0 {
			video.ID = shared.GenerateNumericID()
		}
		requests = []models.AuthorResponse{
			models.AddVideoToResponse(targetPayload, models.VideoEntityToResponse(video)),
		}

	case authorChanged:
		prev, ok := snap.Authors[original.AuthorID]
		if !ok {
			e.logger.Warn("save aborted: previous author missing", "authorId", original.AuthorID)
			return nil, nil
		}
		prevPayload := models.AuthorEntityToResponse(prev, snap.Videos)
		requests = []models.AuthorResponse{
			models.RemoveVideoFromResponse(prevPayload, original.ID),
			models.AddVideoToResponse(targetPayload, models.VideoEntityToResponse(video)),
		}

	default:
		requests = []models.AuthorResponse{
			models.UpdateVideoInResponse(targetPayload, models.VideoEntityToResponse(video)),
		}
	}

	e.catalog.Apply(store.AuthorsFetchStarted())

	results := make([]authorUpdateResult, len(requests))
	var wg sync.WaitGroup
	for i := range requests {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sendProgress(progress, ProgressUpdate{Phase: UpdateAuthor, Step: i + 1, Total: len(requests), Message: fmt.Sprintf("Updating author %d...", requests[i].ID)})
			resp, err := e.api.UpdateAuthor(ctx, requests[i])
			results[i] = authorUpdateResult{resp: resp, err: err}
		}(i)
	}
	wg.Wait()

	if err := e.settleSaveFailures(ctx, progress, requests, results, video, original); err != nil {
		e.catalog.Apply(store.AuthorsFetchSettled())
		return nil, err
	}

	sendProgress(progress, ProgressUpdate{Phase: MergeStores, Step: 1, Total: 1, Message: "Merging results..."})

	var upserts []models.VideoEntity
	entities := make([]models.AuthorEntity, 0, len(results))
	for _, r := range results {
		upserts = append(upserts, models.ExtractVideoEntities(*r.resp)...)
		entities = append(entities, models.AuthorResponseToEntity(*r.resp))
	}

	e.catalog.Apply(
		store.VideosUpsert(upserts),
		store.AuthorsUpdate(entities),
		store.AuthorsFetchSettled(),
	)

	e.recordSave(operation, video, original)
	return entities, nil
}

// settleSaveFailures inspects the update results and, for the two-call move
// case where exactly one call failed, issues a compensating update that
// undoes the succeeded half. Returns nil only when every call succeeded.
func (e *CatalogEngine) settleSaveFailures(ctx context.Context, progress chan<- ProgressUpdate, requests []models.AuthorResponse, results []authorUpdateResult, video models.VideoEntity, original *models.VideoEntity) error {
	var failed, succeeded []int
	for i, r := range results {
		if r.err != nil {
			failed = append(failed, i)
		} else {
			succeeded = append(succeeded, i)
		}
	}

	if len(failed) == 0 {
		return nil
	}

	if len(requests) == 2 && len(failed) == 1 && original != nil {
		// Index 0 removed the video from the previous author, index 1 added
		// it to the new one. Undo whichever half landed.
		sendProgress(progress, ProgressUpdate{Phase: Compensate, Step: 1, Total: 1, Message: "Compensating partial update..."})

		base := *results[succeeded[0]].resp
		var compensation models.AuthorResponse
		if succeeded[0] == 0 {
			compensation = models.AddVideoToResponse(base, models.VideoEntityToResponse(*original))
		} else {
			compensation = models.RemoveVideoFromResponse(base, video.ID)
		}

		if _, compErr := e.api.UpdateAuthor(ctx, compensation); compErr != nil {
			e.logger.Error("compensation failed, backend relationship may be torn",
				"authorId", compensation.ID, "videoId", video.ID, "err", compErr)
			return fmt.Errorf("author update failed: %w (compensation also failed: %w)", results[failed[0]].err, compErr)
		}

		e.logger.Warn("author update failed, compensated partial write",
			"authorId", requests[failed[0]].ID, "videoId", video.ID)
		return fmt.Errorf("author update failed: %w", results[failed[0]].err)
	}

	errs := results[failed[0]].err
	for _, i := range failed[1:] {
		errs = fmt.Errorf("%w; %w", errs, results[i].err)
	}
	return fmt.Errorf("author update failed: %w", errs)
}

// recordSave appends the audit record for a completed save. Journal failures
// are logged, never surfaced.
func (e *CatalogEngine) recordSave(operation string, video models.VideoEntity, original *models.VideoEntity) {
	if e.journal == nil {
		return
	}

	var err error
	if operation == "move" {
		err = e.journal.RecordMove(video.ID, video.Name, video.AuthorID, original.AuthorID)
	} else {
		err = e.journal.RecordSave(video.ID, video.Name, video.AuthorID)
	}
	if err != nil {
		e.logger.Warn("failed to journal save", "videoId", video.ID, "err", err)
	}
}
