package tasks

import (
	"context"
	"fmt"

	"github.com/desertthunder/vidcat/internal/models"
	"github.com/desertthunder/vidcat/internal/shared"
	"github.com/desertthunder/vidcat/internal/store"
)

// DeleteVideo removes a single video and detaches it from its author with one
// author-update call. A video or author missing from the stores warrants no
// backend call: the workflow returns nil, nil and the stores stay untouched.
func (e *CatalogEngine) DeleteVideo(ctx context.Context, progress chan<- ProgressUpdate, id int64) (*models.AuthorEntity, error) {
	if e.api == nil {
		return nil, fmt.Errorf("%w: catalog API not initialized", shared.ErrBackendUnavailable)
	}

	snap := e.catalog.Snapshot()

	video, ok := snap.Videos[id]
	if !ok {
		e.logger.Warn("delete aborted: unknown video", "videoId", id)
		return nil, nil
	}

	author, ok := snap.Authors[video.AuthorID]
	if !ok {
		e.logger.Warn("delete aborted: unknown author", "authorId", video.AuthorID)
		return nil, nil
	}

	e.catalog.Apply(store.AuthorsFetchStarted())

	payload := models.AuthorEntityToResponse(author, snap.Videos)
	filtered := models.RemoveVideoFromResponse(payload, video.ID)

	sendProgress(progress, ProgressUpdate{Phase: UpdateAuthor, Step: 1, Total: 1, Message: fmt.Sprintf("Detaching video from author %d...", author.ID)})

	resp, err := e.api.UpdateAuthor(ctx, filtered)
	if err != nil {
		e.catalog.Apply(store.AuthorsFetchSettled())
		return nil, fmt.Errorf("author update failed: %w", err)
	}

	entity := models.AuthorResponseToEntity(*resp)
	e.catalog.Apply(
		store.VideoRemove(video.ID),
		store.AuthorUpdate(entity),
		store.AuthorsFetchSettled(),
	)

	if e.journal != nil {
		if err := e.journal.RecordDelete(video.ID, video.Name, author.ID); err != nil {
			e.logger.Warn("failed to journal delete", "videoId", video.ID, "err", err)
		}
	}

	return &entity, nil
}
