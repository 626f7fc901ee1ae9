package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/vidcat/internal/models"
	"github.com/desertthunder/vidcat/internal/shared"
	"github.com/desertthunder/vidcat/internal/tasks"
	"github.com/desertthunder/vidcat/internal/views"
	"github.com/urfave/cli/v3"
)

// startProgress prints workflow progress updates as they arrive. The returned
// finish func closes the channel and waits for the printer to drain.
func (r *Runner) startProgress() (chan tasks.ProgressUpdate, func()) {
	progressCh := make(chan tasks.ProgressUpdate, 10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.UpdateAuthor:
				r.writePlain("📤 %s\n", update.Message)
			case tasks.Compensate:
				r.writePlain("↩️  %s\n", update.Message)
			case tasks.MergeStores:
				r.writePlain("📦 %s\n", update.Message)
			}
		}
	}()
	return progressCh, func() {
		close(progressCh)
		<-done
	}
}

// VideosList fetches the catalog (freshness permitting) and prints all videos.
func (r *Runner) VideosList(ctx context.Context, cmd *cli.Command) error {
	if err := r.engine.RefreshAll(ctx, nil); err != nil {
		return err
	}
	return r.printVideos(cmd.Bool("json"), cmd.Bool("pretty"))
}

// VideosSearch issues a backend search and prints the matching videos.
func (r *Runner) VideosSearch(ctx context.Context, cmd *cli.Command) error {
	term := cmd.StringArg("term")
	if term == "" {
		return fmt.Errorf("%w: search term", shared.ErrMissingArgument)
	}

	if err := r.engine.Search(ctx, nil, term); err != nil {
		return err
	}
	return r.printVideos(cmd.Bool("json"), cmd.Bool("pretty"))
}

func (r *Runner) printVideos(useJSON, pretty bool) error {
	snap := r.catalog.Snapshot()
	videoViews, dropped := views.AllVideos(snap)
	if dropped > 0 {
		r.logger.Warn("videos with dangling author references omitted", "count", dropped)
	}

	if useJSON {
		return r.writeJSON(videoViews, pretty)
	}

	r.writePlainHeader(fmt.Sprintf("Videos (%d)", len(videoViews)))
	for _, v := range videoViews {
		r.writePlain("%6d  %-30s  %-20s", v.ID, v.Name, v.Author.Name)
		for i, c := range v.Categories {
			if i == 0 {
				r.writePlain("  ")
			} else {
				r.writePlain(", ")
			}
			r.writePlain("%s", c.Name)
		}
		r.writePlain("\n")
	}
	return nil
}

// VideoSave creates or updates a single video, keeping the author/video
// relationship consistent on the backend.
func (r *Runner) VideoSave(ctx context.Context, cmd *cli.Command) error {
	catIDs := make([]int64, 0)
	for _, c := range cmd.IntSlice("category") {
		catIDs = append(catIDs, int64(c))
	}

	draft := models.VideoDraft{
		Name:     cmd.String("name"),
		AuthorID: int64(cmd.Int("author")),
		CatIDs:   catIDs,
	}
	if err := draft.Validate(); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidInput, err)
	}

	// The workflows resolve authors and prior versions from the store, so the
	// catalog has to be loaded first.
	if err := r.engine.RefreshAll(ctx, nil); err != nil {
		return err
	}

	id := int64(cmd.Int("id"))
	var original *models.VideoEntity
	if id != 0 {
		snap := r.catalog.Snapshot()
		prior, ok := snap.Videos[id]
		if !ok {
			return fmt.Errorf("%w: id %d", shared.ErrVideoNotFound, id)
		}
		original = &prior
	}

	progressCh, finish := r.startProgress()
	authors, err := r.engine.SaveVideo(ctx, progressCh, draft.Entity(id), original)
	finish()
	if err != nil {
		return err
	}
	if authors == nil {
		r.writePlainln("Nothing to save: author %d is not in the catalog", draft.AuthorID)
		return nil
	}

	for _, a := range authors {
		r.writePlainln("✓ Author %q now has %d video(s)", a.Name, len(a.VideoIDs))
	}
	return nil
}

// VideoDelete removes a video and detaches it from its author.
func (r *Runner) VideoDelete(ctx context.Context, cmd *cli.Command) error {
	id := int64(cmd.Int("id"))

	if err := r.engine.RefreshAll(ctx, nil); err != nil {
		return err
	}

	snap := r.catalog.Snapshot()
	video, ok := snap.Videos[id]
	if !ok {
		return fmt.Errorf("%w: id %d", shared.ErrVideoNotFound, id)
	}

	if !cmd.Bool("yes") {
		r.writePlainln("Refusing to delete %q without --yes", video.Name)
		return nil
	}

	progressCh, finish := r.startProgress()
	author, err := r.engine.DeleteVideo(ctx, progressCh, id)
	finish()
	if err != nil {
		return err
	}
	if author == nil {
		r.writePlainln("Nothing to delete")
		return nil
	}

	r.writePlainln("✓ Deleted %q; author %q now has %d video(s)", video.Name, author.Name, len(author.VideoIDs))
	return nil
}
