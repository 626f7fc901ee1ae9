package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/vidcat/internal/formatter"
	"github.com/desertthunder/vidcat/internal/shared"
	"github.com/desertthunder/vidcat/internal/views"
	"github.com/urfave/cli/v3"
)

// Export writes the catalog views to CSV, Markdown, or plain text.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	if err := r.engine.RefreshAll(ctx, nil); err != nil {
		return err
	}

	snap := r.catalog.Snapshot()
	format := cmd.String("format")

	var data []byte
	var err error

	if cmd.Bool("authors") {
		if format != "markdown" {
			return fmt.Errorf("%w: author export supports markdown only", shared.ErrInvalidFlag)
		}
		data = formatter.ExportAuthorsMarkdown(views.AllAuthors(snap))
	} else {
		videoViews, dropped := views.AllVideos(snap)
		if dropped > 0 {
			r.logger.Warn("videos with dangling author references omitted from export", "count", dropped)
		}

		switch format {
		case "csv":
			data, err = formatter.ExportVideosCSV(videoViews)
			if err != nil {
				return err
			}
		case "markdown":
			data = formatter.ExportVideosMarkdown(videoViews)
		case "txt":
			data = formatter.ExportVideosText(videoViews)
		default:
			return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
		}
	}

	if output := cmd.String("output"); output != "" {
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		r.writePlainln("✓ Exported to %s", output)
		return nil
	}

	return r.writePlain("%s", data)
}
