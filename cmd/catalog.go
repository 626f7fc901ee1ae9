package main

import (
	"context"

	"github.com/desertthunder/vidcat/internal/views"
	"github.com/urfave/cli/v3"
)

// AuthorsList fetches the catalog (freshness permitting) and prints every
// author with its videos reconstituted.
func (r *Runner) AuthorsList(ctx context.Context, cmd *cli.Command) error {
	if err := r.engine.RefreshAll(ctx, nil); err != nil {
		return err
	}

	snap := r.catalog.Snapshot()
	authorViews := views.AllAuthors(snap)

	if cmd.Bool("json") {
		return r.writeJSON(authorViews, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Authors")
	for _, a := range authorViews {
		r.writePlain("%6d  %s (%d videos)\n", a.ID, a.Name, len(a.Videos))
		for _, v := range a.Videos {
			r.writePlain("        - %s\n", v.Name)
		}
	}
	return nil
}

// CategoriesList fetches the catalog (freshness permitting) and prints the
// category reference data.
func (r *Runner) CategoriesList(ctx context.Context, cmd *cli.Command) error {
	if err := r.engine.RefreshAll(ctx, nil); err != nil {
		return err
	}

	snap := r.catalog.Snapshot()
	categories := views.AllCategories(snap)

	if cmd.Bool("json") {
		return r.writeJSON(categories, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Categories")
	for _, c := range categories {
		r.writePlain("%6d  %s\n", c.ID, c.Name)
	}
	return nil
}
