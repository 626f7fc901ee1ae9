package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/vidcat/internal/repositories"
	"github.com/urfave/cli/v3"
)

// History prints the local journal of completed catalog workflows.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	if r.db == nil {
		return fmt.Errorf("journal database not initialized: run `vidcat setup` first")
	}

	repo := repositories.NewJournalRepository(r.db)

	if cmd.Bool("counts") {
		counts, err := repo.CountByOperation()
		if err != nil {
			return err
		}
		if cmd.Bool("json") {
			return r.writeJSON(counts, true)
		}
		r.writePlainHeader("Journal counts")
		for _, op := range []string{repositories.OpSave, repositories.OpMove, repositories.OpDelete} {
			r.writePlain("%-8s %d\n", op, counts[op])
		}
		return nil
	}

	entries, err := repo.List(int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, true)
	}

	r.writePlainHeader(fmt.Sprintf("Journal (%d entries)", len(entries)))
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-7s video %d %q → author %d",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Operation, e.VideoID, e.VideoName, e.AuthorID)
		if e.PrevAuthorID != nil {
			line += fmt.Sprintf(" (was %d)", *e.PrevAuthorID)
		}
		r.writePlain("%s\n", line)
	}
	return nil
}
