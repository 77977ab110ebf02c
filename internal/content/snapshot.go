package content

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// FetchSnapshot runs both fetches concurrently. Either half that fails is
// logged and replaced by its default; the returned snapshot is always usable.
func FetchSnapshot(ctx context.Context, src Source, logger *slog.Logger) Snapshot {
	snap := DefaultSnapshot()
	var g errgroup.Group

	g.Go(func() error {
		cfg, err := src.TerminalConfig(ctx)
		if err != nil {
			logger.Warn("could not fetch terminal config", "error", err)
			return nil
		}
		snap.Config = Normalize(cfg)
		return nil
	})
	g.Go(func() error {
		projects, err := src.Projects(ctx)
		if err != nil {
			logger.Warn("could not fetch projects", "error", err)
			return nil
		}
		snap.Projects = NormalizeProjects(projects)
		return nil
	})

	_ = g.Wait()
	return snap
}
