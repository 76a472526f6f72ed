package enrich

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"showrank/pkg/models"
)

type EpisodeShows interface {
	ListForEpisodes(ctx context.Context, force bool) ([]models.Show, error)
}

type EpisodeStore interface {
	Upsert(ctx context.Context, showID string, eps []models.Episode) error
}

type EpisodeFetcher interface {
	Episodes(ctx context.Context, tvmazeID int) ([]models.Episode, error)
}

// Episodes syncs episode lists for shows that already have a TVMaze id.
type Episodes struct {
	Shows  EpisodeShows
	Store  EpisodeStore
	Client EpisodeFetcher
	Window Window
	Logger hclog.Logger
}

// Run fetches episodes for shows without any, or for all matched shows
// when force is set. Each show's episodes are written in one transaction.
func (e *Episodes) Run(ctx context.Context, force bool) (Stats, error) {
	log := e.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	todo, err := e.Shows.ListForEpisodes(ctx, force)
	if err != nil {
		return Stats{}, err
	}
	if len(todo) == 0 {
		log.Info("no shows need episodes; run covers first or use --force")
		return Stats{}, nil
	}
	log.Info("fetching episodes", "shows", len(todo))

	st, err := run(ctx, e.Window, todo, func(ctx context.Context, s models.Show) (int, error) {
		eps, err := e.Client.Episodes(ctx, *s.TVMazeID)
		if err != nil {
			log.Warn("skip, fetch failed", "show", s.Name, "error", err)
			return 0, err
		}
		if len(eps) == 0 {
			return 0, nil
		}
		if err := e.Store.Upsert(ctx, s.ID, eps); err != nil {
			log.Warn("skip, store failed", "show", s.Name, "error", err)
			return 0, err
		}
		log.Debug("episodes stored", "show", s.Name, "count", len(eps))
		return len(eps), nil
	})
	log.Info("episodes done", "shows", st.Updated, "episodes", st.Written, "failed", st.Failed)
	return st, err
}
