package enrich

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"showrank/internal/shows"
	"showrank/internal/tvmaze"
	"showrank/pkg/models"
)

type CoverStore interface {
	ListForCovers(ctx context.Context, force bool) ([]models.Show, error)
	UpdateCover(ctx context.Context, id string, u shows.CoverUpdate) error
}

type Searcher interface {
	SearchShow(ctx context.Context, name string) (*tvmaze.Match, error)
}

// Covers looks each show up by name and stores the first hit's image,
// TVMaze id and rating.
type Covers struct {
	Store  CoverStore
	Client Searcher
	Window Window
	Logger hclog.Logger
}

// Run processes shows missing a cover, or every show when force is set.
// Shows without a usable hit are skipped.
func (c *Covers) Run(ctx context.Context, force bool) (Stats, error) {
	log := c.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	todo, err := c.Store.ListForCovers(ctx, force)
	if err != nil {
		return Stats{}, err
	}
	if len(todo) == 0 {
		log.Info("no shows need covers", "force", force)
		return Stats{}, nil
	}
	log.Info("fetching covers", "shows", len(todo))

	st, err := run(ctx, c.Window, todo, func(ctx context.Context, s models.Show) (int, error) {
		m, err := c.Client.SearchShow(ctx, s.Name)
		if err != nil {
			log.Warn("search failed", "show", s.Name, "error", err)
			return 0, err
		}
		if m == nil || m.ImageURL == "" {
			log.Info("skip, no match", "show", s.Name)
			return 0, nil
		}
		if err := c.Store.UpdateCover(ctx, s.ID, shows.CoverUpdate{
			CoverURL:     m.ImageURL,
			TVMazeID:     m.ID,
			TVMazeRating: m.Rating,
		}); err != nil {
			log.Warn("store cover failed", "show", s.Name, "error", err)
			return 0, err
		}
		log.Debug("cover stored", "show", s.Name, "tvmaze_id", m.ID)
		return 1, nil
	})
	log.Info("covers done", "updated", st.Updated, "skipped", st.Skipped, "failed", st.Failed)
	return st, err
}
