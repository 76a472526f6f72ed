// Package pipeline wires the data maintenance stages (seed, ranks, covers,
// episodes) to one open store. Both showctl and the admin routes run
// through it.
package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"showrank/internal/enrich"
	"showrank/internal/episodes"
	"showrank/internal/events"
	"showrank/internal/ingest"
	"showrank/internal/ranking"
	"showrank/internal/shows"
	"showrank/internal/spots"
	"showrank/internal/tvmaze"
	"showrank/pkg/config"
	"showrank/pkg/models"
)

type Runner struct {
	DB       *sql.DB
	Shows    *shows.Repo
	Spots    *spots.Repo
	Episodes *episodes.Repo
	Config   config.Config
	Logger   hclog.Logger
	// Events is optional; when set every successful stage publishes.
	Events events.Publisher
	// Progress is optional and only used by the enrichment stages.
	Progress enrich.Progress
}

func New(db *sql.DB, cfg config.Config, logger hclog.Logger) *Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{
		DB:       db,
		Shows:    shows.NewRepo(db, models.DefaultTierOrder()),
		Spots:    spots.NewRepo(db),
		Episodes: episodes.NewRepo(db),
		Config:   cfg,
		Logger:   logger,
	}
}

type SeedResult struct {
	Shows *ingest.Result
	Spots int
}

// Seed replaces shows from the CSV and spots from the seed list. Both
// input files are validated before anything is written.
func (r *Runner) Seed(ctx context.Context) (*SeedResult, error) {
	log := r.Logger.Named("seed")

	var seedSpots []models.Spot
	if path := strings.TrimSpace(r.Config.Seed.Spots); path != "" {
		s, err := spots.LoadSeed(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Warn("no spots seed file, leaving spots untouched", "path", path)
			} else {
				return nil, &ingest.Error{Kind: ingest.KindInput, Msg: "load spots", Err: err}
			}
		}
		seedSpots = s
	}

	opts := ingest.DefaultOptions()
	opts.DefaultYear = r.Config.Seed.DefaultYear
	store := &seedStore{db: r.DB, shows: r.Shows, spots: r.Spots, seed: seedSpots}
	res, err := ingest.Run(ctx, store, ingest.Input{
		CSVPath:          r.Config.Seed.ShowsCSV,
		DescriptionsPath: r.Config.Seed.Descriptions,
	}, opts, log)
	if err != nil {
		return nil, err
	}

	out := &SeedResult{Shows: res}
	if seedSpots != nil {
		out.Spots = len(seedSpots)
		log.Info("seeded spots", "count", out.Spots)
	}

	r.publish(events.Event{Type: events.ShowsReseeded, Count: res.Accepted})
	return out, nil
}

// seedStore replaces shows, and spots when a seed list was loaded, in one
// transaction, so a failed reseed leaves both sets as they were.
type seedStore struct {
	db    *sql.DB
	shows *shows.Repo
	spots *spots.Repo
	seed  []models.Spot
}

func (s *seedStore) ReplaceAll(ctx context.Context, items []models.Show) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.shows.ReplaceAllTx(ctx, tx, items); err != nil {
		return err
	}
	if s.seed != nil {
		if err := s.spots.ReplaceAllTx(ctx, tx, s.seed); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

// Ranks reconciles every year in the rankings file.
func (r *Runner) Ranks(ctx context.Context) ([]ranking.Report, error) {
	cfg, err := ranking.LoadConfig(r.Config.Rankings.Path)
	if err != nil {
		return nil, err
	}
	reports, err := ranking.New(r.Shows, r.Logger.Named("ranks")).ReconcileAll(ctx, cfg)
	for _, rep := range reports {
		r.publish(events.Event{Type: events.RanksUpdated, Year: rep.Year, Count: rep.Matched})
	}
	return reports, err
}

func (r *Runner) window() enrich.Window {
	return enrich.Window{
		Size:     r.Config.TVMaze.Concurrency,
		Delay:    r.Config.TVMaze.Delay,
		Progress: r.Progress,
	}
}

func (r *Runner) client() *tvmaze.Client {
	t := r.Config.TVMaze
	return tvmaze.NewClient(t.BaseURL, t.UserAgent, t.Timeout)
}

// Covers fetches cover art and TVMaze ids.
func (r *Runner) Covers(ctx context.Context, force bool) (enrich.Stats, error) {
	c := &enrich.Covers{
		Store:  r.Shows,
		Client: r.client(),
		Window: r.window(),
		Logger: r.Logger.Named("covers"),
	}
	return c.Run(ctx, force)
}

// SyncEpisodes fetches episode lists for matched shows.
func (r *Runner) SyncEpisodes(ctx context.Context, force bool) (enrich.Stats, error) {
	e := &enrich.Episodes{
		Shows:  r.Shows,
		Store:  r.Episodes,
		Client: r.client(),
		Window: r.window(),
		Logger: r.Logger.Named("episodes"),
	}
	return e.Run(ctx, force)
}

func (r *Runner) publish(e events.Event) {
	if r.Events != nil {
		r.Events.Publish(e)
	}
}
