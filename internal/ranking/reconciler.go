// Package ranking stamps canonical absolute ranks onto stored shows from a
// hand-maintained per-year list.
package ranking

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"showrank/pkg/models"
)

type Kind int

const (
	KindConfig Kind = iota + 1
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ranking %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("ranking %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure kind from err, or 0.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return 0
}

// Store reads one year partition and replaces its ranks atomically.
type Store interface {
	ListByYear(ctx context.Context, year int) ([]models.Show, error)
	ApplyRanks(ctx context.Context, year int, ranks map[string]int) error
}

// Miss is a list entry that matched no stored show.
type Miss struct {
	Rank    int    `json:"rank"`
	Display string `json:"display"`
	Lookup  string `json:"lookup"`
}

type Report struct {
	Year    int
	Matched int
	Misses  []Miss
	// Shadowed are stored names held by more than one show; only the
	// earliest ingested one was ranked.
	Shadowed []string
	// Repeated are list entries that resolved to a show already ranked
	// higher in the same list.
	Repeated []Miss
}

type Reconciler struct {
	Store  Store
	Logger hclog.Logger
}

func New(store Store, logger hclog.Logger) *Reconciler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reconciler{Store: store, Logger: logger}
}

// Reconcile ranks the shows of year from list. A show's rank is its 1-based
// list position; shows not in the list end up unranked. Misses are warned
// about and skipped.
func (r *Reconciler) Reconcile(ctx context.Context, year int, list []string, overrides map[string]string) (*Report, error) {
	shows, err := r.Store.ListByYear(ctx, year)
	if err != nil {
		return nil, &Error{Kind: KindStore, Msg: fmt.Sprintf("list year %d", year), Err: err}
	}

	rep := &Report{Year: year}
	byName := make(map[string]models.Show, len(shows))
	for _, s := range shows {
		if prev, dup := byName[s.Name]; dup {
			rep.Shadowed = appendOnce(rep.Shadowed, s.Name)
			if prev.Seq <= s.Seq {
				continue
			}
		}
		byName[s.Name] = s
	}
	for _, name := range rep.Shadowed {
		r.Logger.Warn("duplicate show name, ranking earliest only", "year", year, "name", name)
	}

	ranks := make(map[string]int, len(list))
	for i, display := range list {
		lookup := display
		if o, ok := overrides[display]; ok {
			lookup = o
		}
		m := Miss{Rank: i + 1, Display: display, Lookup: lookup}

		s, ok := byName[lookup]
		if !ok {
			rep.Misses = append(rep.Misses, m)
			r.Logger.Warn("no show found for rank", "year", year, "rank", m.Rank, "list", display, "db", lookup)
			continue
		}
		if _, taken := ranks[s.ID]; taken {
			rep.Repeated = append(rep.Repeated, m)
			r.Logger.Warn("show already ranked", "year", year, "rank", m.Rank, "list", display, "db", lookup)
			continue
		}
		ranks[s.ID] = m.Rank
	}

	if err := r.Store.ApplyRanks(ctx, year, ranks); err != nil {
		return nil, &Error{Kind: KindStore, Msg: fmt.Sprintf("apply ranks for %d", year), Err: err}
	}
	rep.Matched = len(ranks)
	r.Logger.Info("ranks applied", "year", year, "matched", rep.Matched, "listed", len(list))
	return rep, nil
}

// ReconcileAll reconciles every configured year in ascending order and
// stops at the first store failure.
func (r *Reconciler) ReconcileAll(ctx context.Context, cfg *Config) ([]Report, error) {
	var out []Report
	for _, year := range cfg.SortedYears() {
		rep, err := r.Reconcile(ctx, year, cfg.Years[year].Ranks, cfg.OverridesFor(year))
		if err != nil {
			return out, err
		}
		out = append(out, *rep)
	}
	return out, nil
}

func appendOnce(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
