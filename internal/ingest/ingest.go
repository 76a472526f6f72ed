// Package ingest turns the hand-maintained shows CSV into validated show
// records and replaces the stored set with them.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"showrank/pkg/models"
)

// Kind classifies why an ingestion run failed. Every kind is fatal and is
// reported before the store is touched, except KindStore.
type Kind int

const (
	KindInput Kind = iota + 1
	KindEmpty
	KindHeader
	KindDescriptions
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindEmpty:
		return "empty"
	case KindHeader:
		return "header"
	case KindDescriptions:
		return "descriptions"
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
		return fmt.Sprintf("ingest %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("ingest %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure kind from err, or 0.
func KindOf(err error) Kind {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return 0
}

// Reject reasons counted in Result.Rejected.
const (
	RejectName  = "name"
	RejectTier  = "tier"
	RejectScore = "score"
)

// Options carries the data tables the parser validates against.
type Options struct {
	Columns     Columns
	Tiers       models.TierOrder
	DefaultYear int
}

func DefaultOptions() Options {
	return Options{
		Columns:     DefaultColumns(),
		Tiers:       models.DefaultTierOrder(),
		DefaultYear: 2025,
	}
}

type Result struct {
	Shows    []models.Show
	Accepted int
	// Rejected counts skipped rows per reason.
	Rejected map[string]int
}

// RejectedTotal is the number of skipped data rows.
func (r Result) RejectedTotal() int {
	n := 0
	for _, c := range r.Rejected {
		n += c
	}
	return n
}

// Parse validates content and returns the accepted shows in file order.
// It performs no I/O; descriptions may be nil.
func Parse(content string, descriptions map[string]string, opts Options) (*Result, error) {
	lines := splitLines(content)
	if len(lines) < 2 {
		return nil, &Error{Kind: KindEmpty, Msg: "CSV must have header + at least one row"}
	}

	header := ParseRow(lines[0])
	cols, missing := resolveLayout(header, opts.Columns)
	if len(missing) > 0 {
		return nil, &Error{
			Kind: KindHeader,
			Msg:  fmt.Sprintf("%s (missing: %s)", requiredColumnsMsg, strings.Join(missing, ", ")),
		}
	}

	res := &Result{
		Shows:    make([]models.Show, 0, len(lines)-1),
		Rejected: map[string]int{},
	}
	for _, line := range lines[1:] {
		show, reason := parseShow(ParseRow(line), cols, descriptions, opts)
		if reason != "" {
			res.Rejected[reason]++
			continue
		}
		show.Seq = len(res.Shows) + 1
		res.Shows = append(res.Shows, show)
	}
	res.Accepted = len(res.Shows)
	return res, nil
}

func parseShow(row []string, cols layout, descriptions map[string]string, opts Options) (models.Show, string) {
	name := fieldAt(row, cols.name)
	if name == "" {
		return models.Show{}, RejectName
	}
	tier := fieldAt(row, cols.tier)
	if tier == "" || !opts.Tiers.Contains(tier) {
		return models.Show{}, RejectTier
	}
	score, ok := ParseScore(fieldAt(row, cols.score))
	if !ok {
		return models.Show{}, RejectScore
	}

	return models.Show{
		Name:        name,
		Season:      ParseSeason(fieldAt(row, cols.season)),
		Network:     fieldAt(row, cols.network),
		Tags:        ParseTags(fieldAt(row, cols.tags)),
		Score:       score,
		Tier:        tier,
		Year:        ParseYear(fieldAt(row, cols.year), opts.DefaultYear),
		Category:    ParseCategory(fieldAt(row, cols.category)),
		Description: describe(descriptions, name),
	}, ""
}

// splitLines splits on \n or \r\n and drops blank lines.
func splitLines(content string) []string {
	content = strings.TrimPrefix(content, "\ufeff")
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Store is the persistence the driver needs. ReplaceAll must swap the
// whole show set atomically.
type Store interface {
	ReplaceAll(ctx context.Context, shows []models.Show) error
}

// Input names the files one run reads.
type Input struct {
	CSVPath          string
	DescriptionsPath string
}

// Run reads in, validates every row and replaces the stored shows. All
// input problems are reported before the store is touched.
func Run(ctx context.Context, store Store, in Input, opts Options, logger hclog.Logger) (*Result, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	b, err := os.ReadFile(in.CSVPath)
	if err != nil {
		msg := "cannot read " + in.CSVPath
		if errors.Is(err, os.ErrNotExist) {
			msg = "missing " + in.CSVPath
		}
		return nil, &Error{Kind: KindInput, Msg: msg, Err: err}
	}

	descriptions, err := LoadDescriptions(in.DescriptionsPath)
	if err != nil {
		return nil, &Error{Kind: KindDescriptions, Msg: "cannot load descriptions", Err: err}
	}
	logger.Debug("loaded descriptions", "path", in.DescriptionsPath, "count", len(descriptions))

	res, err := Parse(string(b), descriptions, opts)
	if err != nil {
		return nil, err
	}

	if err := store.ReplaceAll(ctx, res.Shows); err != nil {
		return nil, &Error{Kind: KindStore, Msg: "replace shows", Err: err}
	}

	logger.Info("seeded shows", "accepted", res.Accepted, "rejected", res.RejectedTotal())
	return res, nil
}
