package shows

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"showrank/pkg/models"
)

type Repo struct {
	DB    *sql.DB
	Tiers models.TierOrder
}

func NewRepo(db *sql.DB, tiers models.TierOrder) *Repo {
	if len(tiers) == 0 {
		tiers = models.DefaultTierOrder()
	}
	return &Repo{DB: db, Tiers: tiers}
}

const showColumns = `id, seq, name, season, network, tags, score, tier, year, category,
	description, absolute_rank, cover_url, tvmaze_id, tvmaze_rating, created_at, updated_at`

// ReplaceAll deletes every show and inserts shows in their given order, in
// one transaction. On error the previous set is left untouched.
func (r *Repo) ReplaceAll(ctx context.Context, shows []models.Show) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := r.ReplaceAllTx(ctx, tx, shows); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// ReplaceAllTx is ReplaceAll inside a caller-owned transaction.
func (r *Repo) ReplaceAllTx(ctx context.Context, tx *sql.Tx, shows []models.Show) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM shows`); err != nil {
		return fmt.Errorf("delete shows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO shows (id, seq, name, season, network, tags, score, tier, year, category,
			description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert show: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i, s := range shows {
		tags := s.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("encode tags for %q: %w", s.Name, err)
		}
		seq := s.Seq
		if seq == 0 {
			seq = i + 1
		}
		if _, err := stmt.ExecContext(ctx,
			uuid.NewString(), seq, s.Name, s.Season, s.Network, string(tagsJSON),
			s.Score, s.Tier, s.Year, s.Category, s.Description, now, now,
		); err != nil {
			return fmt.Errorf("insert show %q: %w", s.Name, err)
		}
	}
	return nil
}

// ListByYear returns the shows of one year partition in ingestion order.
func (r *Repo) ListByYear(ctx context.Context, year int) ([]models.Show, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+showColumns+` FROM shows WHERE year = ? ORDER BY seq ASC`, year)
	if err != nil {
		return nil, fmt.Errorf("list by year: %w", err)
	}
	return collectShows(rows)
}

// ListAll returns every show in ingestion order.
func (r *Repo) ListAll(ctx context.Context) ([]models.Show, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+showColumns+` FROM shows ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list all: %w", err)
	}
	return collectShows(rows)
}

// Years returns the distinct year partitions present, ascending.
func (r *Repo) Years(ctx context.Context) ([]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT DISTINCT year FROM shows ORDER BY year ASC`)
	if err != nil {
		return nil, fmt.Errorf("list years: %w", err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		out = append(out, y)
	}
	return out, rows.Err()
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.Show, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+showColumns+` FROM shows WHERE id = ?`, id)
	s, err := scanShow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan getByID: %w", err)
	}
	return s, nil
}

// ApplyRanks clears every rank in the year partition and then sets
// ranks (show id -> rank), in one transaction.
func (r *Repo) ApplyRanks(ctx context.Context, year int, ranks map[string]int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ranks: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		`UPDATE shows SET absolute_rank = NULL, updated_at = ? WHERE year = ? AND absolute_rank IS NOT NULL`,
		now, year,
	); err != nil {
		return fmt.Errorf("clear ranks: %w", err)
	}

	for id, rank := range ranks {
		res, err := tx.ExecContext(ctx,
			`UPDATE shows SET absolute_rank = ?, updated_at = ? WHERE id = ? AND year = ?`,
			rank, now, id, year,
		)
		if err != nil {
			return fmt.Errorf("set rank %d: %w", rank, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("set rank %d: show %s not in year %d", rank, id, year)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ranks: %w", err)
	}
	return nil
}

func (r *Repo) Count(ctx context.Context, q ListQuery) (int, error) {
	sqlStr, args := buildListSQL(q, r.Tiers, true)
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	var total int
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("count scan: %w", err)
	}
	return total, nil
}

func (r *Repo) List(ctx context.Context, q ListQuery) ([]models.Show, error) {
	sqlStr, args := buildListSQL(q, r.Tiers, false)
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list query: %w", err)
	}
	return collectShows(rows)
}

// Facets are the distinct filter values for a set of shows.
type Facets struct {
	Networks []string `json:"networks"`
	Tags     []string `json:"tags"`
}

// Facets lists the distinct non-empty networks and tags of the shows
// matching year and category (zero values match everything), sorted with
// English collation.
func (r *Repo) Facets(ctx context.Context, year int, category string) (*Facets, error) {
	where, args := facetWhere(year, category)

	networks, err := r.distinct(ctx,
		`SELECT DISTINCT network FROM shows WHERE network <> ''`+where, args)
	if err != nil {
		return nil, fmt.Errorf("facet networks: %w", err)
	}
	tags, err := r.distinct(ctx,
		`SELECT DISTINCT json_each.value FROM shows, json_each(shows.tags) WHERE json_each.value <> ''`+where, args)
	if err != nil {
		return nil, fmt.Errorf("facet tags: %w", err)
	}

	c := collate.New(language.English, collate.IgnoreCase)
	c.SortStrings(networks)
	c.SortStrings(tags)
	return &Facets{Networks: networks, Tags: tags}, nil
}

func facetWhere(year int, category string) (string, []any) {
	var (
		where string
		args  []any
	)
	if year != 0 {
		where += " AND shows.year = ?"
		args = append(args, year)
	}
	if c := strings.TrimSpace(category); c != "" {
		where += " AND shows.category = ?"
		args = append(args, strings.ToLower(c))
	}
	return where, args
}

func (r *Repo) distinct(ctx context.Context, query string, args []any) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ListForCovers returns shows without a cover (every show when force),
// ordered by name.
func (r *Repo) ListForCovers(ctx context.Context, force bool) ([]models.Show, error) {
	q := `SELECT ` + showColumns + ` FROM shows`
	if !force {
		q += ` WHERE cover_url IS NULL`
	}
	rows, err := r.DB.QueryContext(ctx, q+` ORDER BY name ASC, seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list for covers: %w", err)
	}
	return collectShows(rows)
}

// CoverUpdate is the metadata a successful TVMaze match writes back.
type CoverUpdate struct {
	CoverURL     string
	TVMazeID     int
	TVMazeRating *float64
}

func (r *Repo) UpdateCover(ctx context.Context, id string, u CoverUpdate) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE shows
		SET cover_url = ?, tvmaze_id = ?, tvmaze_rating = ?, updated_at = ?
		WHERE id = ?
	`, u.CoverURL, u.TVMazeID, u.TVMazeRating, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update cover: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update cover: show %s not found", id)
	}
	return nil
}

// ListForEpisodes returns shows with a TVMaze id, ordered by name. Unless
// force, shows that already have episodes are left out.
func (r *Repo) ListForEpisodes(ctx context.Context, force bool) ([]models.Show, error) {
	q := `SELECT ` + showColumns + ` FROM shows WHERE tvmaze_id IS NOT NULL`
	if !force {
		q += ` AND NOT EXISTS (SELECT 1 FROM episodes e WHERE e.show_id = shows.id)`
	}
	rows, err := r.DB.QueryContext(ctx, q+` ORDER BY name ASC, seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list for episodes: %w", err)
	}
	return collectShows(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanShow(row scanner) (*models.Show, error) {
	var (
		s        models.Show
		tagsJSON string
		desc     sql.NullString
		rank     sql.NullInt64
		cover    sql.NullString
		tvmazeID sql.NullInt64
		rating   sql.NullFloat64
	)
	if err := row.Scan(
		&s.ID, &s.Seq, &s.Name, &s.Season, &s.Network, &tagsJSON, &s.Score, &s.Tier, &s.Year,
		&s.Category, &desc, &rank, &cover, &tvmazeID, &rating, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if desc.Valid {
		s.Description = &desc.String
	}
	if rank.Valid {
		n := int(rank.Int64)
		s.AbsoluteRank = &n
	}
	if cover.Valid {
		s.CoverURL = &cover.String
	}
	if tvmazeID.Valid {
		n := int(tvmazeID.Int64)
		s.TVMazeID = &n
	}
	if rating.Valid {
		s.TVMazeRating = &rating.Float64
	}

	if err := json.Unmarshal([]byte(tagsJSON), &s.Tags); err != nil {
		return nil, fmt.Errorf("decode tags for %s: %w", s.ID, err)
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	return &s, nil
}

func collectShows(rows *sql.Rows) ([]models.Show, error) {
	defer rows.Close()

	out := []models.Show{}
	for rows.Next() {
		s, err := scanShow(rows)
		if err != nil {
			return nil, fmt.Errorf("list scan: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
