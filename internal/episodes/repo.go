package episodes

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"showrank/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Upsert writes eps for showID in one transaction, keyed by TVMaze episode
// id. Existing rows keep their id and move to showID.
func (r *Repo) Upsert(ctx context.Context, showID string, eps []models.Episode) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin episodes: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO episodes (id, show_id, tvmaze_episode_id, name, season, number, airdate, summary, runtime, image_url, rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(tvmaze_episode_id) DO UPDATE SET
			show_id   = excluded.show_id,
			name      = excluded.name,
			season    = excluded.season,
			number    = excluded.number,
			airdate   = excluded.airdate,
			summary   = excluded.summary,
			runtime   = excluded.runtime,
			image_url = excluded.image_url,
			rating    = excluded.rating
	`)
	if err != nil {
		return fmt.Errorf("prepare upsert episode: %w", err)
	}
	defer stmt.Close()

	for _, e := range eps {
		if _, err := stmt.ExecContext(ctx,
			uuid.NewString(), showID, e.TVMazeEpisodeID, e.Name, e.Season, e.Number,
			e.Airdate, e.Summary, e.Runtime, e.ImageURL, e.Rating,
		); err != nil {
			return fmt.Errorf("upsert episode %d: %w", e.TVMazeEpisodeID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit episodes: %w", err)
	}
	return nil
}

// ListByShow returns a show's episodes ordered by season then number.
func (r *Repo) ListByShow(ctx context.Context, showID string) ([]models.Episode, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, show_id, tvmaze_episode_id, name, season, number, airdate, summary, runtime, image_url, rating
		FROM episodes
		WHERE show_id = ?
		ORDER BY season ASC, number ASC
	`, showID)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	out := []models.Episode{}
	for rows.Next() {
		var (
			e        models.Episode
			airdate  sql.NullTime
			summary  sql.NullString
			runtime  sql.NullInt64
			imageURL sql.NullString
			rating   sql.NullFloat64
		)
		if err := rows.Scan(
			&e.ID, &e.ShowID, &e.TVMazeEpisodeID, &e.Name, &e.Season, &e.Number,
			&airdate, &summary, &runtime, &imageURL, &rating,
		); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		if airdate.Valid {
			e.Airdate = &airdate.Time
		}
		if summary.Valid {
			e.Summary = &summary.String
		}
		if runtime.Valid {
			n := int(runtime.Int64)
			e.Runtime = &n
		}
		if imageURL.Valid {
			e.ImageURL = &imageURL.String
		}
		if rating.Valid {
			e.Rating = &rating.Float64
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
