package spots

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"showrank/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// ReplaceAll swaps the stored spots for spots in one transaction.
func (r *Repo) ReplaceAll(ctx context.Context, spots []models.Spot) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin spots: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := r.ReplaceAllTx(ctx, tx, spots); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit spots: %w", err)
	}
	return nil
}

// ReplaceAllTx is ReplaceAll inside a caller-owned transaction.
func (r *Repo) ReplaceAllTx(ctx context.Context, tx *sql.Tx, spots []models.Spot) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM spots`); err != nil {
		return fmt.Errorf("delete spots: %w", err)
	}

	now := time.Now().UTC()
	for _, s := range spots {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO spots (id, name, tagline, neighborhood, city, latitude, longitude, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.NewString(), s.Name, s.Tagline, s.Neighborhood, s.City, s.Latitude, s.Longitude, now); err != nil {
			return fmt.Errorf("insert spot %q: %w", s.Name, err)
		}
	}
	return nil
}

// List returns spots in creation order.
func (r *Repo) List(ctx context.Context) ([]models.Spot, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, tagline, neighborhood, city, latitude, longitude, created_at
		FROM spots
		ORDER BY created_at ASC, rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}
	defer rows.Close()

	out := []models.Spot{}
	for rows.Next() {
		var (
			s            models.Spot
			neighborhood sql.NullString
			lat, lng     sql.NullFloat64
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Tagline, &neighborhood, &s.City, &lat, &lng, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan spot: %w", err)
		}
		if neighborhood.Valid {
			s.Neighborhood = &neighborhood.String
		}
		if lat.Valid {
			s.Latitude = &lat.Float64
		}
		if lng.Valid {
			s.Longitude = &lng.Float64
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// LoadSeed reads the spots seed list. Every spot needs a name, a tagline
// and a city.
func LoadSeed(path string) ([]models.Spot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spots %s: %w", path, err)
	}
	var spots []models.Spot
	if err := yaml.Unmarshal(b, &spots); err != nil {
		return nil, fmt.Errorf("decode spots %s: %w", path, err)
	}
	for i, s := range spots {
		if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Tagline) == "" || strings.TrimSpace(s.City) == "" {
			return nil, fmt.Errorf("spot %d in %s: name, tagline and city are required", i+1, path)
		}
	}
	return spots, nil
}
