package models

import "time"

const (
	CategoryTV     = "tv"
	CategoryMovies = "movies"
)

// Show is one ranked TV season or movie. AbsoluteRank is nil until the
// rank reconciler stamps it; consumers order unranked shows last.
type Show struct {
	ID           string    `json:"id"`
	Seq          int       `json:"-"` // ingestion order within the last seed run
	Name         string    `json:"name"`
	Season       int       `json:"season"`
	Network      string    `json:"network"`
	Tags         []string  `json:"tags"`
	Score        float64   `json:"score"`
	Tier         string    `json:"tier"`
	Year         int       `json:"year"`
	Category     string    `json:"category"`
	Description  *string   `json:"description"`
	AbsoluteRank *int      `json:"absolute_rank"`
	CoverURL     *string   `json:"cover_url"`
	TVMazeID     *int      `json:"tvmaze_id"`
	TVMazeRating *float64  `json:"tvmaze_rating"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
