package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Episode struct {
	ID              string     `json:"id"`
	ShowID          string     `json:"show_id"`
	TVMazeEpisodeID int        `json:"tvmaze_episode_id"`
	Name            string     `json:"name"`
	Season          int        `json:"season"`
	Number          int        `json:"number"`
	Airdate         *time.Time `json:"-"`
	Summary         *string    `json:"summary"`
	Runtime         *int       `json:"runtime"`
	ImageURL        *string    `json:"image_url"`
	Rating          *float64   `json:"rating"`
}

// AirdateString renders the airdate as YYYY-MM-DD, or nil.
func (e Episode) AirdateString() *string {
	if e.Airdate == nil {
		return nil
	}
	s := e.Airdate.UTC().Format("2006-01-02")
	return &s
}

// MarshalJSON emits the airdate as a date-only string.
func (e Episode) MarshalJSON() ([]byte, error) {
	type plain Episode
	return json.Marshal(struct {
		plain
		Airdate *string `json:"airdate"`
	}{plain(e), e.AirdateString()})
}

func (e *Episode) UnmarshalJSON(b []byte) error {
	type plain Episode
	aux := struct {
		*plain
		Airdate *string `json:"airdate"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	e.Airdate = nil
	if aux.Airdate != nil && *aux.Airdate != "" {
		t, err := time.Parse("2006-01-02", *aux.Airdate)
		if err != nil {
			return fmt.Errorf("parse airdate: %w", err)
		}
		e.Airdate = &t
	}
	return nil
}
