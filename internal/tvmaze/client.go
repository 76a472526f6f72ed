// Package tvmaze is a small client for the public TVMaze API
// (https://www.tvmaze.com/api). No API key is needed.
package tvmaze

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"showrank/pkg/models"
)

const DefaultBaseURL = "https://api.tvmaze.com"

type Client struct {
	Client    *http.Client
	BaseURL   string
	UserAgent string
}

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &Client{
		Client:    &http.Client{Timeout: timeout},
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: userAgent,
	}
}

// StatusError is returned for any non-200 response.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tvmaze: %s: status %d", e.URL, e.Status)
}

type image struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

func (i *image) best() string {
	if i == nil {
		return ""
	}
	if i.Original != "" {
		return i.Original
	}
	return i.Medium
}

type rating struct {
	Average *float64 `json:"average"`
}

func (r *rating) value() *float64 {
	if r == nil || r.Average == nil || math.IsNaN(*r.Average) || math.IsInf(*r.Average, 0) {
		return nil
	}
	v := *r.Average
	return &v
}

type searchHit struct {
	Score float64 `json:"score"`
	Show  *struct {
		ID     int     `json:"id"`
		Name   string  `json:"name"`
		Image  *image  `json:"image"`
		Rating *rating `json:"rating"`
	} `json:"show"`
}

type episode struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Season  int     `json:"season"`
	Number  *int    `json:"number"`
	Airdate string  `json:"airdate"`
	Summary *string `json:"summary"`
	Runtime *int    `json:"runtime"`
	Image   *image  `json:"image"`
	Rating  *rating `json:"rating"`
}

// Match is the first search hit for a show name.
type Match struct {
	ID       int
	Name     string
	ImageURL string // original, else medium; empty when TVMaze has none
	Rating   *float64
}

// SearchShow returns the first hit for name, or nil when there is none.
func (c *Client) SearchShow(ctx context.Context, name string) (*Match, error) {
	u := c.BaseURL + "/search/shows?" + url.Values{"q": {name}}.Encode()

	var hits []searchHit
	if err := c.getJSON(ctx, u, &hits); err != nil {
		return nil, err
	}
	if len(hits) == 0 || hits[0].Show == nil {
		return nil, nil
	}
	s := hits[0].Show
	return &Match{
		ID:       s.ID,
		Name:     s.Name,
		ImageURL: s.Image.best(),
		Rating:   s.Rating.value(),
	}, nil
}

// Episodes lists every episode of the TVMaze show id. Specials without a
// number are numbered 0.
func (c *Client) Episodes(ctx context.Context, id int) ([]models.Episode, error) {
	u := fmt.Sprintf("%s/shows/%d/episodes", c.BaseURL, id)

	var raw []episode
	if err := c.getJSON(ctx, u, &raw); err != nil {
		return nil, err
	}

	out := make([]models.Episode, 0, len(raw))
	for _, e := range raw {
		ep := models.Episode{
			TVMazeEpisodeID: e.ID,
			Name:            e.Name,
			Season:          e.Season,
			Airdate:         parseAirdate(e.Airdate),
			Summary:         e.Summary,
			Runtime:         e.Runtime,
			Rating:          e.Rating.value(),
		}
		if e.Number != nil {
			ep.Number = *e.Number
		}
		if img := e.Image.best(); img != "" {
			ep.ImageURL = &img
		}
		out = append(out, ep)
	}
	return out, nil
}

func parseAirdate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("tvmaze: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("tvmaze: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: u, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tvmaze: decode: %w", err)
	}
	return nil
}
