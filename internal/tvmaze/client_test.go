package tvmaze

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search/shows", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "showrank-test/1.0", r.Header.Get("User-Agent"))
		switch r.URL.Query().Get("q") {
		case "Severance":
			_, _ = w.Write([]byte(`[
				{"score": 0.9, "show": {"id": 44933, "name": "Severance",
					"image": {"medium": "http://img/m.jpg", "original": "http://img/o.jpg"},
					"rating": {"average": 8.4}}},
				{"score": 0.2, "show": {"id": 1, "name": "Other"}}
			]`))
		case "Medium Only":
			_, _ = w.Write([]byte(`[{"show": {"id": 7, "name": "Medium Only", "image": {"medium": "http://img/m.jpg"}, "rating": {"average": null}}}]`))
		case "Broken":
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})
	mux.HandleFunc("/shows/44933/episodes", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Good News About Hell", "season": 1, "number": 1, "airdate": "2022-02-18",
				"summary": "<p>Mark.</p>", "runtime": 57, "image": {"medium": "http://ep/m.jpg"}, "rating": {"average": 8.1}},
			{"id": 2, "name": "Special", "season": 1, "number": null, "airdate": "", "image": null, "rating": {"average": null}}
		]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchShow(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL+"/", "showrank-test/1.0", time.Second)
	ctx := context.Background()

	m, err := c.SearchShow(ctx, "Severance")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 44933, m.ID)
	assert.Equal(t, "http://img/o.jpg", m.ImageURL)
	require.NotNil(t, m.Rating)
	assert.Equal(t, 8.4, *m.Rating)

	m, err = c.SearchShow(ctx, "Medium Only")
	require.NoError(t, err)
	assert.Equal(t, "http://img/m.jpg", m.ImageURL)
	assert.Nil(t, m.Rating)

	m, err = c.SearchShow(ctx, "Nothing")
	require.NoError(t, err)
	assert.Nil(t, m)

	_, err = c.SearchShow(ctx, "Broken")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.Status)
}

func TestEpisodes(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL, "showrank-test/1.0", time.Second)

	eps, err := c.Episodes(context.Background(), 44933)
	require.NoError(t, err)
	require.Len(t, eps, 2)

	first := eps[0]
	assert.Equal(t, 1, first.TVMazeEpisodeID)
	assert.Equal(t, 1, first.Number)
	require.NotNil(t, first.AirdateString())
	assert.Equal(t, "2022-02-18", *first.AirdateString())
	assert.Equal(t, 57, *first.Runtime)
	assert.Equal(t, "http://ep/m.jpg", *first.ImageURL)
	assert.Equal(t, 8.1, *first.Rating)

	special := eps[1]
	assert.Equal(t, 0, special.Number)
	assert.Nil(t, special.Airdate)
	assert.Nil(t, special.ImageURL)
	assert.Nil(t, special.Rating)

	_, err = c.Episodes(context.Background(), 999)
	assert.Error(t, err)
}
