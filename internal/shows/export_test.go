package shows

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showrank/internal/ingest"
	"showrank/pkg/models"
)

func TestWriteCSV_ReingestsIdentically(t *testing.T) {
	ctx := context.Background()
	movie := show("Sinners", "A", 8.8, 2025, "", "Enjoyed")
	movie.Category = models.CategoryMovies
	movie.Season = 0
	repo := newRepo(t,
		show("Task", "S", 9.6, 2025, "HBO", "Feel Something", "Zeitgeist"),
		show("Squid Game: The Challenge", "D", 5.5, 2025, "Netflix, Inc."),
		movie,
	)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, all))

	res, err := ingest.Parse(buf.String(), nil, ingest.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, res.Accepted)
	for i, got := range res.Shows {
		want := all[i]
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Season, got.Season)
		assert.Equal(t, want.Network, got.Network)
		assert.Equal(t, want.Tags, got.Tags)
		assert.Equal(t, want.Score, got.Score)
		assert.Equal(t, want.Tier, got.Tier)
		assert.Equal(t, want.Year, got.Year)
		assert.Equal(t, want.Category, got.Category)
	}
}
