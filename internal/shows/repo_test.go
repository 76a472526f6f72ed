package shows

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showrank/internal/testdb"
	"showrank/pkg/models"
)

func show(name, tier string, score float64, year int, network string, tags ...string) models.Show {
	return models.Show{
		Name:     name,
		Season:   1,
		Network:  network,
		Tags:     tags,
		Score:    score,
		Tier:     tier,
		Year:     year,
		Category: models.CategoryTV,
	}
}

func newRepo(t *testing.T, shows ...models.Show) *Repo {
	t.Helper()
	repo := NewRepo(testdb.Open(t), nil)
	require.NoError(t, repo.ReplaceAll(context.Background(), shows))
	return repo
}

func names(shows []models.Show) []string {
	out := make([]string, len(shows))
	for i, s := range shows {
		out[i] = s.Name
	}
	return out
}

func idsByName(t *testing.T, repo *Repo, year int) map[string]string {
	t.Helper()
	list, err := repo.ListByYear(context.Background(), year)
	require.NoError(t, err)
	out := map[string]string{}
	for _, s := range list {
		out[s.Name] = s.ID
	}
	return out
}

func TestReplaceAll_KeepsOrderAndReplaces(t *testing.T) {
	ctx := context.Background()
	desc := "about"
	first := show("Zeta", "A", 8, 2025, "HBO", "drama")
	first.Description = &desc
	repo := newRepo(t, first, show("Alpha", "B", 7, 2025, "NBC"), show("Zeta", "C", 5, 2025, "HBO"))

	got, err := repo.ListByYear(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zeta", "Alpha", "Zeta"}, names(got))
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Seq, got[1].Seq, got[2].Seq})
	assert.NotEmpty(t, got[0].ID)
	assert.NotEqual(t, got[0].ID, got[2].ID)
	require.NotNil(t, got[0].Description)
	assert.Equal(t, "about", *got[0].Description)
	assert.Equal(t, []string{"drama"}, got[0].Tags)
	assert.Equal(t, []string{}, got[1].Tags)
	assert.Nil(t, got[1].AbsoluteRank)

	require.NoError(t, repo.ReplaceAll(ctx, []models.Show{show("Only", "S", 9, 2025, "")}))
	total, err := repo.Count(ctx, ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestReplaceAll_FailureKeepsPreviousSet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, show("Keep", "A", 8, 2025, "HBO"))

	bad := show("Bad", "A", 42, 2025, "HBO") // violates the score check
	err := repo.ReplaceAll(ctx, []models.Show{show("New", "A", 8, 2025, "HBO"), bad})
	require.Error(t, err)

	got, err := repo.ListByYear(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, []string{"Keep"}, names(got))
}

func TestReplaceAll_RollsBackOnInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM shows`).WillReturnResult(sqlmock.NewResult(0, 3))
	prep := mock.ExpectPrepare(`INSERT INTO shows`)
	prep.ExpectExec().WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	repo := NewRepo(db, nil)
	err = repo.ReplaceAll(context.Background(), []models.Show{show("A", "A", 5, 2025, "")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert show")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, show("Foo", "A", 8, 2025, "HBO"))
	id := idsByName(t, repo, 2025)["Foo"]

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Foo", got.Name)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestScan_CorruptTagsFails(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, show("Foo", "A", 8, 2025, "HBO", "drama"), show("Bar", "B", 7, 2025, "NBC"))
	id := idsByName(t, repo, 2025)["Foo"]

	_, err := repo.DB.ExecContext(ctx, `UPDATE shows SET tags = 'not json' WHERE id = ?`, id)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode tags for "+id)

	_, err = repo.List(ctx, ListQuery{Year: 2025})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode tags")
}

func TestScan_NullTagsReadAsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, show("Foo", "A", 8, 2025, "HBO"))
	id := idsByName(t, repo, 2025)["Foo"]

	_, err := repo.DB.ExecContext(ctx, `UPDATE shows SET tags = 'null' WHERE id = ?`, id)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Tags)
}

func TestApplyRanks_ClearsPartitionOnly(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t,
		show("A", "A", 8, 2025, ""),
		show("B", "A", 8, 2025, ""),
		show("C", "A", 8, 2026, ""),
	)
	ids25 := idsByName(t, repo, 2025)
	ids26 := idsByName(t, repo, 2026)

	require.NoError(t, repo.ApplyRanks(ctx, 2025, map[string]int{ids25["A"]: 1, ids25["B"]: 2}))
	require.NoError(t, repo.ApplyRanks(ctx, 2026, map[string]int{ids26["C"]: 1}))
	require.NoError(t, repo.ApplyRanks(ctx, 2025, map[string]int{ids25["B"]: 1}))

	a, _ := repo.GetByID(ctx, ids25["A"])
	b, _ := repo.GetByID(ctx, ids25["B"])
	c, _ := repo.GetByID(ctx, ids26["C"])
	assert.Nil(t, a.AbsoluteRank)
	require.NotNil(t, b.AbsoluteRank)
	assert.Equal(t, 1, *b.AbsoluteRank)
	require.NotNil(t, c.AbsoluteRank)
	assert.Equal(t, 1, *c.AbsoluteRank)
}

func TestApplyRanks_WrongPartitionRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, show("A", "A", 8, 2025, ""), show("C", "A", 8, 2026, ""))
	ids25 := idsByName(t, repo, 2025)
	ids26 := idsByName(t, repo, 2026)

	require.NoError(t, repo.ApplyRanks(ctx, 2025, map[string]int{ids25["A"]: 1}))
	err := repo.ApplyRanks(ctx, 2025, map[string]int{ids26["C"]: 1})
	require.Error(t, err)

	a, _ := repo.GetByID(ctx, ids25["A"])
	require.NotNil(t, a.AbsoluteRank, "failed apply must not clear existing ranks")
	assert.Equal(t, 1, *a.AbsoluteRank)
}

func TestList_FiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t,
		show("Severance", "S", 9.5, 2025, "Apple TV+", "drama", "sci-fi"),
		show("Andor", "A", 9.0, 2025, "Disney+", "sci-fi"),
		show("Silo", "A", 7.5, 2025, "Apple TV+", "sci-fi", "mystery"),
		show("Wednesday", "C", 6.0, 2025, "Netflix", "comedy"),
		show("Beta", "A", 9.0, 2025, "Netflix", "drama"),
		show("Pitt", "S", 9.8, 2026, "Max", "drama"),
	)
	ids := idsByName(t, repo, 2025)
	require.NoError(t, repo.ApplyRanks(ctx, 2025, map[string]int{ids["Silo"]: 1, ids["Andor"]: 2}))

	tests := []struct {
		name string
		q    ListQuery
		want []string
	}{
		{
			name: "absolute rank default, nulls last by name",
			q:    ListQuery{Year: 2025},
			want: []string{"Silo", "Andor", "Beta", "Severance", "Wednesday"},
		},
		{
			name: "absolute rank ignores desc",
			q:    ListQuery{Year: 2025, Sort: SortAbsoluteRank, Order: "desc"},
			want: []string{"Silo", "Andor", "Beta", "Severance", "Wednesday"},
		},
		{
			name: "score desc ties by name",
			q:    ListQuery{Year: 2025, Sort: SortScore, Order: "desc"},
			want: []string{"Severance", "Andor", "Beta", "Silo", "Wednesday"},
		},
		{
			name: "score asc",
			q:    ListQuery{Year: 2025, Sort: SortScore, Order: "asc"},
			want: []string{"Wednesday", "Silo", "Andor", "Beta", "Severance"},
		},
		{
			name: "tier then score",
			q:    ListQuery{Year: 2025, Sort: SortTierScore, Order: "desc"},
			want: []string{"Severance", "Andor", "Beta", "Silo", "Wednesday"},
		},
		{
			name: "tier set",
			q:    ListQuery{Tiers: []string{"S", "C"}, Sort: SortScore, Order: "desc"},
			want: []string{"Pitt", "Severance", "Wednesday"},
		},
		{
			name: "network set",
			q:    ListQuery{Networks: []string{"Apple TV+"}, Sort: SortScore, Order: "desc"},
			want: []string{"Severance", "Silo"},
		},
		{
			name: "tag overlap",
			q:    ListQuery{Tags: []string{"mystery", "comedy"}, Sort: SortScore, Order: "asc"},
			want: []string{"Wednesday", "Silo"},
		},
		{
			name: "paging",
			q:    ListQuery{Year: 2025, Limit: 2, Offset: 1},
			want: []string{"Andor", "Beta"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}

	total, err := repo.Count(ctx, ListQuery{Tags: []string{"sci-fi"}})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestFacets(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t,
		show("A", "A", 8, 2025, "netflix", "drama", "Comedy"),
		show("B", "A", 8, 2025, "HBO", "drama", "anthology"),
		show("C", "A", 8, 2025, "", "thriller"),
		show("D", "A", 8, 2026, "Max", "zombie"),
	)

	f, err := repo.Facets(ctx, 2025, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"HBO", "netflix"}, f.Networks)
	assert.Equal(t, []string{"anthology", "Comedy", "drama", "thriller"}, f.Tags)

	all, err := repo.Facets(ctx, 0, "")
	require.NoError(t, err)
	assert.Contains(t, all.Networks, "Max")
	assert.Contains(t, all.Tags, "zombie")

	movies, err := repo.Facets(ctx, 0, "movies")
	require.NoError(t, err)
	assert.Empty(t, movies.Networks)
	assert.Empty(t, movies.Tags)
}

func TestCoverAndEpisodeCandidates(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t,
		show("Silo", "A", 8, 2025, ""),
		show("Andor", "A", 8, 2025, ""),
		show("Beef", "A", 8, 2025, ""),
	)
	ids := idsByName(t, repo, 2025)

	todo, err := repo.ListForCovers(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Andor", "Beef", "Silo"}, names(todo))

	rating := 8.1
	require.NoError(t, repo.UpdateCover(ctx, ids["Andor"], CoverUpdate{CoverURL: "http://img/andor.jpg", TVMazeID: 42, TVMazeRating: &rating}))
	require.NoError(t, repo.UpdateCover(ctx, ids["Silo"], CoverUpdate{CoverURL: "http://img/silo.jpg", TVMazeID: 7}))
	require.Error(t, repo.UpdateCover(ctx, "missing", CoverUpdate{CoverURL: "x", TVMazeID: 1}))

	todo, err = repo.ListForCovers(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Beef"}, names(todo))

	forced, err := repo.ListForCovers(ctx, true)
	require.NoError(t, err)
	assert.Len(t, forced, 3)

	andor, err := repo.GetByID(ctx, ids["Andor"])
	require.NoError(t, err)
	require.NotNil(t, andor.CoverURL)
	assert.Equal(t, "http://img/andor.jpg", *andor.CoverURL)
	require.NotNil(t, andor.TVMazeID)
	assert.Equal(t, 42, *andor.TVMazeID)
	require.NotNil(t, andor.TVMazeRating)
	assert.Equal(t, 8.1, *andor.TVMazeRating)

	_, err = repo.DB.ExecContext(ctx,
		`INSERT INTO episodes (id, show_id, tvmaze_episode_id, name, season, number) VALUES ('e1', ?, 1, 'Pilot', 1, 1)`,
		ids["Silo"])
	require.NoError(t, err)

	pending, err := repo.ListForEpisodes(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Andor"}, names(pending))

	all, err := repo.ListForEpisodes(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Andor", "Silo"}, names(all))
}
