package enrich

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showrank/internal/shows"
	"showrank/internal/tvmaze"
	"showrank/pkg/models"
)

type countingProgress struct {
	mu      sync.Mutex
	total   int
	ticks   int
	started bool
	done    bool
}

func (p *countingProgress) Start(total int) { p.total, p.started = total, true }
func (p *countingProgress) Tick()           { p.mu.Lock(); p.ticks++; p.mu.Unlock() }
func (p *countingProgress) Finish()         { p.done = true }

func TestRun_WindowsAndCounts(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	var inFlight, peak int32
	progress := &countingProgress{}

	st, err := run(context.Background(), Window{Size: 4, Progress: progress}, items,
		func(_ context.Context, v int) (int, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)

			switch {
			case v%3 == 0:
				return 0, errors.New("boom")
			case v%2 == 0:
				return 0, nil
			default:
				return v, nil
			}
		})
	require.NoError(t, err)

	assert.LessOrEqual(t, peak, int32(4))
	assert.Equal(t, Stats{Total: 9, Updated: 3, Skipped: 3, Failed: 3, Written: 1 + 5 + 7}, st)
	assert.True(t, progress.started)
	assert.True(t, progress.done)
	assert.Equal(t, 9, progress.total)
	assert.Equal(t, 9, progress.ticks)
}

func TestRun_DelayBetweenWindows(t *testing.T) {
	start := time.Now()
	_, err := run(context.Background(), Window{Size: 2, Delay: 20 * time.Millisecond}, []int{1, 2, 3, 4, 5},
		func(context.Context, int) (int, error) { return 1, nil })
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	st, err := run(ctx, Window{Size: 1, Delay: time.Hour}, []int{1, 2, 3},
		func(context.Context, int) (int, error) {
			calls++
			cancel()
			return 1, nil
		})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, st.Updated)
}

type fakeShows struct {
	mu       sync.Mutex
	list     []models.Show
	covers   map[string]shows.CoverUpdate
	episodes map[string][]models.Episode
	force    bool
}

func (f *fakeShows) ListForCovers(_ context.Context, force bool) ([]models.Show, error) {
	f.force = force
	return f.list, nil
}

func (f *fakeShows) UpdateCover(_ context.Context, id string, u shows.CoverUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.covers == nil {
		f.covers = map[string]shows.CoverUpdate{}
	}
	f.covers[id] = u
	return nil
}

func (f *fakeShows) ListForEpisodes(_ context.Context, force bool) ([]models.Show, error) {
	f.force = force
	return f.list, nil
}

func (f *fakeShows) Upsert(_ context.Context, showID string, eps []models.Episode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.episodes == nil {
		f.episodes = map[string][]models.Episode{}
	}
	f.episodes[showID] = eps
	return nil
}

type fakeTVMaze struct {
	matches  map[string]*tvmaze.Match
	episodes map[int][]models.Episode
}

func (f *fakeTVMaze) SearchShow(_ context.Context, name string) (*tvmaze.Match, error) {
	if name == "Broken" {
		return nil, &tvmaze.StatusError{URL: "x", Status: 500}
	}
	return f.matches[name], nil
}

func (f *fakeTVMaze) Episodes(_ context.Context, id int) ([]models.Episode, error) {
	eps, ok := f.episodes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return eps, nil
}

func TestCovers(t *testing.T) {
	rating := 8.4
	store := &fakeShows{list: []models.Show{
		{ID: "1", Name: "Severance"},
		{ID: "2", Name: "No Image"},
		{ID: "3", Name: "Unknown"},
		{ID: "4", Name: "Broken"},
	}}
	client := &fakeTVMaze{matches: map[string]*tvmaze.Match{
		"Severance": {ID: 44933, ImageURL: "http://img/o.jpg", Rating: &rating},
		"No Image":  {ID: 5},
	}}

	c := &Covers{Store: store, Client: client, Window: Window{Size: 2}}
	st, err := c.Run(context.Background(), true)
	require.NoError(t, err)

	assert.True(t, store.force)
	assert.Equal(t, Stats{Total: 4, Updated: 1, Skipped: 2, Failed: 1, Written: 1}, st)
	require.Contains(t, store.covers, "1")
	assert.Equal(t, shows.CoverUpdate{CoverURL: "http://img/o.jpg", TVMazeID: 44933, TVMazeRating: &rating}, store.covers["1"])
	assert.Len(t, store.covers, 1)
}

func TestEpisodes(t *testing.T) {
	id1, id2, id3 := 1, 2, 3
	store := &fakeShows{list: []models.Show{
		{ID: "a", Name: "Silo", TVMazeID: &id1},
		{ID: "b", Name: "Andor", TVMazeID: &id2},
		{ID: "c", Name: "Gone", TVMazeID: &id3},
	}}
	client := &fakeTVMaze{episodes: map[int][]models.Episode{
		1: {{TVMazeEpisodeID: 10}, {TVMazeEpisodeID: 11}},
		2: {},
	}}

	e := &Episodes{Shows: store, Store: store, Client: client, Window: Window{Size: 4}}
	st, err := e.Run(context.Background(), false)
	require.NoError(t, err)

	assert.False(t, store.force)
	assert.Equal(t, Stats{Total: 3, Updated: 1, Skipped: 1, Failed: 1, Written: 2}, st)
	assert.Len(t, store.episodes["a"], 2)
	assert.NotContains(t, store.episodes, "b")
}

func TestEpisodes_NothingToDo(t *testing.T) {
	store := &fakeShows{}
	e := &Episodes{Shows: store, Store: store, Client: &fakeTVMaze{}}
	st, err := e.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Zero(t, st)
}
