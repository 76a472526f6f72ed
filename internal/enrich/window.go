// Package enrich fills in show metadata from TVMaze: cover art, ratings
// and episode lists. Fetches run in small fixed windows with a pause
// between windows to stay polite to the API.
package enrich

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Progress is told about every finished item. The CLI backs it with a
// progress bar.
type Progress interface {
	Start(total int)
	Tick()
	Finish()
}

type noProgress struct{}

func (noProgress) Start(int) {}
func (noProgress) Tick()     {}
func (noProgress) Finish()   {}

// Stats summarizes a run. Written counts stored units (covers or episodes).
type Stats struct {
	Total   int
	Updated int
	Skipped int
	Failed  int
	Written int
}

// Window runs at most Size items at once, waits for the whole window and
// sleeps Delay before starting the next one.
type Window struct {
	Size     int
	Delay    time.Duration
	Progress Progress
}

// run applies fn to every item. fn reports how many units it wrote; 0
// means skipped. An error marks the item failed and never stops the run.
func run[T any](ctx context.Context, w Window, items []T, fn func(context.Context, T) (int, error)) (Stats, error) {
	size := w.Size
	if size < 1 {
		size = 1
	}
	progress := w.Progress
	if progress == nil {
		progress = noProgress{}
	}

	st := Stats{Total: len(items)}
	progress.Start(len(items))
	defer progress.Finish()

	var mu sync.Mutex
	for start := 0; start < len(items); start += size {
		if start > 0 && w.Delay > 0 {
			select {
			case <-ctx.Done():
				return st, ctx.Err()
			case <-time.After(w.Delay):
			}
		}
		if err := ctx.Err(); err != nil {
			return st, err
		}

		g := new(errgroup.Group)
		g.SetLimit(size)
		for _, v := range items[start:min(start+size, len(items))] {
			g.Go(func() error {
				n, err := fn(ctx, v)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err != nil:
					st.Failed++
				case n == 0:
					st.Skipped++
				default:
					st.Updated++
					st.Written += n
				}
				progress.Tick()
				return nil
			})
		}
		_ = g.Wait()
	}
	return st, nil
}
