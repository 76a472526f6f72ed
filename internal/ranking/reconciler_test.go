package ranking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showrank/pkg/models"
)

// memStore keeps shows by year and records every ApplyRanks call.
type memStore struct {
	shows    []models.Show
	applied  map[int]map[string]int
	listErr  error
	applyErr error
}

func newMemStore(year int, names ...string) *memStore {
	m := &memStore{applied: map[int]map[string]int{}}
	m.add(year, names...)
	return m
}

func (m *memStore) add(year int, names ...string) {
	for _, n := range names {
		seq := len(m.shows) + 1
		m.shows = append(m.shows, models.Show{ID: fmt.Sprintf("id-%d", seq), Seq: seq, Name: n, Year: year})
	}
}

func (m *memStore) ListByYear(_ context.Context, year int) ([]models.Show, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []models.Show
	for _, s := range m.shows {
		if s.Year == year {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) ApplyRanks(_ context.Context, year int, ranks map[string]int) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	cp := make(map[string]int, len(ranks))
	for k, v := range ranks {
		cp[k] = v
	}
	m.applied[year] = cp
	return nil
}

// rankOf returns the rank last applied to the show named name, or 0.
func (m *memStore) rankOf(year int, name string) int {
	for _, s := range m.shows {
		if s.Year == year && s.Name == name {
			if r, ok := m.applied[year][s.ID]; ok {
				return r
			}
		}
	}
	return 0
}

func TestReconcile_AssignsListPositions(t *testing.T) {
	store := newMemStore(2025, "A", "B", "C")
	rep, err := New(store, nil).Reconcile(context.Background(), 2025, []string{"A", "B", "C"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Matched)
	assert.Empty(t, rep.Misses)
	assert.Equal(t, 1, store.rankOf(2025, "A"))
	assert.Equal(t, 2, store.rankOf(2025, "B"))
	assert.Equal(t, 3, store.rankOf(2025, "C"))
}

func TestReconcile_Override(t *testing.T) {
	store := newMemStore(2025, "Task", "Adolesence", "Adolescence")
	list := []string{"Task", "The Pitt", "Adolescence"}
	overrides := map[string]string{"Adolescence": "Adolesence"}

	rep, err := New(store, nil).Reconcile(context.Background(), 2025, list, overrides)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Matched)
	assert.Equal(t, 1, store.rankOf(2025, "Task"))
	assert.Equal(t, 3, store.rankOf(2025, "Adolesence"))
	assert.Zero(t, store.rankOf(2025, "Adolescence"), "literal name must not match once overridden")
	assert.Equal(t, []Miss{{Rank: 2, Display: "The Pitt", Lookup: "The Pitt"}}, rep.Misses)
}

func TestReconcile_MissReportsLookupName(t *testing.T) {
	store := newMemStore(2025, "Something Else")
	rep, err := New(store, nil).Reconcile(context.Background(), 2025,
		[]string{"The Rehearsal"}, map[string]string{"The Rehearsal": "The Rehersal"})
	require.NoError(t, err)

	assert.Zero(t, rep.Matched)
	assert.Equal(t, []Miss{{Rank: 1, Display: "The Rehearsal", Lookup: "The Rehersal"}}, rep.Misses)
	assert.Empty(t, store.applied[2025], "partition is still cleared")
}

func TestReconcile_Idempotent(t *testing.T) {
	store := newMemStore(2025, "A", "B", "C", "D")
	r := New(store, nil)
	list := []string{"C", "A", "Nope", "B"}

	_, err := r.Reconcile(context.Background(), 2025, list, nil)
	require.NoError(t, err)
	first := store.applied[2025]

	_, err = r.Reconcile(context.Background(), 2025, list, nil)
	require.NoError(t, err)
	assert.Equal(t, first, store.applied[2025])
	assert.Equal(t, 4, store.rankOf(2025, "B"))
	assert.Zero(t, store.rankOf(2025, "D"))
}

func TestReconcile_ScopedToPartition(t *testing.T) {
	store := newMemStore(2025, "The Pitt")
	store.add(2026, "The Pitt")

	rep, err := New(store, nil).Reconcile(context.Background(), 2026, []string{"X", "The Pitt"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Matched)
	assert.Equal(t, map[string]int{"id-2": 2}, store.applied[2026])
	assert.NotContains(t, store.applied, 2025)
}

func TestReconcile_DuplicateStoredNamesRankEarliest(t *testing.T) {
	store := newMemStore(2025, "Dup", "Other", "Dup")
	rep, err := New(store, nil).Reconcile(context.Background(), 2025, []string{"Dup", "Other"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Matched)
	assert.Equal(t, []string{"Dup"}, rep.Shadowed)
	assert.Equal(t, map[string]int{"id-1": 1, "id-2": 2}, store.applied[2025])
}

func TestReconcile_RepeatedListEntryKeepsFirstRank(t *testing.T) {
	store := newMemStore(2025, "Alls Fair")
	rep, err := New(store, nil).Reconcile(context.Background(), 2025,
		[]string{"Alls Fair", "All's Fair"}, map[string]string{"All's Fair": "Alls Fair"})
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Matched)
	assert.Equal(t, 1, store.rankOf(2025, "Alls Fair"))
	require.Len(t, rep.Repeated, 1)
	assert.Equal(t, 2, rep.Repeated[0].Rank)
}

func TestReconcile_StoreErrors(t *testing.T) {
	boom := errors.New("locked")

	store := newMemStore(2025, "A")
	store.listErr = boom
	_, err := New(store, nil).Reconcile(context.Background(), 2025, []string{"A"}, nil)
	assert.Equal(t, KindStore, KindOf(err))
	assert.ErrorIs(t, err, boom)

	store = newMemStore(2025, "A")
	store.applyErr = boom
	_, err = New(store, nil).Reconcile(context.Background(), 2025, []string{"A"}, nil)
	assert.Equal(t, KindStore, KindOf(err))
}

func TestReconcileAll_AscendingYears(t *testing.T) {
	store := newMemStore(2026, "A Knight of the Seven Kingdoms", "The Pitt")
	store.add(2025, "Task", "The Pitt", "Adolesence")

	cfg := &Config{
		Overrides: map[string]string{"Adolescence": "Adolesence"},
		Years: map[int]Partition{
			2026: {Ranks: []string{"A Knight of the Seven Kingdoms", "The Pitt"}},
			2025: {Ranks: []string{"Task", "The Pitt", "Adolescence"}},
		},
	}
	reports, err := New(store, nil).ReconcileAll(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, 2025, reports[0].Year)
	assert.Equal(t, 3, reports[0].Matched)
	assert.Equal(t, 2026, reports[1].Year)
	assert.Equal(t, 2, reports[1].Matched)
	assert.Equal(t, 3, store.rankOf(2025, "Adolesence"))
	assert.Equal(t, 2, store.rankOf(2026, "The Pitt"))
}
