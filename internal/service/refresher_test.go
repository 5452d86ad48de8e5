package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nearme/internal/model"
)

type fakeSearcher struct {
	mu    sync.Mutex
	sets  []*model.SearchResultSet
	err   error
	calls int
}

func (f *fakeSearcher) Search(ctx context.Context, p SearchParams, notify bool) (*model.SearchResultSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.sets) == 0 {
		return &model.SearchResultSet{}, nil
	}
	set := f.sets[0]
	if len(f.sets) > 1 {
		f.sets = f.sets[1:]
	}
	return set, nil
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func nonEmptySet(id string) *model.SearchResultSet {
	return &model.SearchResultSet{
		SearchID: id,
		Query:    "cafes",
		Places:   []model.Place{{ID: "p1", Name: "Cafe One"}},
	}
}

func TestRefresherSnapshotTracksUpdate(t *testing.T) {
	r := NewRefresher(&fakeSearcher{}, time.Hour)
	r.Start()
	defer r.Stop()

	set, lastUpdate := r.Snapshot()
	assert.Nil(t, set)
	assert.True(t, lastUpdate.IsZero())

	r.Update(SearchParams{Query: "cafes", Origin: testOrigin()}, nonEmptySet("s1"))

	set, lastUpdate = r.Snapshot()
	require.NotNil(t, set)
	assert.Equal(t, "s1", set.SearchID)
	assert.False(t, lastUpdate.IsZero())
}

func TestRefresherEmptySetClearsSchedule(t *testing.T) {
	searcher := &fakeSearcher{sets: []*model.SearchResultSet{nonEmptySet("s2")}}
	r := NewRefresher(searcher, 10*time.Millisecond)
	r.Start()
	defer r.Stop()

	r.Update(SearchParams{Query: "cafes", Origin: testOrigin()}, &model.SearchResultSet{SearchID: "empty"})

	// Long enough to cover the scheduler's one-second minimum interval.
	time.Sleep(1100 * time.Millisecond)
	assert.Zero(t, searcher.callCount())

	set, _ := r.Snapshot()
	require.NotNil(t, set)
	assert.Equal(t, "empty", set.SearchID)
}

func TestRefresherTicksSilently(t *testing.T) {
	searcher := &fakeSearcher{sets: []*model.SearchResultSet{nonEmptySet("refreshed")}}
	r := NewRefresher(searcher, 20*time.Millisecond)
	r.Start()
	defer r.Stop()

	r.Update(SearchParams{Query: "cafes", Origin: testOrigin()}, nonEmptySet("initial"))

	// The scheduler rounds sub-second intervals up to one second.
	assert.Eventually(t, func() bool {
		set, _ := r.Snapshot()
		return set != nil && set.SearchID == "refreshed"
	}, 3*time.Second, 20*time.Millisecond)

	assert.GreaterOrEqual(t, searcher.callCount(), 1)
}

func TestRefresherKeepsSnapshotOnFailure(t *testing.T) {
	searcher := &fakeSearcher{err: context.DeadlineExceeded}
	r := NewRefresher(searcher, 20*time.Millisecond)
	r.Start()
	defer r.Stop()

	r.Update(SearchParams{Query: "cafes", Origin: testOrigin()}, nonEmptySet("stable"))

	assert.Eventually(t, func() bool {
		return searcher.callCount() >= 1
	}, 3*time.Second, 20*time.Millisecond)

	set, _ := r.Snapshot()
	require.NotNil(t, set)
	assert.Equal(t, "stable", set.SearchID)
}
