package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"nearme/internal/model"
)

// Searcher is the orchestration entry point the refresher re-invokes.
type Searcher interface {
	Search(ctx context.Context, p SearchParams, notify bool) (*model.SearchResultSet, error)
}

// Refresher keeps the last search result fresh by silently re-running the
// orchestrator at a fixed period. The schedule exists only while a non-empty
// result set is held; changing the search parameters discards the old entry
// and registers a fresh one.
//
// Ticks run in their own goroutines and carry no overlap guard: a slow tick
// may coexist with the next one. The snapshot is replaced wholesale under the
// mutex, so the last writer wins, which is acceptable for idempotent reads.
type Refresher struct {
	search   Searcher
	interval time.Duration
	cron     *cron.Cron

	mu         sync.Mutex
	entryID    cron.EntryID
	scheduled  bool
	params     SearchParams
	snapshot   *model.SearchResultSet
	lastUpdate time.Time
}

// NewRefresher creates a refresher; Start must be called before Update.
func NewRefresher(search Searcher, interval time.Duration) *Refresher {
	return &Refresher{
		search:   search,
		interval: interval,
		cron:     cron.New(),
	}
}

// Start launches the underlying scheduler.
func (r *Refresher) Start() {
	r.cron.Start()
}

// Stop cancels all scheduled refreshes.
func (r *Refresher) Stop() {
	r.cron.Stop()
}

// Update replaces the held snapshot with the outcome of a user-facing search
// and reschedules the refresh against its parameters. An empty result set
// clears the schedule.
func (r *Refresher) Update(params SearchParams, set *model.SearchResultSet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.params = params
	r.snapshot = set
	r.lastUpdate = time.Now()

	if r.scheduled {
		r.cron.Remove(r.entryID)
		r.scheduled = false
	}

	if set == nil || len(set.Places) == 0 {
		return
	}

	spec := fmt.Sprintf("@every %s", r.interval)
	id, err := r.cron.AddFunc(spec, r.tick)
	if err != nil {
		log.Error().Err(err).Str("spec", spec).Msg("Failed to schedule live refresh")
		return
	}
	r.entryID = id
	r.scheduled = true

	log.Debug().Dur("interval", r.interval).Str("query", params.Query).Msg("Live refresh scheduled")
}

// Snapshot returns the current result set and the time it was produced.
func (r *Refresher) Snapshot() (*model.SearchResultSet, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot, r.lastUpdate
}

// tick re-runs the last search in silent mode. Failures keep the previous
// snapshot in place; the next tick is the only retry.
func (r *Refresher) tick() {
	r.mu.Lock()
	params := r.params
	r.mu.Unlock()

	set, err := r.search.Search(context.Background(), params, false)
	if err != nil {
		log.Debug().Err(err).Str("query", params.Query).Msg("Silent refresh failed, keeping previous results")
		return
	}

	r.mu.Lock()
	r.snapshot = set
	r.lastUpdate = time.Now()
	r.mu.Unlock()

	log.Debug().Int("count", len(set.Places)).Msg("Live data updated")
}
