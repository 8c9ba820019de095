package http

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"calendar-copilot/internal/schedule"
)

// defaultRunHistory bounds how many recent pipeline runs stay inspectable.
const defaultRunHistory = 64

// runRecord tracks one pipeline run for the UI: the busy flag while the run
// is in flight, then its terminal outcome. This stores UI bookkeeping only,
// never calendar data snapshots.
type runRecord struct {
	mu sync.RWMutex

	id         string
	stage      schedule.Stage
	busy       bool
	created    int
	errMessage string
	startedAt  time.Time
	finishedAt time.Time
}

func (r *runRecord) setStage(s schedule.Stage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stage = s
}

func (r *runRecord) finish(created int, errMessage string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy = false
	r.created = created
	r.errMessage = errMessage
	r.finishedAt = time.Now()
}

func (r *runRecord) snapshot() runResp {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resp := runResp{
		ID:        r.id,
		Stage:     string(r.stage),
		Busy:      r.busy,
		Created:   r.created,
		Error:     r.errMessage,
		StartedAt: r.startedAt,
	}
	if !r.finishedAt.IsZero() {
		resp.FinishedAt = &r.finishedAt
	}
	return resp
}

// runRegistry is a fixed-size LRU of recent runs keyed by run id.
type runRegistry struct {
	cache *lru.Cache[string, *runRecord]
}

func newRunRegistry(size int) (*runRegistry, error) {
	cache, err := lru.New[string, *runRecord](size)
	if err != nil {
		return nil, err
	}
	return &runRegistry{cache: cache}, nil
}

func (r *runRegistry) start(id string) *runRecord {
	record := &runRecord{
		id:        id,
		stage:     schedule.StageIdle,
		busy:      true,
		startedAt: time.Now(),
	}
	r.cache.Add(id, record)
	return record
}

func (r *runRegistry) get(id string) (*runRecord, bool) {
	return r.cache.Get(id)
}
