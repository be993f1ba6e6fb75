// Package orchestrator drives the client state machine: it issues API calls
// and dispatches the resulting events to the store. Methods block until the
// call completes; callers that need asynchrony run them in their own
// goroutine or command.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/openhire/jobboard-be/internal/client/jobsapi"
	"github.com/openhire/jobboard-be/internal/client/state"
	"github.com/openhire/jobboard-be/internal/client/store"
)

// notificationTTL is how long a transient notification stays visible.
const notificationTTL = 5 * time.Second

// API is the slice of the jobs API client the orchestrator needs.
type API interface {
	FetchTitles(ctx context.Context, page int, keyword string) (*jobsapi.TitlesResponse, error)
	FetchDetail(ctx context.Context, jobID int) (*state.JobDetail, error)
}

// Schedule runs fn after d and returns a cancel func. The default is a thin
// wrapper over time.AfterFunc; tests inject their own to control time.
type Schedule func(d time.Duration, fn func()) (cancel func())

func afterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Orchestrator coordinates fetches against a single store. Responses are
// applied in completion order: when two list fetches overlap, whichever
// resolves last wins, matching what the user last sees on a slow network.
type Orchestrator struct {
	store    *store.Store
	api      API
	logger   *slog.Logger
	schedule Schedule

	mu           sync.Mutex
	manualSelect bool
	cancelNotify func()
}

// Option customizes the orchestrator.
type Option func(*Orchestrator)

// WithSchedule overrides the notification timer implementation.
func WithSchedule(s Schedule) Option {
	return func(o *Orchestrator) { o.schedule = s }
}

// New returns an orchestrator dispatching to st and fetching through api.
func New(st *store.Store, api API, logger *slog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:    st,
		api:      api,
		logger:   logger,
		schedule: afterFunc,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// FetchTitles loads one page of the listing. The loading flag is raised and
// the previous selection cleared before the request goes out, so a
// subscriber observing the request in flight already sees both. On success
// the first listed job is auto-selected unless the user picked one manually
// since this fetch started. On failure the previous listing is kept and only
// the loading flag is lowered.
func (o *Orchestrator) FetchTitles(ctx context.Context, page int, keyword string) {
	o.store.Dispatch(state.SetListLoading{Loading: true})
	o.store.Dispatch(state.SetDetail{Detail: nil})

	o.mu.Lock()
	o.manualSelect = false
	o.mu.Unlock()

	resp, err := o.api.FetchTitles(ctx, page, keyword)
	if err != nil {
		o.logger.Error("list fetch failed", "page", page, "keyword", keyword, "error", err)
		o.store.Dispatch(state.SetListLoading{Loading: false})
		return
	}

	if len(resp.Titles) == 0 {
		o.Notify(fmt.Sprintf("No jobs found for \"%s\" try another search term.", keyword))
	}

	o.store.Dispatch(state.SetSummaries{Summaries: resp.Titles})
	o.store.Dispatch(state.SetPagination{Pagination: resp.Pagination})
	o.store.Dispatch(state.SetListLoading{Loading: false})

	if len(resp.Titles) > 0 {
		o.mu.Lock()
		auto := !o.manualSelect
		o.mu.Unlock()
		if auto {
			o.fetchDetail(ctx, resp.Titles[0].ID)
		}
	}
}

// SelectJob loads the detail for a job the user picked from the listing.
func (o *Orchestrator) SelectJob(ctx context.Context, jobID int) {
	o.mu.Lock()
	o.manualSelect = true
	o.mu.Unlock()

	o.fetchDetail(ctx, jobID)
}

func (o *Orchestrator) fetchDetail(ctx context.Context, jobID int) {
	o.store.Dispatch(state.SetDetailLoading{Loading: true})

	detail, err := o.api.FetchDetail(ctx, jobID)
	if err != nil {
		o.logger.Error("detail fetch failed", "job_id", jobID, "error", err)
		o.store.Dispatch(state.SetDetailLoading{Loading: false})
		return
	}

	o.store.Dispatch(state.SetDetail{Detail: detail})
	o.store.Dispatch(state.SetDetailLoading{Loading: false})
}

// Notify shows a transient message for five seconds. A newer message
// replaces the current one and restarts the countdown; the superseded
// message's timer is cancelled so it cannot clear the new one early.
func (o *Orchestrator) Notify(message string) {
	o.mu.Lock()
	if o.cancelNotify != nil {
		o.cancelNotify()
	}
	o.mu.Unlock()

	o.store.Dispatch(state.SetNotification{Message: message})

	o.mu.Lock()
	o.cancelNotify = o.schedule(notificationTTL, func() {
		o.store.Dispatch(state.SetNotification{Message: ""})
	})
	o.mu.Unlock()
}
