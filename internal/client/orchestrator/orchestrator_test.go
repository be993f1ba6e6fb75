package orchestrator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/jobboard-be/internal/client/jobsapi"
	"github.com/openhire/jobboard-be/internal/client/state"
	"github.com/openhire/jobboard-be/internal/client/store"
)

type fakeAPI struct {
	mu          sync.Mutex
	fetchTitles func(ctx context.Context, page int, keyword string) (*jobsapi.TitlesResponse, error)
	fetchDetail func(ctx context.Context, jobID int) (*state.JobDetail, error)
	detailIDs   []int
}

func (f *fakeAPI) FetchTitles(ctx context.Context, page int, keyword string) (*jobsapi.TitlesResponse, error) {
	return f.fetchTitles(ctx, page, keyword)
}

func (f *fakeAPI) FetchDetail(ctx context.Context, jobID int) (*state.JobDetail, error) {
	f.mu.Lock()
	f.detailIDs = append(f.detailIDs, jobID)
	f.mu.Unlock()
	if f.fetchDetail != nil {
		return f.fetchDetail(ctx, jobID)
	}
	return &state.JobDetail{JobID: jobID, Type: "Full-time"}, nil
}

func (f *fakeAPI) detailFetches() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int{}, f.detailIDs...)
}

type fakeTimer struct {
	d         time.Duration
	fn        func()
	cancelled bool
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) schedule(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{d: d, fn: fn}
	s.timers = append(s.timers, t)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		t.cancelled = true
	}
}

func (s *fakeScheduler) fire(i int) {
	s.mu.Lock()
	t := s.timers[i]
	s.mu.Unlock()
	if !t.cancelled {
		t.fn()
	}
}

func titlesResponse(page int, keyword string, ids ...int) *jobsapi.TitlesResponse {
	summaries := []state.JobSummary{}
	for _, id := range ids {
		summaries = append(summaries, state.JobSummary{ID: id, Title: "Go Developer", Company: "Acme"})
	}
	return &jobsapi.TitlesResponse{
		Titles: summaries,
		Pagination: state.Pagination{
			CurrentPage:  page,
			TotalPages:   4,
			TotalItems:   100,
			ItemsPerPage: 25,
			Keyword:      keyword,
		},
	}
}

func newTestOrchestrator(api *fakeAPI) (*store.Store, *fakeScheduler, *Orchestrator) {
	st := store.New()
	sched := &fakeScheduler{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return st, sched, New(st, api, logger, WithSchedule(sched.schedule))
}

func TestFetchTitles_SuccessPopulatesListAndAutoSelects(t *testing.T) {
	api := &fakeAPI{
		fetchTitles: func(ctx context.Context, page int, keyword string) (*jobsapi.TitlesResponse, error) {
			return titlesResponse(page, keyword, 11, 12, 13), nil
		},
	}
	st, _, orch := newTestOrchestrator(api)

	orch.FetchTitles(context.Background(), 1, "go")

	snap := st.State()
	require.Len(t, snap.Summaries, 3)
	assert.Equal(t, 11, snap.Summaries[0].ID)
	assert.Equal(t, 4, snap.Pagination.TotalPages)
	assert.False(t, snap.ListLoading)
	assert.Empty(t, snap.Notification)

	require.NotNil(t, snap.Detail)
	assert.Equal(t, 11, snap.Detail.JobID)
	assert.Equal(t, []int{11}, api.detailFetches())
}

func TestFetchTitles_LoadingRaisedAndDetailClearedBeforeRequest(t *testing.T) {
	var st *store.Store
	api := &fakeAPI{}
	api.fetchTitles = func(ctx context.Context, page int, keyword string) (*jobsapi.TitlesResponse, error) {
		snap := st.State()
		assert.True(t, snap.ListLoading)
		assert.Nil(t, snap.Detail)
		return titlesResponse(page, keyword), nil
	}
	st, _, orch := newTestOrchestrator(api)
	st.Dispatch(state.SetDetail{Detail: &state.JobDetail{JobID: 99}})

	orch.FetchTitles(context.Background(), 1, "nothing")
}

func TestFetchTitles_EmptyResultNotifies(t *testing.T) {
	api := &fakeAPI{
		fetchTitles: func(ctx context.Context, page int, keyword string) (*jobsapi.TitlesResponse, error) {
			resp := titlesResponse(page, keyword)
			resp.Pagination.TotalPages = 0
			resp.Pagination.TotalItems = 0
			return resp, nil
		},
	}
	st, sched, orch := newTestOrchestrator(api)

	orch.FetchTitles(context.Background(), 1, "cobol wizard")

	snap := st.State()
	assert.Empty(t, snap.Summaries)
	assert.Equal(t, `No jobs found for "cobol wizard" try another search term.`, snap.Notification)
	assert.Empty(t, api.detailFetches())

	require.Len(t, sched.timers, 1)
	assert.Equal(t, 5*time.Second, sched.timers[0].d)
	sched.fire(0)
	assert.Empty(t, st.State().Notification)
}

func TestFetchTitles_FailureKeepsPreviousListing(t *testing.T) {
	calls := 0
	api := &fakeAPI{}
	api.fetchTitles = func(ctx context.Context, page int, keyword string) (*jobsapi.TitlesResponse, error) {
		calls++
		if calls == 1 {
			return titlesResponse(page, keyword, 1, 2), nil
		}
		return nil, errors.New("connection refused")
	}
	st, _, orch := newTestOrchestrator(api)

	orch.FetchTitles(context.Background(), 1, "")
	orch.FetchTitles(context.Background(), 2, "")

	snap := st.State()
	assert.Len(t, snap.Summaries, 2)
	assert.Equal(t, 1, snap.Pagination.CurrentPage)
	assert.False(t, snap.ListLoading)
}

func TestSelectJob_LoadsDetail(t *testing.T) {
	api := &fakeAPI{}
	st, _, orch := newTestOrchestrator(api)

	orch.SelectJob(context.Background(), 42)

	snap := st.State()
	require.NotNil(t, snap.Detail)
	assert.Equal(t, 42, snap.Detail.JobID)
	assert.False(t, snap.DetailLoading)
}

func TestFetchTitles_ManualSelectionSuppressesAutoSelect(t *testing.T) {
	inFlight := make(chan struct{})
	release := make(chan struct{})
	api := &fakeAPI{}
	api.fetchTitles = func(ctx context.Context, page int, keyword string) (*jobsapi.TitlesResponse, error) {
		close(inFlight)
		<-release
		return titlesResponse(page, keyword, 11, 12), nil
	}
	_, _, orch := newTestOrchestrator(api)

	done := make(chan struct{})
	go func() {
		orch.FetchTitles(context.Background(), 1, "")
		close(done)
	}()

	<-inFlight
	orch.SelectJob(context.Background(), 12)
	close(release)
	<-done

	assert.Equal(t, []int{12}, api.detailFetches())
}

func TestFetchTitles_OverlappingFetchesLastResolutionWins(t *testing.T) {
	gates := map[int]chan struct{}{
		1: make(chan struct{}),
		2: make(chan struct{}),
	}
	started := make(chan int, 2)
	api := &fakeAPI{}
	api.fetchTitles = func(ctx context.Context, page int, keyword string) (*jobsapi.TitlesResponse, error) {
		started <- page
		<-gates[page]
		return titlesResponse(page, keyword, page*100), nil
	}
	st, _, orch := newTestOrchestrator(api)

	var wg sync.WaitGroup
	for _, page := range []int{1, 2} {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			orch.FetchTitles(context.Background(), p, "")
		}(page)
	}

	<-started
	<-started
	close(gates[2])
	// Give the page-2 response time to be applied before page 1 resolves.
	time.Sleep(20 * time.Millisecond)
	close(gates[1])
	wg.Wait()

	assert.Equal(t, 1, st.State().Pagination.CurrentPage)
	assert.Equal(t, 100, st.State().Summaries[0].ID)
}

func TestNotify_NewMessageSupersedesAndRestartsCountdown(t *testing.T) {
	api := &fakeAPI{
		fetchTitles: func(ctx context.Context, page int, keyword string) (*jobsapi.TitlesResponse, error) {
			return titlesResponse(page, keyword), nil
		},
	}
	st, sched, orch := newTestOrchestrator(api)

	orch.Notify("first")
	orch.Notify("second")

	assert.Equal(t, "second", st.State().Notification)
	require.Len(t, sched.timers, 2)
	assert.True(t, sched.timers[0].cancelled)
	assert.False(t, sched.timers[1].cancelled)

	// The superseded timer firing must not clear the newer message.
	sched.fire(0)
	assert.Equal(t, "second", st.State().Notification)

	sched.fire(1)
	assert.Empty(t, st.State().Notification)
}

func TestFetchDetail_FailureKeepsLastKnownDetail(t *testing.T) {
	api := &fakeAPI{}
	st, _, orch := newTestOrchestrator(api)

	orch.SelectJob(context.Background(), 5)
	require.NotNil(t, st.State().Detail)

	api.fetchDetail = func(ctx context.Context, jobID int) (*state.JobDetail, error) {
		return nil, errors.New("timeout")
	}
	orch.SelectJob(context.Background(), 6)

	snap := st.State()
	require.NotNil(t, snap.Detail)
	assert.Equal(t, 5, snap.Detail.JobID)
	assert.False(t, snap.DetailLoading)
}
