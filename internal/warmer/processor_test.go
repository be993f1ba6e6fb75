package warmer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apidomain "github.com/openhire/jobboard-be/internal/api/domain"
	"github.com/openhire/jobboard-be/internal/api/model"
	"github.com/openhire/jobboard-be/internal/warmer/domain"
)

type fakeStorage struct {
	details map[int]*model.JobDetail
	err     error
}

func (f *fakeStorage) GetDetail(ctx context.Context, jobID int) (*model.JobDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	detail, ok := f.details[jobID]
	if !ok {
		return nil, apidomain.ErrJobNotFound
	}
	return detail, nil
}

func (f *fakeStorage) ListRecentJobIDs(ctx context.Context, limit int) ([]int, error) {
	ids := make([]int, 0, len(f.details))
	for id := range f.details {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeWarm struct {
	warmed []int
	err    error
}

func (f *fakeWarm) WarmDetail(ctx context.Context, detail *model.JobDetail) error {
	if f.err != nil {
		return f.err
	}
	f.warmed = append(f.warmed, detail.JobID)
	return nil
}

func newTestWarmer(storage Storage, warm DetailWarmer) *Warmer {
	return NewWarmer(&Config{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Storage:     storage,
		Warm:        warm,
		Concurrency: 1,
		WarmTimeout: time.Second,
	})
}

func TestProcessWarm_Success(t *testing.T) {
	storage := &fakeStorage{details: map[int]*model.JobDetail{5: {JobID: 5}}}
	warm := &fakeWarm{}
	w := newTestWarmer(storage, warm)

	err := w.processWarm(context.Background(), &domain.WarmMessage{JobID: 5})
	require.NoError(t, err)
	assert.Equal(t, []int{5}, warm.warmed)
}

func TestProcessWarm_UnknownJob(t *testing.T) {
	storage := &fakeStorage{details: map[int]*model.JobDetail{}}
	w := newTestWarmer(storage, &fakeWarm{})

	err := w.processWarm(context.Background(), &domain.WarmMessage{JobID: 404})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownJob)
	assert.False(t, w.shouldRequeue(err))
}

func TestProcessWarm_InvalidJobID(t *testing.T) {
	w := newTestWarmer(&fakeStorage{}, &fakeWarm{})

	err := w.processWarm(context.Background(), &domain.WarmMessage{JobID: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidMessage)
	assert.False(t, w.shouldRequeue(err))
}

func TestProcessWarm_TransientStoreError(t *testing.T) {
	storage := &fakeStorage{err: errors.New("connection reset")}
	w := newTestWarmer(storage, &fakeWarm{})

	err := w.processWarm(context.Background(), &domain.WarmMessage{JobID: 5})
	require.Error(t, err)
	assert.True(t, w.shouldRequeue(err))
}

func TestProcessWarm_CacheFailureIsAbsorbed(t *testing.T) {
	storage := &fakeStorage{details: map[int]*model.JobDetail{5: {JobID: 5}}}
	warm := &fakeWarm{err: errors.New("redis down")}
	w := newTestWarmer(storage, warm)

	// a failed cache write still acks; warming is best-effort
	err := w.processWarm(context.Background(), &domain.WarmMessage{JobID: 5})
	assert.NoError(t, err)
}
