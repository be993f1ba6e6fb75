package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openhire/jobboard-be/internal/client/state"
)

func TestStore_DispatchUpdatesState(t *testing.T) {
	s := New()

	s.Dispatch(state.SetNotification{Message: "hello"})

	assert.Equal(t, "hello", s.State().Notification)
}

func TestStore_SubscribersSeeEveryDispatch(t *testing.T) {
	s := New()

	var seen []string
	s.Subscribe(func(snap state.State) {
		seen = append(seen, snap.Notification)
	})

	s.Dispatch(state.SetNotification{Message: "first"})
	s.Dispatch(state.SetNotification{Message: "second"})

	assert.Equal(t, []string{"first", "second"}, seen)
}

func TestStore_ConcurrentDispatchesAreSerialized(t *testing.T) {
	s := New()

	var mu sync.Mutex
	count := 0
	s.Subscribe(func(state.State) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(state.SetListLoading{Loading: true})
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 50, count)
}
