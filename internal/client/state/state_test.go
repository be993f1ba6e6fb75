package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce_EachEventTouchesOneField(t *testing.T) {
	detail := &JobDetail{JobID: 7, Type: "Full-time"}

	tests := []struct {
		name   string
		event  Event
		assert func(t *testing.T, next State)
	}{
		{
			name:  "set summaries",
			event: SetSummaries{Summaries: []JobSummary{{ID: 1, Title: "Go Developer"}}},
			assert: func(t *testing.T, next State) {
				assert.Len(t, next.Summaries, 1)
				assert.Equal(t, "Go Developer", next.Summaries[0].Title)
			},
		},
		{
			name:  "set pagination",
			event: SetPagination{Pagination: Pagination{CurrentPage: 3, TotalPages: 9, Keyword: "go"}},
			assert: func(t *testing.T, next State) {
				assert.Equal(t, 3, next.Pagination.CurrentPage)
				assert.Equal(t, "go", next.Pagination.Keyword)
			},
		},
		{
			name:  "set detail",
			event: SetDetail{Detail: detail},
			assert: func(t *testing.T, next State) {
				assert.Same(t, detail, next.Detail)
			},
		},
		{
			name:  "clear detail",
			event: SetDetail{Detail: nil},
			assert: func(t *testing.T, next State) {
				assert.Nil(t, next.Detail)
			},
		},
		{
			name:  "set list loading",
			event: SetListLoading{Loading: true},
			assert: func(t *testing.T, next State) {
				assert.True(t, next.ListLoading)
				assert.False(t, next.DetailLoading)
			},
		},
		{
			name:  "set detail loading",
			event: SetDetailLoading{Loading: true},
			assert: func(t *testing.T, next State) {
				assert.True(t, next.DetailLoading)
				assert.False(t, next.ListLoading)
			},
		},
		{
			name:  "set error",
			event: SetError{Message: "boom"},
			assert: func(t *testing.T, next State) {
				assert.Equal(t, "boom", next.ErrorMessage)
			},
		},
		{
			name:  "set notification",
			event: SetNotification{Message: "nothing here"},
			assert: func(t *testing.T, next State) {
				assert.Equal(t, "nothing here", next.Notification)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assert(t, Reduce(Initial(), tt.event))
		})
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := Initial()
	before.Notification = "old"

	next := Reduce(before, SetNotification{Message: "new"})

	assert.Equal(t, "old", before.Notification)
	assert.Equal(t, "new", next.Notification)
}

func TestInitial_Defaults(t *testing.T) {
	s := Initial()

	assert.Empty(t, s.Summaries)
	assert.Nil(t, s.Detail)
	assert.Equal(t, 1, s.Pagination.CurrentPage)
	assert.Equal(t, 25, s.Pagination.ItemsPerPage)
	assert.Empty(t, s.Notification)
}
