// Package state defines the client-side view of the jobs API and the
// reducer that is the only way that view changes. Transitions form a closed
// set of event types; each one replaces exactly one slice of the state and
// leaves everything else untouched.
package state

// JobSummary is one entry of the titles listing.
type JobSummary struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	CreationDate string `json:"creationDate"`
}

// JobDetail is a full job record plus the server's retrieval annotations.
type JobDetail struct {
	JobID        int      `json:"jobId"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary"`
	Skills       []string `json:"skills"`
	Description  string   `json:"description"`
	Benefits     []string `json:"benefits"`
	Link         string   `json:"link"`
	CreationDate string   `json:"creationDate"`

	Cached         bool   `json:"_cached"`
	CacheTimestamp string `json:"_cacheTimestamp"`
	RetrievalInfo  string `json:"_retrievalInfo"`
}

// Pagination mirrors the pagination block of a titles response.
type Pagination struct {
	CurrentPage  int    `json:"currentPage"`
	TotalPages   int    `json:"totalPages"`
	TotalItems   int    `json:"totalItems"`
	ItemsPerPage int    `json:"itemsPerPage"`
	Keyword      string `json:"keyword"`
}

// State is everything the views render from. Detail is nil when no job is
// selected; Notification is empty when nothing transient is being shown.
type State struct {
	Summaries     []JobSummary
	Detail        *JobDetail
	ListLoading   bool
	DetailLoading bool
	Pagination    Pagination
	ErrorMessage  string
	Notification  string
}

// Initial returns the state the application starts from.
func Initial() State {
	return State{
		Summaries: []JobSummary{},
		Pagination: Pagination{
			CurrentPage:  1,
			TotalPages:   1,
			ItemsPerPage: 25,
		},
	}
}

// Event is a state transition. The set of implementations is closed: views
// and orchestrators change state only by dispatching one of these.
type Event interface {
	isEvent()
}

// SetSummaries replaces the titles listing.
type SetSummaries struct {
	Summaries []JobSummary
}

// SetPagination replaces the pagination metadata.
type SetPagination struct {
	Pagination Pagination
}

// SetDetail replaces the selected job detail; nil clears it.
type SetDetail struct {
	Detail *JobDetail
}

// SetListLoading toggles the list-fetch loading flag.
type SetListLoading struct {
	Loading bool
}

// SetDetailLoading toggles the detail-fetch loading flag.
type SetDetailLoading struct {
	Loading bool
}

// SetError replaces the error message.
type SetError struct {
	Message string
}

// SetNotification replaces the transient notification; empty clears it.
type SetNotification struct {
	Message string
}

func (SetSummaries) isEvent()     {}
func (SetPagination) isEvent()    {}
func (SetDetail) isEvent()        {}
func (SetListLoading) isEvent()   {}
func (SetDetailLoading) isEvent() {}
func (SetError) isEvent()         {}
func (SetNotification) isEvent()  {}

// Reduce applies one event to a state value and returns the next state.
// It never mutates its input.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case SetSummaries:
		s.Summaries = ev.Summaries
	case SetPagination:
		s.Pagination = ev.Pagination
	case SetDetail:
		s.Detail = ev.Detail
	case SetListLoading:
		s.ListLoading = ev.Loading
	case SetDetailLoading:
		s.DetailLoading = ev.Loading
	case SetError:
		s.ErrorMessage = ev.Message
	case SetNotification:
		s.Notification = ev.Message
	}
	return s
}
